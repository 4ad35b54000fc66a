package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.SiteExtractor = (*AllRecipesExtractor)(nil)

// AllRecipesExtractor extracts recipes from allrecipes.com pages. The
// site ships complete Recipe structured data, so JSON-LD is the primary
// source with markup fallbacks for the few fields it may omit.
type AllRecipesExtractor struct {
	locale *recipex.Locale
}

// NewAllRecipesExtractor returns an extractor using the given English
// vocabulary.
func NewAllRecipesExtractor(loc *recipex.Locale) *AllRecipesExtractor {
	return &AllRecipesExtractor{locale: loc}
}

// Site returns the site identifier the extractor handles.
func (e *AllRecipesExtractor) Site() string {
	return "allrecipes_com"
}

// Extract processes raw HTML and returns the recipe data found in it.
func (e *AllRecipesExtractor) Extract(html string) (*recipex.Recipe, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	recipe := &recipex.Recipe{Site: e.Site()}

	recipe.DishName = firstNonEmpty(
		firstText(doc, "h1.article-heading"),
		metaContent(doc, `meta[property="og:title"]`),
	)
	recipe.Description = firstNonEmpty(
		metaContent(doc, `meta[name="description"]`),
		metaContent(doc, `meta[property="og:description"]`),
	)

	images := []string{metaContent(doc, `meta[property="og:image"]`)}

	if ld := findJSONLDRecipe(doc); ld != nil {
		recipe.DishName = firstNonEmpty(ld.Name, recipe.DishName)
		recipe.Ingredients = parseLines(ld.Ingredients, e.locale)
		recipe.Instructions = strings.Join(ld.Instructions, "\n")
		recipe.Category = ld.Category
		recipe.PrepTime = timeText(ld.PrepTime)
		recipe.CookTime = timeText(ld.CookTime)
		recipe.TotalTime = timeText(ld.TotalTime)
		recipe.NutritionInfo = ld.Calories
		images = append(images, ld.Images...)
	}

	if len(recipe.Ingredients) == 0 {
		recipe.Ingredients = parseLines(itemTexts(doc, `ul[class*="ingredient"] li`), e.locale)
	}
	if recipe.Instructions == "" {
		recipe.Instructions = strings.Join(itemTexts(doc, `ol[class*="instruction"] li`), "\n")
	}
	if recipe.Category == "" {
		recipe.Category = metaContent(doc, `meta[property="article:section"]`)
	}

	recipe.Notes = firstText(doc, `[class*="cooksnote"] p`, `[class*="cooksnote"]`)
	recipe.Tags = metaContent(doc, `meta[name="parsely-tags"]`)
	recipe.ImageURLs = joinURLs(images)

	return recipe, nil
}

// itemTexts returns the cleaned texts of all nodes matching the
// selector.
func itemTexts(doc *goquery.Document, selector string) []string {
	var texts []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if text := CleanText(sel.Text()); text != "" {
			texts = append(texts, text)
		}
	})
	return texts
}
