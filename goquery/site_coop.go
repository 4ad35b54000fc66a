package goquery

import (
	"strings"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.SiteExtractor = (*CoopExtractor)(nil)

// CoopExtractor extracts recipes from coop.se pages. Structured data is
// primary; the markup fallbacks use class-prefix matching because the
// site suffixes its BEM classes with build hashes.
type CoopExtractor struct {
	locale *recipex.Locale
}

// NewCoopExtractor returns an extractor using the given Swedish
// vocabulary.
func NewCoopExtractor(loc *recipex.Locale) *CoopExtractor {
	return &CoopExtractor{locale: loc}
}

// Site returns the site identifier the extractor handles.
func (e *CoopExtractor) Site() string {
	return "coop_se"
}

// Extract processes raw HTML and returns the recipe data found in it.
func (e *CoopExtractor) Extract(html string) (*recipex.Recipe, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	recipe := &recipex.Recipe{Site: e.Site()}

	recipe.DishName = firstNonEmpty(
		metaContent(doc, `meta[property="og:title"]`),
		CleanText(doc.Find("title").First().Text()),
	)
	recipe.Description = firstNonEmpty(
		metaContent(doc, `meta[name="description"]`),
		metaContent(doc, `meta[property="og:description"]`),
	)

	images := []string{metaContent(doc, `meta[property="og:image"]`)}

	if ld := findJSONLDRecipe(doc); ld != nil {
		recipe.DishName = firstNonEmpty(ld.Name, recipe.DishName)
		recipe.Description = firstNonEmpty(ld.Description, recipe.Description)
		recipe.Ingredients = parseLines(ld.Ingredients, e.locale)
		recipe.Instructions = strings.Join(ld.Instructions, "\n")
		recipe.Category = ld.Category
		recipe.Tags = ld.Keywords
		recipe.PrepTime = timeText(ld.PrepTime)
		recipe.CookTime = timeText(ld.CookTime)
		recipe.TotalTime = timeText(ld.TotalTime)
		recipe.NutritionInfo = ld.Calories
		images = append(images, ld.Images...)
	}

	if len(recipe.Ingredients) == 0 {
		recipe.Ingredients = parseLines(itemTexts(doc, `ul[class*="List--section"] li`), e.locale)
	}
	if recipe.Instructions == "" {
		recipe.Instructions = strings.Join(itemTexts(doc, `ol[class*="List--orderedRecipe"] li`), "\n")
	}
	if recipe.Tags == "" {
		recipe.Tags = metaContent(doc, `meta[name="keywords"]`)
	}

	recipe.ImageURLs = joinURLs(images)

	return recipe, nil
}
