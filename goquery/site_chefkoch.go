package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.SiteExtractor = (*ChefkochExtractor)(nil)

var chefkochTitleSuffixRe = regexp.MustCompile(`(?i)\s*[|-]\s*chefkoch.*$`)

// ChefkochExtractor extracts recipes from chefkoch.de pages. The page
// body is rendered client-side from a Nuxt payload, but the server
// still emits full Recipe structured data, so JSON-LD carries the
// extraction with meta tags as the fallback.
type ChefkochExtractor struct {
	locale *recipex.Locale
}

// NewChefkochExtractor returns an extractor using the given German
// vocabulary.
func NewChefkochExtractor(loc *recipex.Locale) *ChefkochExtractor {
	return &ChefkochExtractor{locale: loc}
}

// Site returns the site identifier the extractor handles.
func (e *ChefkochExtractor) Site() string {
	return "chefkoch_de"
}

// Extract processes raw HTML and returns the recipe data found in it.
func (e *ChefkochExtractor) Extract(html string) (*recipex.Recipe, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	recipe := &recipex.Recipe{Site: e.Site()}

	name := firstNonEmpty(
		metaContent(doc, `meta[property="og:title"]`),
		CleanText(doc.Find("title").First().Text()),
	)
	recipe.DishName = CleanText(chefkochTitleSuffixRe.ReplaceAllString(name, ""))

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

	recipe.ImageURLs = joinURLs(images)

	return recipe, nil
}
