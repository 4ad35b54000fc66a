package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.SiteExtractor = (*CuisineAZExtractor)(nil)

// CuisineAZExtractor extracts recipes from cuisineaz.com pages. The
// ingredient list splits each line into a label and a quantity span, so
// amounts come from markup rather than from free-text parsing.
type CuisineAZExtractor struct {
	locale *recipex.Locale
}

// NewCuisineAZExtractor returns an extractor using the given French
// vocabulary.
func NewCuisineAZExtractor(loc *recipex.Locale) *CuisineAZExtractor {
	return &CuisineAZExtractor{locale: loc}
}

// Site returns the site identifier the extractor handles.
func (e *CuisineAZExtractor) Site() string {
	return "cuisineaz_com"
}

// Extract processes raw HTML and returns the recipe data found in it.
func (e *CuisineAZExtractor) Extract(html string) (*recipex.Recipe, error) {
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

	recipe.Ingredients = e.ingredients(doc)

	images := []string{metaContent(doc, `meta[property="og:image"]`)}

	if ld := findJSONLDRecipe(doc); ld != nil {
		recipe.DishName = firstNonEmpty(ld.Name, recipe.DishName)
		recipe.Instructions = strings.Join(ld.Instructions, "\n")
		recipe.Category = ld.Category
		recipe.PrepTime = timeText(ld.PrepTime)
		recipe.CookTime = timeText(ld.CookTime)
		recipe.TotalTime = timeText(ld.TotalTime)
		recipe.NutritionInfo = ld.Calories
		images = append(images, ld.Images...)
		if len(recipe.Ingredients) == 0 {
			recipe.Ingredients = parseLines(ld.Ingredients, e.locale)
		}
	}

	var tags []string
	doc.Find("div.recipe_tags a").Each(func(_ int, sel *goquery.Selection) {
		text := CleanText(sel.Find("span").First().Text())
		if text == "" {
			text = CleanText(sel.Text())
		}
		if text != "" {
			tags = append(tags, text)
		}
	})
	recipe.Tags = strings.Join(tags, ", ")

	recipe.Notes = strings.Join(e.notes(doc), "\n")
	recipe.ImageURLs = joinURLs(images)

	return recipe, nil
}

// ingredients reads the split label/quantity list. The quantity span
// holds the number and unit together ("200 g"), so it runs through the
// line parser with the label appended to recover both.
func (e *CuisineAZExtractor) ingredients(doc *goquery.Document) []recipex.Ingredient {
	var out []recipex.Ingredient
	doc.Find("ul.ingredient_list li.ingredient_item").Each(func(_ int, item *goquery.Selection) {
		label := CleanText(item.Find("span.ingredient_label").First().Text())
		qty := CleanText(item.Find("span.ingredient_qte").First().Text())
		line := strings.TrimSpace(qty + " " + label)
		if line == "" {
			line = CleanText(item.Text())
		}
		if ing := recipex.ParseIngredient(line, e.locale); ing != nil {
			out = append(out, *ing)
		}
	})
	return out
}

// notes collects the titled prose sections that follow the recipe body
// (conseils, astuces).
func (e *CuisineAZExtractor) notes(doc *goquery.Document) []string {
	var notes []string
	doc.Find("section.recipe_section").Each(func(_ int, section *goquery.Selection) {
		heading := strings.ToLower(CleanText(section.Find("h3.recipe_section_h3").First().Text()))
		if !containsAny(heading, "conseil", "astuce", "note") {
			return
		}
		section.Find("p").Each(func(_ int, p *goquery.Selection) {
			if text := CleanText(p.Text()); text != "" {
				notes = append(notes, text)
			}
		})
	})
	return notes
}
