package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.SiteExtractor = (*AniaGotujeExtractor)(nil)

// AniaGotujeExtractor extracts recipes from aniagotuje.pl pages. The
// site annotates its markup with schema.org microdata (itemprop
// attributes), so fields come from the annotated nodes directly.
type AniaGotujeExtractor struct {
	locale *recipex.Locale
}

// NewAniaGotujeExtractor returns an extractor using the given Polish
// vocabulary.
func NewAniaGotujeExtractor(loc *recipex.Locale) *AniaGotujeExtractor {
	return &AniaGotujeExtractor{locale: loc}
}

// Site returns the site identifier the extractor handles.
func (e *AniaGotujeExtractor) Site() string {
	return "aniagotuje_pl"
}

// Extract processes raw HTML and returns the recipe data found in it.
func (e *AniaGotujeExtractor) Extract(html string) (*recipex.Recipe, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	recipe := &recipex.Recipe{Site: e.Site()}

	recipe.DishName = firstNonEmpty(
		firstText(doc, `h1[itemprop="name"]`),
		metaContent(doc, `meta[property="og:title"]`),
	)
	recipe.Description = firstNonEmpty(
		metaContent(doc, `meta[name="description"]`),
		metaContent(doc, `meta[property="og:description"]`),
	)

	recipe.Ingredients = parseLines(itemTexts(doc, `[itemprop="recipeIngredient"]`), e.locale)
	recipe.Instructions = strings.Join(e.instructions(doc), "\n")

	recipe.Category = metaContent(doc, `meta[itemprop="recipeCategory"]`)
	recipe.PrepTime = timeText(metaContent(doc, `meta[itemprop="prepTime"]`))
	recipe.CookTime = timeText(metaContent(doc, `meta[itemprop="cookTime"]`))
	recipe.TotalTime = timeText(metaContent(doc, `meta[itemprop="totalTime"]`))
	recipe.Tags = metaContent(doc, `meta[itemprop="keywords"]`)

	recipe.ImageURLs = joinURLs([]string{
		metaContent(doc, `meta[itemprop="image"]`),
		metaContent(doc, `meta[property="og:image"]`),
		metaContent(doc, `meta[name="twitter:image"]`),
	})

	return recipe, nil
}

// instructions reads the step paragraphs inside the annotated
// instructions node, skipping its nested headings and ads.
func (e *AniaGotujeExtractor) instructions(doc *goquery.Document) []string {
	var steps []string
	container := doc.Find(`[itemprop="recipeInstructions"]`).First()
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := CleanText(p.Text()); text != "" {
			steps = append(steps, text)
		}
	})
	if len(steps) == 0 {
		if text := CleanText(container.Text()); text != "" {
			steps = append(steps, text)
		}
	}
	return steps
}
