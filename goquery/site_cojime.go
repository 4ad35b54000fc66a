package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.SiteExtractor = (*CojimeExtractor)(nil)

var cojimeTitleSuffixRe = regexp.MustCompile(`(?i)\s*[»:].*$`)

// CojimeExtractor extracts recipes from cojime.cz pages. Recipes live
// in WordPress article bodies: ingredients appear either as a
// two-column table headed "Ingredience" or as a list following an
// "Ingredience"/"Suroviny" heading.
type CojimeExtractor struct {
	locale *recipex.Locale
}

// NewCojimeExtractor returns an extractor using the given Czech
// vocabulary.
func NewCojimeExtractor(loc *recipex.Locale) *CojimeExtractor {
	return &CojimeExtractor{locale: loc}
}

// Site returns the site identifier the extractor handles.
func (e *CojimeExtractor) Site() string {
	return "cojime_cz"
}

// Extract processes raw HTML and returns the recipe data found in it.
func (e *CojimeExtractor) Extract(html string) (*recipex.Recipe, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	recipe := &recipex.Recipe{Site: e.Site()}

	name := firstNonEmpty(
		firstText(doc, "h1.entry-title"),
		metaContent(doc, `meta[property="og:title"]`),
	)
	recipe.DishName = CleanText(cojimeTitleSuffixRe.ReplaceAllString(name, ""))

	recipe.Description = firstNonEmpty(
		metaContent(doc, `meta[name="description"]`),
		metaContent(doc, `meta[property="og:description"]`),
	)

	body := doc.Find("div.entry-content").First()

	recipe.Ingredients = e.ingredients(body)

	recipe.Instructions = strings.Join(textBlocksAfterHeading(body, func(heading string) bool {
		return containsAny(heading, "postup", "příprava", "recept")
	}), "\n")

	recipe.Category = firstNonEmpty(
		metaContent(doc, `meta[property="article:section"]`),
		firstText(doc, `a[rel="tag"]`),
	)

	var tags []string
	doc.Find(`a[rel="tag"]`).Each(func(_ int, sel *goquery.Selection) {
		if tag := CleanText(sel.Text()); tag != "" {
			tags = append(tags, tag)
		}
	})
	recipe.Tags = strings.Join(tags, ", ")

	images := []string{metaContent(doc, `meta[property="og:image"]`)}
	doc.Find("img.wp-post-image").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok {
			images = append(images, src)
		}
	})
	recipe.ImageURLs = joinURLs(images)

	return recipe, nil
}

// ingredients reads the ingredient table when present, otherwise the
// list following the "Ingredience"/"Suroviny" heading. Table rows carry
// the amount in the first column and the ingredient in the second.
func (e *CojimeExtractor) ingredients(body *goquery.Selection) []recipex.Ingredient {
	var out []recipex.Ingredient

	body.Find("table.wp-block-table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(table.Text()), "ingredience") {
			return true
		}
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("th, td")
			if cells.Length() < 2 {
				return
			}
			line := CleanText(cells.Eq(0).Text() + " " + cells.Eq(1).Text())
			if strings.Contains(strings.ToLower(line), "ingredience") {
				return
			}
			if ing := recipex.ParseIngredient(line, e.locale); ing != nil {
				out = append(out, *ing)
			}
		})
		return len(out) == 0
	})
	if len(out) > 0 {
		return out
	}

	lines := listItemsAfterHeading(body, func(heading string) bool {
		return containsAny(heading, "ingredience", "suroviny")
	})
	return parseLines(lines, e.locale)
}
