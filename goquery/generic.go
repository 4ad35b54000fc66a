package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.SiteExtractor = (*GenericExtractor)(nil)

// LocaleLoader resolves a language code to its parsing vocabulary. The
// generic extractor needs this indirection because, unlike the site
// extractors, it learns the page language only at extraction time.
type LocaleLoader func(code string) (*recipex.Locale, error)

// GenericExtractor handles pages without a dedicated extractor. It reads
// schema.org Recipe structured data when present, falls back to standard
// meta tags, and as a last resort asks an optional metadata extractor to
// recover the page title, description and lead image.
type GenericExtractor struct {
	locales  LocaleLoader
	metadata recipex.MetadataExtractor
}

// NewGenericExtractor returns a generic extractor. locales is required;
// metadata may be nil, in which case the last-resort pass is skipped.
func NewGenericExtractor(locales LocaleLoader, metadata recipex.MetadataExtractor) *GenericExtractor {
	return &GenericExtractor{locales: locales, metadata: metadata}
}

// Site returns the pseudo site ID of the fallback extractor.
func (e *GenericExtractor) Site() string {
	return "generic"
}

// Extract processes raw HTML and returns whatever recipe data its
// strategies can recover. Fields are independent: failure to locate one
// never blocks another.
func (e *GenericExtractor) Extract(html string) (*recipex.Recipe, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	recipe := &recipex.Recipe{Site: SiteID(canonicalHost(doc))}

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
		recipe.Ingredients = parseLines(ld.Ingredients, e.locale(doc))
		recipe.Instructions = strings.Join(ld.Instructions, "\n")
		recipe.Category = ld.Category
		recipe.Tags = ld.Keywords
		recipe.PrepTime = timeText(ld.PrepTime)
		recipe.CookTime = timeText(ld.CookTime)
		recipe.TotalTime = timeText(ld.TotalTime)
		recipe.NutritionInfo = ld.Calories
		images = append(ld.Images, images...)
	}

	if e.metadata != nil && (recipe.DishName == "" || recipe.Description == "") {
		if meta, err := e.metadata.ExtractMetadata(html); err == nil {
			recipe.DishName = firstNonEmpty(recipe.DishName, meta.Title)
			recipe.Description = firstNonEmpty(recipe.Description, meta.Description)
			images = append(images, meta.ImageURL)
		}
	}

	recipe.ImageURLs = joinURLs(images)

	return recipe, nil
}

// locale picks the vocabulary matching the declared page language,
// defaulting to English when the page declares none or the language is
// not shipped.
func (e *GenericExtractor) locale(doc *goquery.Document) *recipex.Locale {
	if code := docLanguage(doc); code != "" {
		if loc, err := e.locales(code); err == nil {
			return loc
		}
	}
	loc, err := e.locales("en")
	if err != nil {
		return &recipex.Locale{Code: "en"}
	}
	return loc
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
