package goquery

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.SiteExtractor = (*DiarioUtilExtractor)(nil)

// Free-text time mentions in the article body, in priority order.
var diarioTimeRes = map[string][]*regexp.Regexp{
	"prep": {
		regexp.MustCompile(`(?i)(?:ci vogliono|richiede|prepararlo in)\s+(?:meno di\s+)?(\d+)\s+minut`),
		regexp.MustCompile(`(?i)tempo\s+di\s+preparazione[:\s]+(\d+)\s+minut`),
		regexp.MustCompile(`(?i)preparazione[:\s]+(\d+)\s+minut`),
	},
	"cook": {
		regexp.MustCompile(`(?i)tempo\s+di\s+cottura[:\s]+(\d+)\s+minut`),
		regexp.MustCompile(`(?i)cottura[:\s]+(\d+)\s+minut`),
		regexp.MustCompile(`(?i)cuocere\s+per\s+(\d+)\s+minut`),
	},
	"total": {
		regexp.MustCompile(`(?i)lasciare\s+riposare.*?(?:almeno|per)\s+(\d+)\s+minut`),
		regexp.MustCompile(`(?i)tempo\s+totale[:\s]+(\d+)\s+minut`),
		regexp.MustCompile(`(?i)totale[:\s]+(\d+)\s+minut`),
	},
}

// DiarioUtilExtractor extracts recipes from blog.diarioutil.com pages.
// The blog publishes recipes as free-form articles: sections are marked
// by headings inside the articleBody, and times appear only as phrases
// in the running text.
type DiarioUtilExtractor struct {
	locale *recipex.Locale
}

// NewDiarioUtilExtractor returns an extractor using the given Italian
// vocabulary.
func NewDiarioUtilExtractor(loc *recipex.Locale) *DiarioUtilExtractor {
	return &DiarioUtilExtractor{locale: loc}
}

// Site returns the site identifier the extractor handles.
func (e *DiarioUtilExtractor) Site() string {
	return "blog_diarioutil_com"
}

// Extract processes raw HTML and returns the recipe data found in it.
func (e *DiarioUtilExtractor) Extract(html string) (*recipex.Recipe, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	recipe := &recipex.Recipe{Site: e.Site()}

	recipe.DishName = firstNonEmpty(
		firstText(doc, "h1"),
		CleanText(doc.Find("title").First().Text()),
	)
	recipe.Description = firstNonEmpty(
		metaContent(doc, `meta[name="description"]`),
		metaContent(doc, `meta[property="og:description"]`),
	)

	body := doc.Find(`div[itemprop="articleBody"]`).First()

	lines := listItemsAfterHeading(body, func(heading string) bool {
		return containsAny(heading, "ingredient")
	})
	recipe.Ingredients = parseLines(lines, e.locale)

	recipe.Instructions = strings.Join(textBlocksAfterHeading(body, func(heading string) bool {
		return containsAny(heading, "come preparare", "preparazione", "modo di preparare", "istruzioni")
	}), "\n")

	recipe.Notes = strings.Join(textBlocksAfterHeading(body, func(heading string) bool {
		return containsAny(heading, "consigli", "note", "varianti", "suggerimenti")
	}), "\n")

	bodyText := body.Text()
	recipe.PrepTime = diarioTime(bodyText, "prep")
	recipe.CookTime = diarioTime(bodyText, "cook")
	recipe.TotalTime = diarioTime(bodyText, "total")

	ld := findJSONLDArticle(doc)
	recipe.Category = firstNonEmpty(ld.Section, firstText(doc, `nav[aria-label="Breadcrumbs"] a`))
	recipe.Tags = ld.Keywords

	images := []string{metaContent(doc, `meta[property="og:image"]`)}
	images = append(images, ld.Images...)
	recipe.ImageURLs = joinURLs(images)

	return recipe, nil
}

func diarioTime(text, label string) string {
	for _, re := range diarioTimeRes[label] {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1] + " minutes"
		}
	}
	return ""
}

// jsonldArticle holds the Article/NewsArticle fields the blog publishes
// instead of Recipe structured data.
type jsonldArticle struct {
	Section  string
	Keywords string
	Images   []string
}

func findJSONLDArticle(doc *goquery.Document) jsonldArticle {
	var out jsonldArticle

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return true
		}
		node := findArticleNode(data)
		if node == nil {
			return true
		}
		out.Section = CleanText(firstStringValue(node["articleSection"]))
		out.Keywords = CleanText(keywordsValue(node["keywords"]))
		out.Images = imageURLs(node["image"])
		return false
	})

	return out
}

func findArticleNode(data any) map[string]any {
	switch v := data.(type) {
	case map[string]any:
		if hasType(v, "Article") || hasType(v, "NewsArticle") || hasType(v, "BlogPosting") {
			return v
		}
		if graph, ok := v["@graph"].([]any); ok {
			return findArticleNode(graph)
		}
	case []any:
		for _, item := range v {
			if node := findArticleNode(item); node != nil {
				return node
			}
		}
	}
	return nil
}
