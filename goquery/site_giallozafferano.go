package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.SiteExtractor = (*GialloZafferanoExtractor)(nil)

var (
	comeCucinareRe = regexp.MustCompile(`(?i)^come cucinare\s+`)
	itMinutesRe    = regexp.MustCompile(`(?i)\bminut[oi]\b`)
	itHoursRe      = regexp.MustCompile(`(?i)\bor[ae]\b`)
)

// GialloZafferanoExtractor extracts recipes from blog.giallozafferano.it
// pages. The blog network publishes two generations of recipe markup:
// the current wp-block-altervista blocks and an older recipe-* class
// scheme, so every section tries both.
type GialloZafferanoExtractor struct {
	locale    *recipex.Locale
	converter recipex.Converter
}

// NewGialloZafferanoExtractor returns an extractor using the given
// Italian vocabulary. The converter renders the notes block, which the
// blog publishes with inline formatting and lists; a nil converter
// falls back to plain text.
func NewGialloZafferanoExtractor(loc *recipex.Locale, conv recipex.Converter) *GialloZafferanoExtractor {
	return &GialloZafferanoExtractor{locale: loc, converter: conv}
}

// Site returns the site identifier the extractor handles.
func (e *GialloZafferanoExtractor) Site() string {
	return "blog_giallozafferano_it"
}

// Extract processes raw HTML and returns the recipe data found in it.
func (e *GialloZafferanoExtractor) Extract(html string) (*recipex.Recipe, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	recipe := &recipex.Recipe{Site: e.Site()}

	name := firstText(doc, "h1.entry-title")
	if name == "" {
		name = metaContent(doc, `meta[property="og:title"]`)
	}
	recipe.DishName = comeCucinareRe.ReplaceAllString(name, "")

	recipe.Description = firstNonEmpty(
		metaContent(doc, `meta[name="description"]`),
		metaContent(doc, `meta[property="og:description"]`),
		firstText(doc, "div.wp-block-altervista-introduction"),
	)

	recipe.Ingredients = e.ingredients(doc)
	recipe.Instructions = strings.Join(e.steps(doc), "\n")

	recipe.Category = firstNonEmpty(
		firstText(doc, "div.post-category a"),
		metaContent(doc, `meta[property="article:section"]`),
	)

	recipe.PrepTime = recipeInfoTime(doc, "preptime")
	recipe.CookTime = recipeInfoTime(doc, "cooktime")
	recipe.TotalTime = recipeInfoTime(doc, "totaltime")

	recipe.Notes = e.notes(doc)

	var tags []string
	doc.Find("div.post-tags a").Each(func(_ int, sel *goquery.Selection) {
		if tag := CleanText(sel.Text()); tag != "" {
			tags = append(tags, tag)
		}
	})
	recipe.Tags = strings.Join(tags, ", ")

	images := []string{metaContent(doc, `meta[property="og:image"]`)}
	doc.Find("div.wp-block-altervista-cover img, div.recipe-cover img, div.wp-block-altervista-steps img").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok {
			images = append(images, src)
		}
	})
	recipe.ImageURLs = joinURLs(images)

	return recipe, nil
}

// ingredients reads the structured ingredient blocks, preferring the
// current block markup and falling back to the legacy class scheme. A
// block that carries no dedicated name node is parsed as a free-text
// line instead.
func (e *GialloZafferanoExtractor) ingredients(doc *goquery.Document) []recipex.Ingredient {
	var out []recipex.Ingredient

	// Quantity selectors are tried in order: the dedicated number node
	// first, then the whole quantity container for qualitative values
	// like "q.b.".
	collect := func(item *goquery.Selection, nameSel string, qtySels []string, unitSel string) {
		name := CleanText(item.Find(nameSel).First().Text())
		if name == "" {
			if ing := recipex.ParseIngredient(item.Text(), e.locale); ing != nil {
				out = append(out, *ing)
			}
			return
		}
		var qty string
		for _, sel := range qtySels {
			if qty = CleanText(item.Find(sel).First().Text()); qty != "" {
				break
			}
		}
		out = append(out, recipex.Ingredient{
			Name:   recipex.CleanName(name, e.locale),
			Amount: parseAmountText(qty),
			Units:  strings.ToLower(CleanText(item.Find(unitSel).First().Text())),
		})
	}

	doc.Find("div.wp-block-altervista-ingredients div.wp-block-altervista-ingredient").Each(func(_ int, item *goquery.Selection) {
		collect(item, ".ingredient-name",
			[]string{".ingredient-qty-wrapper .ingredient-number", ".ingredient-qty-wrapper .ingredient-qty"},
			".ingredient-qty-wrapper .ingredient-unit")
	})
	if len(out) > 0 {
		return out
	}

	doc.Find("div.recipe-ingredients-content div.recipe-ingredient-item").Each(func(_ int, item *goquery.Selection) {
		collect(item, ".recipe-ingredient-name",
			[]string{".recipe-ingredient-qty .recipe-ingredient-number"},
			".recipe-ingredient-qty .recipe-ingredient-unit")
	})
	return out
}

// notes renders the notes block as markdown when a converter is wired,
// keeping the block's lists and emphasis in the text output.
func (e *GialloZafferanoExtractor) notes(doc *goquery.Document) string {
	block := doc.Find("div.wp-block-altervista-notes").First()
	if block.Length() == 0 {
		return ""
	}
	if e.converter != nil {
		if inner, err := block.Html(); err == nil {
			if md, err := e.converter.Convert(inner); err == nil {
				return strings.TrimSpace(md)
			}
		}
	}
	return CleanText(block.Text())
}

func (e *GialloZafferanoExtractor) steps(doc *goquery.Document) []string {
	var steps []string

	doc.Find("div.wp-block-altervista-steps div.wp-block-altervista-step").Each(func(_ int, step *goquery.Selection) {
		if text := CleanText(step.Find("div.wp-block-altervista-paragraphs").Text()); text != "" {
			steps = append(steps, text)
		}
	})
	if len(steps) > 0 {
		return steps
	}

	doc.Find("div.recipe-steps ol > li").Each(func(_ int, step *goquery.Selection) {
		var paragraphs []string
		step.Find("p").Each(func(_ int, p *goquery.Selection) {
			if text := CleanText(p.Text()); text != "" {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) == 0 {
			if text := CleanText(step.Text()); text != "" {
				paragraphs = append(paragraphs, text)
			}
		}
		steps = append(steps, strings.Join(paragraphs, " "))
	})
	return steps
}

// recipeInfoTime reads a time entry from the recipe-info list and
// renders its Italian unit words in output form ("5 Minuti" becomes
// "5 minutes").
func recipeInfoTime(doc *goquery.Document, class string) string {
	text := CleanText(doc.Find("ul.recipe-info li." + class).Find(".recipe-value").First().Text())
	if text == "" {
		return ""
	}
	text = itMinutesRe.ReplaceAllString(text, "minutes")
	text = itHoursRe.ReplaceAllString(text, "hours")
	return text
}
