// Package goquery provides the site-specific recipe extractors along with
// the site detector and extractor registry used to select among them.
package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/recipex"
)

// CleanText normalizes extracted node text: non-breaking spaces become
// regular spaces, internal whitespace collapses, and the result is
// trimmed. It is idempotent.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u200b", "")
	return strings.Join(strings.Fields(s), " ")
}

// metaContent returns the content attribute of the first matching meta
// tag, cleaned.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return CleanText(content)
}

// firstText returns the cleaned text of the first selector that yields a
// non-empty match, trying candidates in priority order.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := CleanText(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// parseLines runs the ingredient line parser over raw text lines and
// collects the records that survive.
func parseLines(lines []string, loc *recipex.Locale) []recipex.Ingredient {
	var out []recipex.Ingredient
	for _, line := range lines {
		if ing := recipex.ParseIngredient(line, loc); ing != nil {
			out = append(out, *ing)
		}
	}
	return out
}

// parseAmountText interprets the text of a dedicated amount node: a plain
// number becomes a numeric amount, anything else ("q.b.", "una noce") is
// kept verbatim as a qualitative amount.
func parseAmountText(s string) recipex.Amount {
	s = CleanText(s)
	if s == "" {
		return recipex.Amount{}
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return recipex.AmountOf(v)
	}
	return recipex.QualitativeAmount(s)
}

// timeText renders an ISO-8601 duration for an output record.
// Returns "" when the duration is absent or zero.
func timeText(iso string) string {
	if minutes, ok := recipex.ParseISODuration(iso); ok {
		return recipex.FormatMinutes(minutes)
	}
	return ""
}

// joinURLs deduplicates image URLs preserving order and joins them with
// commas, the format of the image_urls output field.
func joinURLs(urls []string) string {
	seen := make(map[string]bool, len(urls))
	var out []string
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return strings.Join(out, ",")
}

// docLanguage returns the two-letter language code declared by the page,
// or "" when none is declared.
func docLanguage(doc *goquery.Document) string {
	lang, _ := doc.Find("html").First().Attr("lang")
	lang = strings.ToLower(strings.TrimSpace(lang))
	if len(lang) >= 2 {
		return lang[:2]
	}
	return ""
}

// canonicalHost returns the host of the page's canonical URL, falling
// back to og:url.
func canonicalHost(doc *goquery.Document) string {
	href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href")
	if !ok || href == "" {
		href = metaContent(doc, `meta[property="og:url"]`)
	}
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// listItemsAfterHeading collects list items that follow the first
// heading whose text satisfies match, stopping at the next heading.
// Blog-style recipe pages mark their sections this way instead of using
// dedicated markup.
func listItemsAfterHeading(container *goquery.Selection, match func(string) bool) []string {
	var lines []string
	container.Find("h2, h3, h4").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		if !match(strings.ToLower(CleanText(heading.Text()))) {
			return true
		}
		heading.NextUntil("h2, h3, h4").Filter("ul, ol").Each(func(_ int, list *goquery.Selection) {
			list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
				if text := CleanText(li.Text()); text != "" {
					lines = append(lines, text)
				}
			})
		})
		return len(lines) == 0
	})
	return lines
}

// textBlocksAfterHeading collects paragraph and list item texts that
// follow the first heading whose text satisfies match, stopping at the
// next heading.
func textBlocksAfterHeading(container *goquery.Selection, match func(string) bool) []string {
	var blocks []string
	container.Find("h2, h3, h4").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		if !match(strings.ToLower(CleanText(heading.Text()))) {
			return true
		}
		heading.NextUntil("h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
			if sel.Is("p") {
				if text := CleanText(sel.Text()); text != "" {
					blocks = append(blocks, text)
				}
				return
			}
			if sel.Is("ul, ol") {
				sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
					if text := CleanText(li.Text()); text != "" {
						blocks = append(blocks, text)
					}
				})
			}
		})
		return len(blocks) == 0
	})
	return blocks
}

// containsAny reports whether s contains any of the given substrings.
// Callers lowercase s first.
func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func parseDoc(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, recipex.Errorf(recipex.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
