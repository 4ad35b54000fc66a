package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jsonldRecipe holds the fields of a schema.org Recipe node after
// flattening the many shapes sites publish them in.
type jsonldRecipe struct {
	Name         string
	Description  string
	Ingredients  []string
	Instructions []string
	PrepTime     string
	CookTime     string
	TotalTime    string
	Category     string
	Keywords     string
	Images       []string
	Calories     string
}

// findJSONLDRecipe scans every ld+json block in the document for a Recipe
// node, looking inside @graph containers and top-level arrays. Malformed
// JSON is skipped, never fatal: structured data is one strategy in a
// cascade, not a requirement.
func findJSONLDRecipe(doc *goquery.Document) *jsonldRecipe {
	var found *jsonldRecipe

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return true
		}
		if node := findRecipeNode(data); node != nil {
			found = flattenRecipeNode(node)
			return false
		}
		return true
	})

	return found
}

// findRecipeNode walks a decoded JSON-LD value looking for an object
// whose @type is (or includes) "Recipe".
func findRecipeNode(data any) map[string]any {
	switch v := data.(type) {
	case map[string]any:
		if hasType(v, "Recipe") {
			return v
		}
		if graph, ok := v["@graph"].([]any); ok {
			return findRecipeNode(graph)
		}
	case []any:
		for _, item := range v {
			if node := findRecipeNode(item); node != nil {
				return node
			}
		}
	}
	return nil
}

// hasType handles both "@type": "Recipe" and "@type": ["Recipe", ...].
func hasType(node map[string]any, typ string) bool {
	switch t := node["@type"].(type) {
	case string:
		return t == typ
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == typ {
				return true
			}
		}
	}
	return false
}

func flattenRecipeNode(node map[string]any) *jsonldRecipe {
	r := &jsonldRecipe{
		Name:        CleanText(stringValue(node["name"])),
		Description: CleanText(stringValue(node["description"])),
		PrepTime:    stringValue(node["prepTime"]),
		CookTime:    stringValue(node["cookTime"]),
		TotalTime:   stringValue(node["totalTime"]),
		Category:    CleanText(firstStringValue(node["recipeCategory"])),
		Keywords:    CleanText(keywordsValue(node["keywords"])),
	}

	for _, v := range anySlice(node["recipeIngredient"]) {
		if s := CleanText(stringValue(v)); s != "" {
			r.Ingredients = append(r.Ingredients, s)
		}
	}

	r.Instructions = instructionTexts(node["recipeInstructions"])
	r.Images = imageURLs(node["image"])

	if nutrition, ok := node["nutrition"].(map[string]any); ok {
		r.Calories = CleanText(stringValue(nutrition["calories"]))
	}

	return r
}

// instructionTexts flattens recipeInstructions: a plain string, a list of
// strings, a list of HowToStep objects, or HowToSection containers with
// nested itemListElement steps.
func instructionTexts(v any) []string {
	var steps []string

	var walk func(any)
	walk = func(v any) {
		switch v := v.(type) {
		case string:
			if s := CleanText(v); s != "" {
				steps = append(steps, s)
			}
		case []any:
			for _, item := range v {
				walk(item)
			}
		case map[string]any:
			if items, ok := v["itemListElement"]; ok {
				walk(items)
				return
			}
			walk(v["text"])
		}
	}
	walk(v)

	return steps
}

// imageURLs flattens the image field: a URL string, a list of URL
// strings, an ImageObject, or a list of ImageObjects.
func imageURLs(v any) []string {
	var urls []string

	var walk func(any)
	walk = func(v any) {
		switch v := v.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				urls = append(urls, s)
			}
		case []any:
			for _, item := range v {
				walk(item)
			}
		case map[string]any:
			walk(v["url"])
		}
	}
	walk(v)

	return urls
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// firstStringValue returns v itself when it is a string, or the first
// string when it is a list.
func firstStringValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// keywordsValue joins keywords published as either a comma string or a
// list.
func keywordsValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []any:
		var parts []string
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func anySlice(v any) []any {
	s, _ := v.([]any)
	return s
}
