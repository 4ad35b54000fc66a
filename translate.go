package recipex

import "context"

// Translator translates the textual fields of an extracted recipe into a
// target language. Ingredient amounts and unit tokens are left intact;
// only names and prose fields change.
type Translator interface {
	// Translate returns a translated copy of the recipe.
	// The input recipe is not modified.
	Translate(ctx context.Context, recipe *Recipe, targetLang string) (*Recipe, error)
}
