package mock

import (
	"context"

	"github.com/fwojciec/recipex"
)

var _ recipex.Translator = (*Translator)(nil)

// Translator is a mock implementation of recipex.Translator.
type Translator struct {
	TranslateFn func(ctx context.Context, recipe *recipex.Recipe, targetLang string) (*recipex.Recipe, error)
}

func (tr *Translator) Translate(ctx context.Context, recipe *recipex.Recipe, targetLang string) (*recipex.Recipe, error) {
	return tr.TranslateFn(ctx, recipe, targetLang)
}
