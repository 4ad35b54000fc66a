package mock

import (
	"context"

	"github.com/fwojciec/recipex"
)

var _ recipex.RecipeStore = (*RecipeStore)(nil)

// RecipeStore is a mock implementation of recipex.RecipeStore.
type RecipeStore struct {
	SaveFn   func(ctx context.Context, recipe *recipex.Recipe) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *RecipeStore) Save(ctx context.Context, recipe *recipex.Recipe) error {
	return s.SaveFn(ctx, recipe)
}

func (s *RecipeStore) Commit() error {
	return s.CommitFn()
}

func (s *RecipeStore) Abort() error {
	return s.AbortFn()
}
