package sqlite

import (
	"context"

	"github.com/fwojciec/recipex"
)

// Ensure RecipeStore implements recipex.RecipeStore at compile time.
var _ recipex.RecipeStore = (*RecipeStore)(nil)

// RecipeStore adapts RecipeService to the recipex.RecipeStore interface
// used by batch extraction. Save replaces any earlier record for the same
// source page, so re-running extraction refreshes records in place.
// SQLite writes are durable per statement, so Commit and Abort are no-ops.
type RecipeStore struct {
	svc *RecipeService
}

// NewRecipeStore creates a new RecipeStore.
func NewRecipeStore(svc *RecipeService) *RecipeStore {
	return &RecipeStore{svc: svc}
}

func (s *RecipeStore) Save(ctx context.Context, recipe *recipex.Recipe) error {
	existing, err := s.svc.FindRecipes(ctx, recipex.RecipeFilter{
		Site:       &recipe.Site,
		SourcePath: &recipe.SourcePath,
	})
	if err != nil {
		return err
	}
	for _, old := range existing {
		if err := s.svc.DeleteRecipe(ctx, old.ID); err != nil {
			return err
		}
	}
	return s.svc.CreateRecipe(ctx, recipe)
}

func (s *RecipeStore) Commit() error { return nil }

func (s *RecipeStore) Abort() error { return nil }
