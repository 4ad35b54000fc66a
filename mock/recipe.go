package mock

import (
	"context"

	"github.com/fwojciec/recipex"
)

var _ recipex.RecipeService = (*RecipeService)(nil)

// RecipeService is a mock implementation of recipex.RecipeService.
type RecipeService struct {
	CreateRecipeFn        func(ctx context.Context, recipe *recipex.Recipe) error
	FindRecipeByIDFn      func(ctx context.Context, id string) (*recipex.Recipe, error)
	FindRecipesFn         func(ctx context.Context, filter recipex.RecipeFilter) ([]*recipex.Recipe, error)
	DeleteRecipeFn        func(ctx context.Context, id string) error
	DeleteRecipesBySiteFn func(ctx context.Context, site string) error
}

func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *recipex.Recipe) error {
	return s.CreateRecipeFn(ctx, recipe)
}

func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*recipex.Recipe, error) {
	return s.FindRecipeByIDFn(ctx, id)
}

func (s *RecipeService) FindRecipes(ctx context.Context, filter recipex.RecipeFilter) ([]*recipex.Recipe, error) {
	return s.FindRecipesFn(ctx, filter)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	return s.DeleteRecipeFn(ctx, id)
}

func (s *RecipeService) DeleteRecipesBySite(ctx context.Context, site string) error {
	return s.DeleteRecipesBySiteFn(ctx, site)
}
