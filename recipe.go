package recipex

import (
	"context"
	"time"
)

// Recipe represents the structured data extracted from one recipe page.
// Every extraction field is best-effort: an empty value means the field
// could not be located in the page, never that extraction failed as a
// whole.
type Recipe struct {
	ID         string `json:"id"`
	Site       string `json:"site"`
	SourcePath string `json:"sourcePath"`

	DishName      string       `json:"dish_name"`
	Description   string       `json:"description"`
	Ingredients   []Ingredient `json:"-"`
	Instructions  string       `json:"instructions"`
	NutritionInfo string       `json:"nutrition_info,omitempty"`
	Category      string       `json:"category"`
	PrepTime      string       `json:"prep_time"`
	CookTime      string       `json:"cook_time"`
	TotalTime     string       `json:"total_time"`
	Notes         string       `json:"notes"`
	Tags          string       `json:"tags"`
	ImageURLs     string       `json:"image_urls"`

	ContentHash string    `json:"contentHash"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the recipe contains invalid fields.
func (r *Recipe) Validate() error {
	if r.Site == "" {
		return Errorf(EINVALID, "recipe site required")
	}
	if r.SourcePath == "" {
		return Errorf(EINVALID, "recipe source path required")
	}
	return nil
}

// RecipeWriter writes recipes to storage.
type RecipeWriter interface {
	CreateRecipe(ctx context.Context, recipe *Recipe) error
}

// RecipeService represents a service for managing extracted recipes.
type RecipeService interface {
	// CreateRecipe creates a new recipe.
	CreateRecipe(ctx context.Context, recipe *Recipe) error

	// FindRecipeByID retrieves a recipe by ID.
	// Returns ENOTFOUND if recipe does not exist.
	FindRecipeByID(ctx context.Context, id string) (*Recipe, error)

	// FindRecipes retrieves recipes matching the filter.
	FindRecipes(ctx context.Context, filter RecipeFilter) ([]*Recipe, error)

	// DeleteRecipe permanently removes a recipe.
	// Returns ENOTFOUND if recipe does not exist.
	DeleteRecipe(ctx context.Context, id string) error

	// DeleteRecipesBySite removes all recipes for a site.
	DeleteRecipesBySite(ctx context.Context, site string) error
}

// RecipeFilter represents a filter for FindRecipes.
type RecipeFilter struct {
	ID         *string `json:"id"`
	Site       *string `json:"site"`
	SourcePath *string `json:"sourcePath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
