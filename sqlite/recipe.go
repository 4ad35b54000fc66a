package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/recipex"
)

// Compile-time interface verification.
var _ recipex.RecipeService = (*RecipeService)(nil)

// RecipeService implements recipex.RecipeService using SQLite.
type RecipeService struct {
	db *DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateRecipe creates a new recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *recipex.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	ingredients, err := recipex.EncodeIngredients(recipe.Ingredients)
	if err != nil {
		return err
	}

	recipe.ID = uuid.New().String()
	if recipe.ExtractedAt.IsZero() {
		recipe.ExtractedAt = time.Now().UTC()
	}
	if recipe.ContentHash == "" {
		recipe.ContentHash = hashContent(recipe.DishName + ingredients + recipe.Instructions)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recipes (id, site, source_path, dish_name, description, ingredients,
			instructions, nutrition_info, category, prep_time, cook_time, total_time,
			notes, tags, image_urls, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, recipe.ID, recipe.Site, recipe.SourcePath, recipe.DishName, recipe.Description, ingredients,
		recipe.Instructions, recipe.NutritionInfo, recipe.Category, recipe.PrepTime, recipe.CookTime,
		recipe.TotalTime, recipe.Notes, recipe.Tags, recipe.ImageURLs, recipe.ContentHash,
		recipe.ExtractedAt.Format(time.RFC3339))

	return err
}

const recipeColumns = `id, site, source_path, dish_name, description, ingredients,
	instructions, nutrition_info, category, prep_time, cook_time, total_time,
	notes, tags, image_urls, content_hash, extracted_at`

// scanRecipe reads one recipe row, decoding the ingredients column and
// the stored timestamp.
func scanRecipe(scan func(...any) error) (*recipex.Recipe, error) {
	var recipe recipex.Recipe
	var ingredients, extractedAt string

	if err := scan(&recipe.ID, &recipe.Site, &recipe.SourcePath, &recipe.DishName,
		&recipe.Description, &ingredients, &recipe.Instructions, &recipe.NutritionInfo,
		&recipe.Category, &recipe.PrepTime, &recipe.CookTime, &recipe.TotalTime,
		&recipe.Notes, &recipe.Tags, &recipe.ImageURLs, &recipe.ContentHash,
		&extractedAt); err != nil {
		return nil, err
	}

	decoded, err := recipex.DecodeIngredients(ingredients)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = decoded

	recipe.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

// FindRecipeByID retrieves a recipe by ID.
func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*recipex.Recipe, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE id = ?
	`, id)

	recipe, err := scanRecipe(row.Scan)
	if err == sql.ErrNoRows {
		return nil, recipex.Errorf(recipex.ENOTFOUND, "recipe not found")
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// FindRecipes retrieves recipes matching the filter.
func (s *RecipeService) FindRecipes(ctx context.Context, filter recipex.RecipeFilter) ([]*recipex.Recipe, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recipeColumns + " FROM recipes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Site != nil {
		query.WriteString(" AND site = ?")
		args = append(args, *filter.Site)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}

	query.WriteString(" ORDER BY site ASC, source_path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*recipex.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}

	return recipes, rows.Err()
}

// DeleteRecipe permanently removes a recipe.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return recipex.Errorf(recipex.ENOTFOUND, "recipe not found")
	}

	return nil
}

// DeleteRecipesBySite removes all recipes for a site.
func (s *RecipeService) DeleteRecipesBySite(ctx context.Context, site string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE site = ?", site)
	return err
}
