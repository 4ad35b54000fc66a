package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/recipex"
)

// RecipePath converts a recipe's source path to its output file path,
// relative to the output directory.
// Example: site "coop_se", source "page_0042.html" → coop_se/page_0042.json
func RecipePath(recipe *recipex.Recipe) string {
	stem := filepath.Base(recipe.SourcePath)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	return filepath.Join(recipe.Site, stem+".json")
}

// EncodeRecipe renders a recipe as the JSON output record. The
// ingredients field holds a JSON-encoded array string rather than a
// nested array, matching the downstream corpus format.
func EncodeRecipe(recipe *recipex.Recipe) ([]byte, error) {
	ingredients, err := recipex.EncodeIngredients(recipe.Ingredients)
	if err != nil {
		return nil, err
	}

	record := struct {
		*recipex.Recipe
		Ingredients string `json:"ingredients"`
	}{recipe, ingredients}

	return json.MarshalIndent(record, "", "  ")
}

// DecodeRecipe parses a JSON output record back into a recipe,
// including the JSON-encoded ingredients string.
func DecodeRecipe(data []byte) (*recipex.Recipe, error) {
	var record struct {
		recipex.Recipe
		Ingredients string `json:"ingredients"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, recipex.Errorf(recipex.EUNPROCESSABLE, "invalid recipe record: %v", err)
	}

	ingredients, err := recipex.DecodeIngredients(record.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := record.Recipe
	recipe.Ingredients = ingredients
	return &recipe, nil
}

// Ensure Writer implements recipex.RecipeWriter at compile time.
var _ recipex.RecipeWriter = (*Writer)(nil)

// Writer writes recipe records as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateRecipe writes a recipe record to disk as a JSON file.
func (w *Writer) CreateRecipe(ctx context.Context, recipe *recipex.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, RecipePath(recipe))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := EncodeRecipe(recipe)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}
