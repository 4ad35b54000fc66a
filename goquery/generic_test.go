package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/goquery"
	"github.com/fwojciec/recipex/locale"
	"github.com/fwojciec/recipex/mock"
)

func TestGenericExtractor(t *testing.T) {
	t.Parallel()

	t.Run("reads schema.org Recipe structured data", func(t *testing.T) {
		t.Parallel()

		html := `<html lang="en"><head>
			<script type="application/ld+json">
			{
				"@context": "https://schema.org",
				"@graph": [
					{"@type": "WebPage", "name": "Some page"},
					{
						"@type": "Recipe",
						"name": "Classic Pancakes",
						"description": "Fluffy weekend pancakes.",
						"recipeIngredient": ["2 cups flour", "1 tablespoon sugar"],
						"recipeInstructions": [
							{"@type": "HowToStep", "text": "Mix the dry ingredients."},
							{"@type": "HowToStep", "text": "Fry until golden."}
						],
						"prepTime": "PT10M",
						"cookTime": "PT20M",
						"totalTime": "PT30M",
						"recipeCategory": "Breakfast",
						"keywords": "pancakes, breakfast",
						"image": {"@type": "ImageObject", "url": "https://example.com/p.jpg"},
						"nutrition": {"@type": "NutritionInformation", "calories": "250 kcal"}
					}
				]
			}
			</script>
		</head><body></body></html>`

		extractor := goquery.NewGenericExtractor(locale.Load, nil)
		recipe, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Classic Pancakes", recipe.DishName)
		assert.Equal(t, "Fluffy weekend pancakes.", recipe.Description)
		assert.Equal(t, []recipex.Ingredient{
			{Name: "flour", Amount: recipex.AmountOf(2), Units: "cups"},
			{Name: "sugar", Amount: recipex.AmountOf(1), Units: "tablespoon"},
		}, recipe.Ingredients)
		assert.Equal(t, "Mix the dry ingredients.\nFry until golden.", recipe.Instructions)
		assert.Equal(t, "10 minutes", recipe.PrepTime)
		assert.Equal(t, "20 minutes", recipe.CookTime)
		assert.Equal(t, "30 minutes", recipe.TotalTime)
		assert.Equal(t, "Breakfast", recipe.Category)
		assert.Equal(t, "pancakes, breakfast", recipe.Tags)
		assert.Equal(t, "250 kcal", recipe.NutritionInfo)
		assert.Equal(t, "https://example.com/p.jpg", recipe.ImageURLs)
	})

	t.Run("falls back to meta tags without structured data", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<meta property="og:title" content="Grandma's Soup">
			<meta name="description" content="A family classic.">
			<meta property="og:image" content="https://example.com/soup.jpg">
		</head><body></body></html>`

		extractor := goquery.NewGenericExtractor(locale.Load, nil)
		recipe, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Grandma's Soup", recipe.DishName)
		assert.Equal(t, "A family classic.", recipe.Description)
		assert.Empty(t, recipe.Ingredients)
		assert.Equal(t, "https://example.com/soup.jpg", recipe.ImageURLs)
	})

	t.Run("asks metadata extractor as last resort", func(t *testing.T) {
		t.Parallel()

		metadata := &mock.MetadataExtractor{
			ExtractMetadataFn: func(string) (*recipex.MetadataResult, error) {
				return &recipex.MetadataResult{
					Title:       "Recovered Title",
					Description: "Recovered description.",
					ImageURL:    "https://example.com/img.jpg",
				}, nil
			},
		}

		extractor := goquery.NewGenericExtractor(locale.Load, metadata)
		recipe, err := extractor.Extract("<html><body><p>bare page</p></body></html>")

		require.NoError(t, err)
		assert.Equal(t, "Recovered Title", recipe.DishName)
		assert.Equal(t, "Recovered description.", recipe.Description)
		assert.Equal(t, "https://example.com/img.jpg", recipe.ImageURLs)
	})

	t.Run("sets site from canonical URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<link rel="canonical" href="https://www.smallblog.example.com/recipe/1">
			<title>A Recipe</title>
		</head><body></body></html>`

		extractor := goquery.NewGenericExtractor(locale.Load, nil)
		recipe, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "smallblog_example_com", recipe.Site)
		assert.Equal(t, "A Recipe", recipe.DishName)
	})
}
