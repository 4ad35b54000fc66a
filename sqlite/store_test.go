package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/sqlite"
)

func TestRecipeStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("persists a new record", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(MustOpenDB(t))
		store := sqlite.NewRecipeStore(svc)
		ctx := context.Background()

		err := store.Save(ctx, &recipex.Recipe{
			Site:       "coop_se",
			SourcePath: "page_0001.html",
			DishName:   "Kanelbullar",
		})

		require.NoError(t, err)
		site := "coop_se"
		recipes, err := svc.FindRecipes(ctx, recipex.RecipeFilter{Site: &site})
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Kanelbullar", recipes[0].DishName)
	})

	t.Run("replaces an earlier record for the same page", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(MustOpenDB(t))
		store := sqlite.NewRecipeStore(svc)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, &recipex.Recipe{
			Site:       "coop_se",
			SourcePath: "page_0001.html",
			DishName:   "Kanelbullar",
		}))
		require.NoError(t, store.Save(ctx, &recipex.Recipe{
			Site:       "coop_se",
			SourcePath: "page_0001.html",
			DishName:   "Kanelbullar med kardemumma",
		}))

		site := "coop_se"
		recipes, err := svc.FindRecipes(ctx, recipex.RecipeFilter{Site: &site})
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Kanelbullar med kardemumma", recipes[0].DishName)
	})

	t.Run("keeps records for other pages", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecipeService(MustOpenDB(t))
		store := sqlite.NewRecipeStore(svc)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, &recipex.Recipe{
			Site: "coop_se", SourcePath: "page_0001.html",
		}))
		require.NoError(t, store.Save(ctx, &recipex.Recipe{
			Site: "coop_se", SourcePath: "page_0002.html",
		}))

		site := "coop_se"
		recipes, err := svc.FindRecipes(ctx, recipex.RecipeFilter{Site: &site})
		require.NoError(t, err)
		assert.Len(t, recipes, 2)
	})

	t.Run("commit and abort are no-ops", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewRecipeStore(sqlite.NewRecipeService(MustOpenDB(t)))

		assert.NoError(t, store.Commit())
		assert.NoError(t, store.Abort())
	})
}
