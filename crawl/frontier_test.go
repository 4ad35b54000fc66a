package crawl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/crawl"
)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("pops links in push order", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		assert.True(t, f.Push(recipex.CrawlLink{URL: "https://coop.se/recept/a", Site: "coop_se"}))
		assert.True(t, f.Push(recipex.CrawlLink{URL: "https://coop.se/recept/b", Site: "coop_se"}))
		assert.Equal(t, 2, f.Len())

		first, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "https://coop.se/recept/a", first.URL)

		second, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "https://coop.se/recept/b", second.URL)

		_, ok = f.Pop()
		assert.False(t, ok)
	})

	t.Run("deduplicates pushed urls", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		assert.True(t, f.Push(recipex.CrawlLink{URL: "https://coop.se/recept/a"}))
		assert.False(t, f.Push(recipex.CrawlLink{URL: "https://coop.se/recept/a"}))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("urls differing only by fragment are duplicates", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		assert.True(t, f.Push(recipex.CrawlLink{URL: "https://coop.se/recept/a#ingredienser"}))
		assert.False(t, f.Push(recipex.CrawlLink{URL: "https://coop.se/recept/a"}))
		assert.True(t, f.Seen("https://coop.se/recept/a#tillagning"))
	})
}
