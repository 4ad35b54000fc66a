package crawl_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/crawl"
	"github.com/fwojciec/recipex/mock"
)

func TestCollector_CollectSite(t *testing.T) {
	t.Parallel()

	t.Run("saves discovered pages to the corpus layout", func(t *testing.T) {
		t.Parallel()

		corpusDir := t.TempDir()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, _ *recipex.URLFilter) ([]string, error) {
				return []string{
					"https://coop.se/recept/kottbullar",
					"https://coop.se/recept/pannkakor",
				}, nil
			},
		}
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<html><body>" + url + "</body></html>", nil
			},
		}

		c := &crawl.Collector{
			Sitemaps: sitemaps,
			Fetcher:  fetcher,
			Frontier: crawl.NewFrontier(100, 0.01),
		}
		result, err := c.CollectSite(context.Background(), "https://coop.se", "coop_se", corpusDir, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Saved)
		assert.Equal(t, int64(0), result.Failed)

		for _, name := range []string{"page_0001.html", "page_0002.html"} {
			content, err := os.ReadFile(filepath.Join(corpusDir, "coop_se", name))
			require.NoError(t, err)
			assert.Contains(t, string(content), "coop.se/recept/")
		}
	})

	t.Run("frontier deduplicates across runs", func(t *testing.T) {
		t.Parallel()

		corpusDir := t.TempDir()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(context.Context, string, *recipex.URLFilter) ([]string, error) {
				return []string{"https://coop.se/recept/kottbullar"}, nil
			},
		}
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "<html></html>", nil
			},
		}

		c := &crawl.Collector{
			Sitemaps: sitemaps,
			Fetcher:  fetcher,
			Frontier: crawl.NewFrontier(100, 0.01),
		}
		ctx := context.Background()

		first, err := c.CollectSite(ctx, "https://coop.se", "coop_se", corpusDir, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), first.Saved)

		second, err := c.CollectSite(ctx, "https://coop.se", "coop_se", corpusDir, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), second.Saved)
	})

	t.Run("counts fetch failures without stopping", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(context.Context, string, *recipex.URLFilter) ([]string, error) {
				return []string{
					"https://coop.se/recept/a",
					"https://coop.se/recept/b",
				}, nil
			},
		}
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://coop.se/recept/a" {
					return "", recipex.Errorf(recipex.EINTERNAL, "connection reset")
				}
				return "<html></html>", nil
			},
		}

		c := &crawl.Collector{
			Sitemaps: sitemaps,
			Fetcher:  fetcher,
			Frontier: crawl.NewFrontier(100, 0.01),
		}
		result, err := c.CollectSite(context.Background(), "https://coop.se", "coop_se", t.TempDir(), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Saved)
		assert.Equal(t, int64(1), result.Failed)
	})
}
