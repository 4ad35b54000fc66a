// Package crawl provides corpus collection orchestration. It
// coordinates sitemap discovery, polite fetching, and saving of recipe
// pages into the per-site corpus layout that extraction reads.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/recipex"
)

// Collector downloads the recipe pages of one site into the corpus.
type Collector struct {
	Sitemaps    recipex.SitemapService
	Fetcher     recipex.Fetcher
	Frontier    recipex.URLFrontier
	RateLimiter recipex.DomainLimiter
	Concurrency int
}

// Result holds the outcome of a collection run.
type Result struct {
	Saved  int64
	Failed int64
}

// ProgressFunc is a callback for reporting collection progress.
type ProgressFunc func(url string, completed, total int, err error)

// CollectSite discovers the recipe URLs of baseURL through its sitemap,
// downloads each page, and saves it under corpusDir/site as
// page_NNNN.html. The filter narrows discovery to recipe paths; the
// frontier deduplicates across runs within a process.
func (c *Collector) CollectSite(ctx context.Context, baseURL, site, corpusDir string, filter *recipex.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := c.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	var links []recipex.CrawlLink
	for _, u := range urls {
		link := recipex.CrawlLink{URL: u, Site: site}
		if c.Frontier.Push(link) {
			links = append(links, link)
		}
	}
	if len(links) == 0 {
		return &Result{}, nil
	}

	siteDir := filepath.Join(corpusDir, site)
	if err := os.MkdirAll(siteDir, 0755); err != nil {
		return nil, err
	}

	result := &Result{}
	total := len(links)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())

	for i, link := range links {
		g.Go(func() error {
			pageErr := c.fetchPage(gctx, link, filepath.Join(siteDir, fmt.Sprintf("page_%04d.html", i+1)))
			if pageErr != nil {
				atomic.AddInt64(&result.Failed, 1)
			} else {
				atomic.AddInt64(&result.Saved, 1)
			}
			if progress != nil {
				progress(link.URL, int(completed.Add(1)), total, pageErr)
			}
			if gctx.Err() != nil {
				return gctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Collector) fetchPage(ctx context.Context, link recipex.CrawlLink, path string) error {
	if c.RateLimiter != nil {
		u, err := url.Parse(link.URL)
		if err != nil {
			return err
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return err
		}
	}

	html, err := c.Fetcher.Fetch(ctx, link.URL)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(html), 0644)
}

func (c *Collector) concurrency() int {
	if c.Concurrency <= 0 {
		return 4
	}
	return c.Concurrency
}
