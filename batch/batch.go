// Package batch provides extraction orchestration over a pre-downloaded
// corpus. It walks the per-site page directories, runs the matching site
// extractor on each page, and saves the resulting records.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/fs"
)

// Extractor orchestrates batch extraction of a corpus directory.
type Extractor struct {
	Registry    recipex.ExtractorRegistry
	Store       recipex.RecipeStore
	Concurrency int

	// Now returns the extraction timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a batch extraction.
type Result struct {
	Saved  int64
	Failed int64
}

// ExtractSite processes every page saved under corpusDir/site. A missing
// site directory is not an error: sites enter the corpus incrementally
// and extraction runs are expected to be re-runnable at any point.
// The progress callback, if provided, receives an event per page.
func (e *Extractor) ExtractSite(ctx context.Context, corpusDir, site string, progress recipex.ExtractProgressFunc) (*Result, error) {
	paths, err := fs.ListPages(filepath.Join(corpusDir, site))
	if os.IsNotExist(err) {
		return &Result{}, nil
	}
	if err != nil {
		return nil, err
	}

	result := &Result{}
	total := len(paths)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency())

	for _, path := range paths {
		g.Go(func() error {
			pageErr := e.processPage(gctx, site, path)
			if pageErr != nil {
				atomic.AddInt64(&result.Failed, 1)
			} else {
				atomic.AddInt64(&result.Saved, 1)
			}
			if progress != nil {
				progress(recipex.ExtractProgress{
					Path:      path,
					Completed: int(completed.Add(1)),
					Total:     total,
					Error:     pageErr,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := gctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ExtractAll processes the given sites, or every site directory found
// under corpusDir when sites is empty.
func (e *Extractor) ExtractAll(ctx context.Context, corpusDir string, sites []string, progress recipex.ExtractProgressFunc) (*Result, error) {
	if len(sites) == 0 {
		var err error
		sites, err = fs.ListSites(corpusDir)
		if err != nil {
			return nil, err
		}
	}

	total := &Result{}
	for _, site := range sites {
		result, err := e.ExtractSite(ctx, corpusDir, site, progress)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", site, err)
		}
		total.Saved += result.Saved
		total.Failed += result.Failed
	}
	return total, nil
}

func (e *Extractor) processPage(ctx context.Context, site, path string) error {
	html, err := fs.ReadHTML(path)
	if err != nil {
		return err
	}

	extractor := e.Registry.Get(site)
	if extractor == nil {
		extractor = e.Registry.GetForHTML(html)
	}

	recipe, err := extractor.Extract(html)
	if err != nil {
		return err
	}

	recipe.Site = site
	recipe.SourcePath = path
	recipe.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(html))
	recipe.ExtractedAt = e.now()

	return e.Store.Save(ctx, recipe)
}

func (e *Extractor) concurrency() int {
	if e.Concurrency <= 0 {
		return 8
	}
	return e.Concurrency
}

func (e *Extractor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
