package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/batch"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	// Absent corpus is a no-op: collection may not have run yet.
	if _, err := os.Stat(c.Dir); os.IsNotExist(err) {
		fmt.Fprintf(deps.Stdout, "No pages found: directory %q does not exist\n", c.Dir)
		return nil
	}

	extractor := &batch.Extractor{
		Registry:    deps.Registry,
		Store:       deps.Store,
		Concurrency: c.Concurrency,
	}

	progress := func(event recipex.ExtractProgress) {
		if event.Error != nil {
			deps.Logger.Warn().Str("page", event.Path).Err(event.Error).Msg("extraction failed")
			return
		}
		deps.Logger.Debug().Str("page", event.Path).Int("completed", event.Completed).Int("total", event.Total).Msg("extracted")
	}

	var sites []string
	if c.Site != "" {
		sites = []string{c.Site}
	}

	result, err := extractor.ExtractAll(deps.Ctx, c.Dir, sites, progress)
	if err != nil {
		if abortErr := deps.Store.Abort(); abortErr != nil {
			deps.Logger.Warn().Err(abortErr).Msg("abort failed")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipex.ErrorMessage(err))
		return err
	}

	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d records (%d failed)\n", result.Saved, result.Failed)
	return nil
}
