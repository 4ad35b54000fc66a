package main

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/goquery"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	var urlFilter *recipex.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &recipex.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	site := c.Site
	if site == "" {
		u, err := url.Parse(c.URL)
		if err != nil || u.Host == "" {
			fmt.Fprintf(deps.Stderr, "error: invalid URL %q\n", c.URL)
			return fmt.Errorf("invalid URL %q", c.URL)
		}
		site = goquery.SiteID(u.Host)
	}

	progress := func(pageURL string, completed, total int, err error) {
		if err != nil {
			deps.Logger.Warn().Str("url", pageURL).Err(err).Msg("fetch failed")
			return
		}
		deps.Logger.Debug().Str("url", pageURL).Int("completed", completed).Int("total", total).Msg("fetched")
	}

	result, err := deps.Collector.CollectSite(deps.Ctx, c.URL, site, c.Dir, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages for %s (%d failed)\n", result.Saved, site, result.Failed)
	return nil
}
