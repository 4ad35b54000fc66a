package recipex

import "context"

// Fetcher retrieves HTML from recipe page URLs during corpus collection.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}
