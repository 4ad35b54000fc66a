package recipex

import "context"

// CrawlLink represents a discovered recipe page URL queued for download.
type CrawlLink struct {
	URL  string
	Site string
}

// URLFrontier manages a download queue with deduplication.
type URLFrontier interface {
	// Push adds a link to the frontier.
	// Returns false if the URL has already been seen.
	Push(link CrawlLink) bool

	// Pop returns the next URL.
	// Returns false if the frontier is empty.
	Pop() (CrawlLink, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
