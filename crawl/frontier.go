package crawl

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/fwojciec/recipex"
)

// Compile-time interface verification.
var _ recipex.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory download queue with Bloom filter
// deduplication. Recipe pages are leaves (collection never follows
// links out of a page), so ordering is plain FIFO. It is safe for
// concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	queue []recipex.CrawlLink
}

// NewFrontier creates a new Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(n, fpRate),
	}
}

// Push adds a link to the frontier.
// Returns false if the URL has already been seen. URL fragments are
// stripped before deduplication, so URLs differing only by fragment are
// considered duplicates.
func (f *Frontier) Push(link recipex.CrawlLink) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	link.URL = stripFragment(link.URL)
	if f.seen.TestString(link.URL) {
		return false
	}
	f.seen.AddString(link.URL)

	f.queue = append(f.queue, link)
	return true
}

// Pop returns the next link in queue order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (recipex.CrawlLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return recipex.CrawlLink{}, false
	}
	link := f.queue[0]
	f.queue = f.queue[1:]
	return link, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
