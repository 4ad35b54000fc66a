package mock

import (
	"context"

	"github.com/fwojciec/recipex"
)

var _ recipex.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of recipex.URLFrontier.
type URLFrontier struct {
	PushFn func(link recipex.CrawlLink) bool
	PopFn  func() (recipex.CrawlLink, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *URLFrontier) Push(link recipex.CrawlLink) bool {
	return f.PushFn(link)
}

func (f *URLFrontier) Pop() (recipex.CrawlLink, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ recipex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of recipex.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
