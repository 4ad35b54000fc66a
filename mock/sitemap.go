package mock

import (
	"context"

	"github.com/fwojciec/recipex"
)

var _ recipex.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of recipex.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *recipex.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *recipex.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
