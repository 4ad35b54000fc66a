package goquery

import (
	"sort"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry maps site IDs to their extractors and falls back to
// a generic extractor for sites without dedicated markup rules.
type ExtractorRegistry struct {
	detector   recipex.SiteDetector
	fallback   recipex.SiteExtractor
	extractors map[string]recipex.SiteExtractor
}

// NewExtractorRegistry returns a registry that resolves unknown sites to
// fallback. The detector and fallback are required; extractors are added
// with Register.
func NewExtractorRegistry(detector recipex.SiteDetector, fallback recipex.SiteExtractor) *ExtractorRegistry {
	return &ExtractorRegistry{
		detector:   detector,
		fallback:   fallback,
		extractors: make(map[string]recipex.SiteExtractor),
	}
}

// Register adds an extractor under the site ID it reports. A later
// registration for the same site replaces the earlier one.
func (r *ExtractorRegistry) Register(extractor recipex.SiteExtractor) {
	r.extractors[extractor.Site()] = extractor
}

// Get returns the extractor for a site ID, or nil when none is
// registered.
func (r *ExtractorRegistry) Get(site string) recipex.SiteExtractor {
	return r.extractors[site]
}

// GetForHTML detects the site from HTML and returns the matching
// extractor, or the generic fallback when the site is unknown or
// undetectable.
func (r *ExtractorRegistry) GetForHTML(html string) recipex.SiteExtractor {
	if site := r.detector.Detect(html); site != "" {
		if extractor, ok := r.extractors[site]; ok {
			return extractor
		}
	}
	return r.fallback
}

// Sites returns all registered site IDs in sorted order.
func (r *ExtractorRegistry) Sites() []string {
	sites := make([]string, 0, len(r.extractors))
	for site := range r.extractors {
		sites = append(sites, site)
	}
	sort.Strings(sites)
	return sites
}
