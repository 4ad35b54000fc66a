package mock

import "github.com/fwojciec/recipex"

var _ recipex.SiteExtractor = (*SiteExtractor)(nil)

// SiteExtractor is a mock implementation of recipex.SiteExtractor.
type SiteExtractor struct {
	ExtractFn func(html string) (*recipex.Recipe, error)
	SiteFn    func() string
}

func (e *SiteExtractor) Extract(html string) (*recipex.Recipe, error) {
	return e.ExtractFn(html)
}

func (e *SiteExtractor) Site() string {
	return e.SiteFn()
}

var _ recipex.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of recipex.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn        func(site string) recipex.SiteExtractor
	GetForHTMLFn func(html string) recipex.SiteExtractor
	RegisterFn   func(extractor recipex.SiteExtractor)
	SitesFn      func() []string
}

func (r *ExtractorRegistry) Get(site string) recipex.SiteExtractor {
	return r.GetFn(site)
}

func (r *ExtractorRegistry) GetForHTML(html string) recipex.SiteExtractor {
	return r.GetForHTMLFn(html)
}

func (r *ExtractorRegistry) Register(extractor recipex.SiteExtractor) {
	r.RegisterFn(extractor)
}

func (r *ExtractorRegistry) Sites() []string {
	return r.SitesFn()
}

var _ recipex.SiteDetector = (*SiteDetector)(nil)

// SiteDetector is a mock implementation of recipex.SiteDetector.
type SiteDetector struct {
	DetectFn func(html string) string
}

func (d *SiteDetector) Detect(html string) string {
	return d.DetectFn(html)
}

var _ recipex.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of recipex.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*recipex.MetadataResult, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*recipex.MetadataResult, error) {
	return e.ExtractMetadataFn(html)
}
