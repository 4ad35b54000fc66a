package recipex

// SiteExtractor extracts all recipe fields from one page of a specific
// site. Extraction is best-effort and per-field independent: a field that
// cannot be located is left empty, and no field failure blocks another.
type SiteExtractor interface {
	// Extract processes raw HTML and returns the recipe data found in it.
	// It returns an error only when the HTML cannot be parsed at all.
	Extract(html string) (*Recipe, error)

	// Site returns the site identifier the extractor handles
	// (e.g., "blog_giallozafferano_it").
	Site() string
}

// SiteDetector identifies the source site of a saved recipe page.
type SiteDetector interface {
	// Detect analyzes HTML and returns the identified site ID.
	// Returns "" if the site cannot be determined.
	Detect(html string) string
}

// ExtractorRegistry manages site-specific extractors.
type ExtractorRegistry interface {
	// Get returns the extractor for a site ID.
	// Returns nil if no extractor is registered for the site.
	Get(site string) SiteExtractor

	// GetForHTML detects the site from HTML and returns the appropriate
	// extractor. Falls back to a generic extractor if the site is unknown.
	GetForHTML(html string) SiteExtractor

	// Register adds an extractor for its site.
	Register(extractor SiteExtractor)

	// Sites returns all registered site IDs.
	Sites() []string
}

// MetadataResult holds page-level metadata recovered by a generic
// content extractor.
type MetadataResult struct {
	Title       string
	Description string
	ImageURL    string
}

// MetadataExtractor recovers page metadata from arbitrary HTML. It is the
// last resort behind site-specific markup rules and structured data.
type MetadataExtractor interface {
	// ExtractMetadata processes raw HTML and returns whatever page
	// metadata the underlying heuristics can recover.
	ExtractMetadata(html string) (*MetadataResult, error)
}
