package goquery

import (
	"strings"

	"github.com/fwojciec/recipex"
)

// Ensure type implements interface.
var _ recipex.SiteDetector = (*SiteDetector)(nil)

// SiteDetector derives a site ID from the page itself. Saved pages carry
// their origin in the canonical link or og:url tag, and the site ID is
// the host with "www." stripped and separators folded to underscores, so
// "https://blog.giallozafferano.it/..." detects as
// "blog_giallozafferano_it".
type SiteDetector struct{}

// NewSiteDetector returns a new instance of SiteDetector.
func NewSiteDetector() *SiteDetector {
	return &SiteDetector{}
}

// Detect analyzes HTML and returns the identified site ID, or "" when
// the page declares no usable origin.
func (d *SiteDetector) Detect(html string) string {
	doc, err := parseDoc(html)
	if err != nil {
		return ""
	}
	return SiteID(canonicalHost(doc))
}

// SiteID converts a hostname to the site ID form used throughout the
// system: "blog.giallozafferano.it" becomes "blog_giallozafferano_it".
func SiteID(host string) string {
	host = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(host)), "www.")
	if host == "" {
		return ""
	}
	host = strings.ReplaceAll(host, ".", "_")
	host = strings.ReplaceAll(host, "-", "_")
	return host
}
