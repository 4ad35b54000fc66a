// Package trafilatura implements the last-resort metadata extractor on
// top of go-trafilatura's content heuristics.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"

	"github.com/fwojciec/recipex"
)

// Ensure MetadataExtractor implements recipex.MetadataExtractor at compile time.
var _ recipex.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor recovers page metadata from arbitrary HTML. It sits
// behind the site extractors and structured data: when neither yields a
// title or description, trafilatura's heuristics usually still do.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata processes raw HTML and returns the recovered page
// metadata.
func (e *MetadataExtractor) ExtractMetadata(rawHTML string) (*recipex.MetadataResult, error) {
	if rawHTML == "" {
		return nil, recipex.Errorf(recipex.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, recipex.Errorf(recipex.EUNPROCESSABLE, "metadata extraction failed: %v", err)
	}

	return &recipex.MetadataResult{
		Title:       result.Metadata.Title,
		Description: result.Metadata.Description,
		ImageURL:    result.Metadata.Image,
	}, nil
}
