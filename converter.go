package recipex

// Converter converts HTML to Markdown. Site extractors use it for
// instruction and notes blocks whose internal structure (lists, emphasis)
// is worth keeping in the text output.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
