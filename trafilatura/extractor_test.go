package trafilatura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/trafilatura"
)

// Ensure MetadataExtractor implements recipex.MetadataExtractor at compile time.
var _ recipex.MetadataExtractor = (*trafilatura.MetadataExtractor)(nil)

func TestMetadataExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("recovers title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Carbonara - Some Food Blog</title>
<meta property="og:title" content="Classic Carbonara">
<meta property="og:description" content="The Roman way to do it.">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Classic Carbonara</h1>
<p>Whisk the eggs with the cheese before the pasta is done.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewMetadataExtractor()
		result, err := ext.ExtractMetadata(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("empty input returns EINVALID", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewMetadataExtractor()
		_, err := ext.ExtractMetadata("")

		assert.Equal(t, recipex.EINVALID, recipex.ErrorCode(err))
	})
}
