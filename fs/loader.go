// Package fs provides file-based corpus loading and recipe output
// storage.
package fs

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html/charset"
)

// ReadHTML reads a saved page and decodes it to UTF-8. Older pages in
// the corpus were downloaded before encoding normalization, so the
// declared or sniffed charset is honored rather than assumed.
func ReadHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r, err := charset.NewReader(f, "text/html")
	if err != nil {
		return "", err
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ListPages returns the HTML files directly under dir, sorted by name.
func ListPages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ListSites returns the site subdirectories of a corpus directory,
// sorted by name.
func ListSites(corpusDir string) ([]string, error) {
	entries, err := os.ReadDir(corpusDir)
	if err != nil {
		return nil, err
	}

	var sites []string
	for _, entry := range entries {
		if entry.IsDir() {
			sites = append(sites, entry.Name())
		}
	}
	sort.Strings(sites)
	return sites, nil
}
