package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/recipex"
	recipexhttp "github.com/fwojciec/recipex/http"
)

// Ensure Fetcher implements recipex.Fetcher at compile time.
var _ recipex.Fetcher = (*recipexhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns page HTML", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte("<html><body><h1>Carbonara</h1></body></html>"))
		}))
		defer srv.Close()

		f := recipexhttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "Carbonara")
	})

	t.Run("sends a browser-like user agent", func(t *testing.T) {
		t.Parallel()

		var userAgent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := recipexhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.NotEmpty(t, userAgent)
		assert.NotContains(t, userAgent, "Go-http-client")
	})

	t.Run("decodes legacy charsets", func(t *testing.T) {
		t.Parallel()

		// "héllo" in ISO-8859-1
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			w.Write([]byte{'h', 0xe9, 'l', 'l', 'o'})
		}))
		defer srv.Close()

		f := recipexhttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "héllo", html)
	})

	t.Run("non-200 status returns error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := recipexhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Error(t, err)
	})
}
