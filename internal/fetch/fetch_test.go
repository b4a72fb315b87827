package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	t.Run("Successful fetch", func(t *testing.T) {
		var gotUserAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserAgent = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer server.Close()

		result, err := URL(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Contains(t, result.HTML, "hello")
		assert.Contains(t, result.ContentType, "text/html")
		assert.Equal(t, DefaultUserAgent, gotUserAgent)
	})

	t.Run("Custom headers", func(t *testing.T) {
		var gotHeader string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotHeader = r.Header.Get("X-Custom")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		opts := DefaultOptions()
		opts.Headers = map[string]string{"X-Custom": "value"}
		_, err := URL(context.Background(), server.URL, opts)
		require.NoError(t, err)
		assert.Equal(t, "value", gotHeader)
	})

	t.Run("Non-200 status returns the body and an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("not here"))
		}))
		defer server.Close()

		result, err := URL(context.Background(), server.URL, nil)
		require.Error(t, err)
		var fetchErr *Error
		require.True(t, errors.As(err, &fetchErr))
		assert.Contains(t, fetchErr.Message, "404")
		require.NotNil(t, result)
		assert.Equal(t, http.StatusNotFound, result.StatusCode)
		assert.Equal(t, "not here", result.HTML)
	})

	t.Run("Invalid URL", func(t *testing.T) {
		tests := []string{"", "not-a-url", "://missing-scheme"}
		for _, raw := range tests {
			_, err := URL(context.Background(), raw, nil)
			assert.Error(t, err, "url %q", raw)
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		opts := DefaultOptions()
		opts.Timeout = 20 * time.Millisecond
		_, err := URL(context.Background(), server.URL, opts)
		require.Error(t, err)
		var fetchErr *Error
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, "HTTP request failed", fetchErr.Message)
	})
}

func TestExtractMainText(t *testing.T) {
	t.Run("Prefers the first matching selector", func(t *testing.T) {
		html := `<html><body>
			<nav>Site navigation</nav>
			<article><p>The actual story.</p></article>
			<main><p>Wrapper text.</p></main>
			<footer>Copyright</footer>
		</body></html>`

		text, err := ExtractMainText(html, ArticleSelectors())
		require.NoError(t, err)
		assert.Contains(t, text, "The actual story.")
		assert.NotContains(t, text, "Site navigation")
		assert.NotContains(t, text, "Copyright")
	})

	t.Run("Falls back to body when no selector matches", func(t *testing.T) {
		html := `<html><body><div><p>Plain page text.</p></div></body></html>`
		text, err := ExtractMainText(html, []string{".missing"})
		require.NoError(t, err)
		assert.Contains(t, text, "Plain page text.")
	})

	t.Run("Removes noise elements", func(t *testing.T) {
		html := `<html><body><article>
			<script>var x = 1;</script>
			<div class="ad">Buy now</div>
			<div class="cookie-banner">Accept cookies</div>
			<p>Signal.</p>
		</article></body></html>`

		text, err := ExtractMainText(html, ArticleSelectors())
		require.NoError(t, err)
		assert.Contains(t, text, "Signal.")
		assert.NotContains(t, text, "var x")
		assert.NotContains(t, text, "Buy now")
		assert.NotContains(t, text, "Accept cookies")
	})
}

func TestCleanWhitespace(t *testing.T) {
	input := "  first line  \n\n\n   \n  second line\n"
	assert.Equal(t, "first line\nsecond line", cleanWhitespace(input))
	assert.Equal(t, "", cleanWhitespace("   \n \t \n"))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   \n  "))
	assert.True(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength-1)))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength)))
}
