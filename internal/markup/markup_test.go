package markup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurelia-studios/aurelia-web/internal/markup"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	out, err := markup.Render("## Planning your shoot\n\nBring **two** outfits.")
	require.NoError(t, err)
	html := string(out)
	require.Contains(t, html, "<h2")
	require.Contains(t, html, "Planning your shoot")
	require.Contains(t, html, "<strong>two</strong>")
}

func TestRenderStripsScripts(t *testing.T) {
	t.Parallel()

	out, err := markup.Render("hello <script>alert(1)</script> world\n\n<img src=x onerror=alert(1)>")
	require.NoError(t, err)
	html := string(out)
	require.NotContains(t, html, "<script")
	require.NotContains(t, html, "onerror")
	require.Contains(t, html, "hello")
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	out := markup.SanitizeHTML(`<p>Yes, we travel.</p><iframe src="https://evil.example"></iframe>`)
	require.Contains(t, string(out), "<p>Yes, we travel.</p>")
	require.NotContains(t, string(out), "iframe")
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	rendered, err := markup.Render("A **long** opening paragraph about wedding photography in Mumbai, covering candid and traditional styles.")
	require.NoError(t, err)

	t.Run("short text untouched", func(t *testing.T) {
		t.Parallel()
		got := markup.Excerpt(rendered, 500)
		require.Contains(t, got, "A long opening paragraph")
		require.NotContains(t, got, "<")
		require.False(t, strings.HasSuffix(got, "…"))
	})

	t.Run("truncates on a word boundary", func(t *testing.T) {
		t.Parallel()
		got := markup.Excerpt(rendered, 40)
		require.True(t, strings.HasSuffix(got, "…"))
		require.LessOrEqual(t, len([]rune(got)), 41)
		require.False(t, strings.HasSuffix(strings.TrimSuffix(got, "…"), " "))
	})

	t.Run("zero max returns full text", func(t *testing.T) {
		t.Parallel()
		got := markup.Excerpt(rendered, 0)
		require.Contains(t, got, "traditional styles.")
	})
}

func TestExcerptCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	got := markup.Excerpt("<p>one\n   two</p>\n<p>three</p>", 100)
	require.Equal(t, "one two three", got)
}
