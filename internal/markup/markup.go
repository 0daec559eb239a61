// Package markup renders CMS-authored markdown into sanitized HTML for the
// blog and vendor pages. The CMS is trusted-ish, but its editors paste from
// everywhere, so everything goes through the sanitizer.
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

var policy = bluemonday.UGCPolicy()

// Render converts markdown to sanitized HTML safe to embed in templates.
func Render(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markup: render: %w", err)
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}

// SanitizeHTML cleans HTML that arrives pre-rendered from the CMS (e.g. FAQ
// answers authored in its rich-text editor).
func SanitizeHTML(raw string) template.HTML {
	return template.HTML(policy.Sanitize(raw))
}

// Excerpt extracts the first maxRunes runes of visible text from rendered
// HTML, for meta descriptions and listing cards. Output is plain text with
// collapsed whitespace and a trailing ellipsis when truncated.
func Excerpt(rendered template.HTML, maxRunes int) string {
	node, err := html.Parse(strings.NewReader(string(rendered)))
	if err != nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)

	text := strings.Join(strings.Fields(b.String()), " ")
	runes := []rune(text)
	if maxRunes <= 0 || len(runes) <= maxRunes {
		return text
	}
	cut := string(runes[:maxRunes])
	if idx := strings.LastIndex(cut, " "); idx > maxRunes/2 {
		cut = cut[:idx]
	}
	return cut + "…"
}
