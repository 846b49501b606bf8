package blog

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts a post body from markdown to HTML
type Renderer interface {
	Render(body string) (string, error)
}

// GoldmarkRenderer renders CommonMark (fenced code included) plus GFM tables.
// A single instance is safe to share across requests.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates the renderer used for post bodies
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
			// posts are authored by the site owner and may embed raw HTML
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render implements Renderer
func (r *GoldmarkRenderer) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
