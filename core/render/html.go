// Package render — HTML preview renderer.
// Renders the converted Markdown back to HTML with goldmark so the result
// can be checked in a browser before publishing.
package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/gaurav-prasanna/pagepress/core"
	"github.com/gaurav-prasanna/pagepress/core/frontmatter"
)

// HTMLRenderer renders the Markdown body as a standalone HTML page.
type HTMLRenderer struct {
	Defaults frontmatter.Defaults
	engine   goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer with GFM tables enabled.
func NewHTMLRenderer(d frontmatter.Defaults) *HTMLRenderer {
	return &HTMLRenderer{
		Defaults: d,
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts the body to HTML and wraps it in a page.
func (r *HTMLRenderer) Render(doc *core.Document) ([]byte, error) {
	var body bytes.Buffer
	if err := r.engine.Convert([]byte(doc.Markdown), &body); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}

	fields := frontmatter.Resolve(doc.Meta, r.Defaults)

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(fields.Title))
	fmt.Fprintf(&buf, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(fields.Summary))
	buf.WriteString("</head>\n<body>\n<article>\n")
	buf.Write(body.Bytes())
	buf.WriteString("</article>\n</body>\n</html>\n")
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
