// Package render provides output renderers for the PagePress pipeline.
// This file implements the Markdown renderer: frontmatter plus body.
package render

import (
	"github.com/gaurav-prasanna/pagepress/core"
	"github.com/gaurav-prasanna/pagepress/core/frontmatter"
)

// MarkdownRenderer prepends the frontmatter block to the Markdown body.
type MarkdownRenderer struct {
	Defaults frontmatter.Defaults
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(d frontmatter.Defaults) *MarkdownRenderer {
	return &MarkdownRenderer{Defaults: d}
}

// Render returns frontmatter + body.
func (r *MarkdownRenderer) Render(doc *core.Document) ([]byte, error) {
	fm, err := frontmatter.Build(doc.Meta, r.Defaults)
	if err != nil {
		return nil, err
	}
	return []byte(fm + doc.Markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
