package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// LibraryNormalizer converts HTML to Markdown using html-to-markdown.
// Unlike TagNormalizer it keeps link targets and handles arbitrary markup.
type LibraryNormalizer struct{}

// NewLibrary creates a LibraryNormalizer.
func NewLibrary() *LibraryNormalizer {
	return &LibraryNormalizer{}
}

// Normalize converts a cleaned HTML fragment into Markdown.
func (n *LibraryNormalizer) Normalize(fragment string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown) + "\n", nil
}
