// Package normalize implements the Normalizer interface.
// It converts the rewritten content region into a Markdown body.
//
// TagNormalizer is a single-pass state machine driven by the x/net/html
// tokenizer and only understands the tag subset the guide pages use.
// LibraryNormalizer delegates to html-to-markdown for anything else.
package normalize

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
	spaceRunRe   = regexp.MustCompile(` +`)
)

// TagNormalizer converts HTML by streaming tokens through an emitter.
// The zero value is ready to use and safe to reuse across calls.
type TagNormalizer struct{}

// New creates a TagNormalizer.
func New() *TagNormalizer {
	return &TagNormalizer{}
}

// Normalize converts an HTML fragment into Markdown and applies Cleanup.
func (n *TagNormalizer) Normalize(fragment string) (string, error) {
	e := newEmitter()
	z := html.NewTokenizer(strings.NewReader(fragment))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("tokenizing HTML: %w", err)
			}
			return Cleanup(e.finish()), nil
		case html.StartTagToken:
			e.start(newTagToken(z.Token()))
		case html.EndTagToken:
			e.end(newTagToken(z.Token()))
		case html.SelfClosingTagToken:
			t := newTagToken(z.Token())
			e.start(t)
			e.end(t)
		case html.TextToken:
			e.text(z.Token().Data)
		}
	}
}

// Cleanup collapses three or more newlines to two and runs of spaces to one.
// Applying it twice yields the same result as applying it once.
func Cleanup(md string) string {
	md = newlineRunRe.ReplaceAllString(md, "\n\n")
	return spaceRunRe.ReplaceAllString(md, " ")
}

// tagToken is one start or end tag. Attributes are not consulted; the
// rewrite rules have already consumed the ones that matter.
type tagToken struct {
	name string
}

func newTagToken(tok html.Token) tagToken {
	return tagToken{name: strings.ToLower(tok.Data)}
}

// collapseSpace joins whitespace-separated fields with single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
