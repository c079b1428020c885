// Package core defines the pipeline interfaces for PagePress.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"errors"
)

// Sentinel errors for the fatal failure classes. Stages wrap them with
// context so callers can match with errors.Is.
var (
	ErrInputNotFound = errors.New("input not found")
	ErrDecode        = errors.New("input is not valid UTF-8 text")
	ErrWrite         = errors.New("output not writable")
)

// Source holds the raw HTML loaded from a file path or URL.
type Source struct {
	Location string
	HTML     string
	// IsURL reports whether Location was fetched over HTTP.
	IsURL bool
}

// Metadata field names.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldKeywords    = "keywords"
	FieldDate        = "date"
)

// Metadata maps field names to the values found in the document.
// A field is present only when the document carried it; date is always set.
type Metadata map[string]string

// Get returns the named field or fallback when the field is absent.
func (m Metadata) Get(field, fallback string) string {
	if v, ok := m[field]; ok {
		return v
	}
	return fallback
}

// Len returns the number of fields present.
func (m Metadata) Len() int {
	return len(m)
}

// Document is the converted page handed to renderers.
type Document struct {
	Source string `json:"source"`
	// BaseURL resolves relative links; empty for local files.
	BaseURL  string   `json:"-"`
	Meta     Metadata `json:"metadata"`
	Region   string   `json:"-"` // rewritten main-content HTML
	Markdown string   `json:"markdown"`
}

// Section represents a heading-delimited section of content.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Heading represents a single heading found in the content.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the source region.
type Link struct {
	Text     string `json:"text"`
	Href     string `json:"href"`
	External bool   `json:"external,omitempty"`
	Asset    bool   `json:"asset,omitempty"`
}

// DocumentStructure holds structural metadata parsed from the body.
type DocumentStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	CodeBlocks int       `json:"code_blocks"`
	Tables     int       `json:"tables"`
	ListItems  int       `json:"list_items"`
}

// Loader reads the raw input document.
type Loader interface {
	Load(ctx context.Context, location string) (*Source, error)
}

// Extractor selects the main-content region and applies the rewrite rules.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts the rewritten region into a Markdown body.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a Document into a final output format.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
