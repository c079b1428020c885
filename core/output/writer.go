// Package output handles file naming and writing for PagePress outputs.
// An explicit path is written as given. Otherwise the name is derived from
// the input: a file's stem (index.html -> index.md), or for URLs the
// domain and path (https://example.com/guides/jre -> example_com_guides_jre.md).
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/pagepress/core"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}
	return &Writer{OutputDir: outputDir}, nil
}

// Path returns where output for input should go. A non-empty explicit
// path wins; otherwise the name is derived inside OutputDir.
func (w *Writer) Path(input, explicit, ext string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(w.OutputDir, DeriveName(input)+ext)
}

// Write writes data to path, creating parent directories and replacing
// any existing file.
func (w *Writer) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w: %v", dir, core.ErrWrite, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w: %v", path, core.ErrWrite, err)
	}
	return nil
}

// DeriveName turns an input location into a flat base name.
func DeriveName(input string) string {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return filenameFromURL(input)
	}
	base := filepath.Base(input)
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return "output"
}

// filenameFromURL converts a URL into a flat filename.
// Example: https://example.com/docs/intro -> example_com_docs_intro
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(strings.TrimSuffix(seg, filepath.Ext(seg))))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
