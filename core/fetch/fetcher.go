// Package fetch implements the Loader interface.
// Local paths are read from disk; http(s) URLs are fetched with a plain GET.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gaurav-prasanna/pagepress/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "PagePress/1.0 (https://github.com/gaurav-prasanna/pagepress)"
)

// Loader reads HTML documents from disk or over HTTP.
type Loader struct {
	client *http.Client
}

// New creates a Loader with a sensible HTTP timeout.
func New() *Loader {
	return &Loader{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// IsURL reports whether location should be fetched over HTTP.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Load returns the document at location.
func (l *Loader) Load(ctx context.Context, location string) (*core.Source, error) {
	var (
		data []byte
		err  error
	)
	if IsURL(location) {
		data, err = l.fetch(ctx, location)
	} else {
		data, err = readFile(location)
	}
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("decoding %s: %w", location, core.ErrDecode)
	}
	return &core.Source{
		Location: location,
		HTML:     string(data),
		IsURL:    IsURL(location),
	}, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("reading %s: %w", path, core.ErrInputNotFound)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w: %v", path, core.ErrDecode, err)
	}
	return data, nil
}

// fetch retrieves the HTML content of the given URL.
func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("fetching %s: %w", url, core.ErrInputNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
