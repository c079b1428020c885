// Package links lists the anchors of a content region with their targets.
// The tag-driven Markdown drops generic link targets, so reports read them
// from the HTML instead.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/pagepress/core"
)

// Extract returns every <a href> in fragment in document order. When base
// is non-empty, relative targets are resolved against it and links to
// other hosts are flagged external. Targets differing only by fragment or
// trailing slash are kept once.
func Extract(fragment string, base string) ([]core.Link, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var baseURL *url.URL
	if base != "" {
		if baseURL, err = url.Parse(base); err != nil {
			return nil, fmt.Errorf("parsing base URL: %w", err)
		}
	}

	seen := make(map[string]bool)
	out := []core.Link{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		target := resolve(strings.TrimSpace(href), baseURL)
		if target == nil {
			return
		}
		key := dedupeKey(target)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, core.Link{
			Text:     strings.Join(strings.Fields(s.Text()), " "),
			Href:     target.String(),
			External: IsExternal(target, baseURL),
			Asset:    IsAsset(target),
		})
	})
	return out, nil
}

// resolve returns href resolved against base, or nil for targets that are
// not pages (mailto, javascript, tel, in-page fragments).
func resolve(href string, base *url.URL) *url.URL {
	if href == "" || strings.HasPrefix(href, "#") {
		return nil
	}
	lower := strings.ToLower(href)
	for _, p := range []string{"mailto:", "javascript:", "tel:"} {
		if strings.HasPrefix(lower, p) {
			return nil
		}
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return nil
	}
	if base == nil {
		return parsed
	}
	return base.ResolveReference(parsed)
}
