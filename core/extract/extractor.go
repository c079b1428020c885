// Package extract implements the Extractor interface and metadata search.
// It isolates the main content from a full HTML page by:
//  1. Finding the content container (<main>, then <body>, then the whole page)
//  2. Applying the ordered rewrite rules for the guide's custom markup
package extract

import (
	"regexp"

	"github.com/rs/zerolog/log"
)

var (
	mainRe = regexp.MustCompile(`(?s)<main[^>]*>(.*?)</main>`)
	bodyRe = regexp.MustCompile(`(?s)<body[^>]*>(.*?)</body>`)
)

// Rule is one textual rewrite step applied before tag parsing.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// DefaultRules are applied in order; later rules see the output of earlier ones.
var DefaultRules = []Rule{
	{"strip-script", regexp.MustCompile(`(?s)<script[^>]*>.*?</script>`), ""},
	{"strip-style", regexp.MustCompile(`(?s)<style[^>]*>.*?</style>`), ""},
	{"formula", regexp.MustCompile(`(?s)<div\s+class="formula"[^>]*>(.*?)</div>`), "\n```\n${1}\n```\n"},
	{"formula-note", regexp.MustCompile(`(?s)<p[^>]*class="formula-note"[^>]*>(.*?)</p>`), "\n> ${1}\n"},
	{"card-open", regexp.MustCompile(`<div[^>]*class="card[^"]*"[^>]*>`), ""},
	{"div-close", regexp.MustCompile(`</div>`), ""},
	{"cta-button", regexp.MustCompile(`(?s)<a[^>]*href="([^"]*)"[^>]*class="cta-button"[^>]*>(.*?)</a>`), "\n\n[**${2}**](${1})\n\n"},
}

// RegionExtractor selects the main-content region and rewrites it.
type RegionExtractor struct {
	Rules []Rule
}

// New creates a RegionExtractor with the default rule pipeline.
func New() *RegionExtractor {
	return &RegionExtractor{Rules: DefaultRules}
}

// Extract returns the rewritten main-content region of html.
// It never fails; the error return satisfies core.Extractor.
func (e *RegionExtractor) Extract(html string) (string, error) {
	content := SelectRegion(html)
	for _, r := range e.Rules {
		n := len(r.Pattern.FindAllStringIndex(content, -1))
		if n == 0 {
			continue
		}
		content = r.Pattern.ReplaceAllString(content, r.Replacement)
		log.Debug().Str("rule", r.Name).Int("matches", n).Msg("rewrite applied")
	}
	return content, nil
}

// SelectRegion returns the inner HTML of the first <main>, else of the
// first <body>, else the whole document.
func SelectRegion(html string) string {
	if m := mainRe.FindStringSubmatch(html); m != nil {
		return m[1]
	}
	if m := bodyRe.FindStringSubmatch(html); m != nil {
		log.Debug().Msg("no <main> element, using <body>")
		return m[1]
	}
	log.Debug().Msg("no <main> or <body> element, using whole document")
	return html
}
