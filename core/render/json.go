// Package render — JSON renderer.
// Builds a structured report from the converted document: the resolved
// frontmatter, the metadata actually found, the body split into sections,
// and structural counts. Links come from the source HTML because the
// Markdown body keeps only call-to-action targets.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/pagepress/core"
	"github.com/gaurav-prasanna/pagepress/core/frontmatter"
	"github.com/gaurav-prasanna/pagepress/core/links"
)

// JSONRenderer produces a structured JSON report.
type JSONRenderer struct {
	Defaults frontmatter.Defaults
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(d frontmatter.Defaults) *JSONRenderer {
	return &JSONRenderer{Defaults: d}
}

// Report is the complete JSON output for one document.
type Report struct {
	Source      string                 `json:"source"`
	Frontmatter frontmatter.Fields     `json:"frontmatter"`
	Metadata    core.Metadata          `json:"metadata"`
	Content     ReportContent          `json:"content"`
	Structure   core.DocumentStructure `json:"structure"`
}

// ReportContent holds the body as Markdown, plain text and sections.
type ReportContent struct {
	Text     string         `json:"text"`
	Markdown string         `json:"markdown"`
	Sections []core.Section `json:"sections"`
}

// Render converts the document into the JSON report.
func (r *JSONRenderer) Render(doc *core.Document) ([]byte, error) {
	markdown := doc.Markdown
	headings := extractHeadings(markdown)

	pageLinks, err := links.Extract(doc.Region, doc.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("extracting links: %w", err)
	}

	report := Report{
		Source:      doc.Source,
		Frontmatter: frontmatter.Resolve(doc.Meta, r.Defaults),
		Metadata:    doc.Meta,
		Content: ReportContent{
			Text:     stripMarkdown(markdown),
			Markdown: markdown,
			Sections: buildSections(markdown, headings),
		},
		Structure: core.DocumentStructure{
			Headings:   headings,
			Links:      pageLinks,
			CodeBlocks: countCodeBlocks(markdown),
			Tables:     countTables(markdown),
			ListItems:  countListItems(markdown),
		},
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

func buildSections(md string, headings []core.Heading) []core.Section {
	if len(headings) == 0 {
		return nil
	}

	lines := strings.Split(md, "\n")
	sections := make([]core.Section, 0, len(headings))
	headingIdx := 0

	var current *core.Section
	var sectionLines []string

	for _, line := range lines {
		if headingRegex.MatchString(line) && headingIdx < len(headings) {
			if current != nil {
				current.Text = strings.TrimSpace(strings.Join(sectionLines, "\n"))
				sections = append(sections, *current)
			}
			current = &core.Section{
				Heading: headings[headingIdx].Text,
				Level:   headings[headingIdx].Level,
			}
			sectionLines = nil
			headingIdx++
		} else if current != nil {
			sectionLines = append(sectionLines, line)
		}
	}
	if current != nil {
		current.Text = strings.TrimSpace(strings.Join(sectionLines, "\n"))
		sections = append(sections, *current)
	}

	return sections
}

// countCodeBlocks counts fenced code blocks (``` delimited).
func countCodeBlocks(md string) int {
	return strings.Count(md, "```") / 2
}

// tableSepRegex matches pipe-table separator rows (| --- | --- |).
var tableSepRegex = regexp.MustCompile(`(?m)^\|[-:| ]+\|$`)

func countTables(md string) int {
	return len(tableSepRegex.FindAllString(md, -1))
}

var listItemRegex = regexp.MustCompile(`(?m)^(?:- |\d+\. )`)

func countListItems(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}

var (
	emphasisRegex   = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	blankRunRegex   = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes common Markdown formatting to produce plain text.
func stripMarkdown(md string) string {
	text := headingRegex.ReplaceAllString(md, "$2")
	text = emphasisRegex.ReplaceAllString(text, "$1")
	text = mdLinkRegex.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "```", "")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = blankRunRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
