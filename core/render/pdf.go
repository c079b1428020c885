// Package render — PDF renderer.
// Converts the Markdown body into a styled PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs, code blocks, lists,
// blockquotes and pipe tables. The built-in core fonts only cover cp1252;
// set FontPath to a TrueType font to render other scripts such as Japanese.
package render

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/pagepress/core"
	"github.com/gaurav-prasanna/pagepress/core/frontmatter"
)

// PDFRenderer renders Markdown content as a PDF document.
type PDFRenderer struct {
	Defaults frontmatter.Defaults
	// FontPath is an optional .ttf file embedded as a UTF-8 font.
	FontPath string
}

const utf8Family = "body"

// pdfFonts names the families to draw with and the text encoder they need.
type pdfFonts struct {
	text string
	mono string
	tr   func(string) string
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer(d frontmatter.Defaults) *PDFRenderer {
	return &PDFRenderer{Defaults: d}
}

var numberedItemRegex = regexp.MustCompile(`^\d+\.\s`)

// Render converts the document body into PDF bytes.
func (r *PDFRenderer) Render(doc *core.Document) ([]byte, error) {
	fields := frontmatter.Resolve(doc.Meta, r.Defaults)

	pdf := gofpdf.New("P", "mm", "A4", "")
	fonts, err := r.loadFonts(pdf)
	if err != nil {
		return nil, err
	}
	tr := fonts.tr
	pdf.SetTitle(fields.Title, true)
	pdf.SetAuthor(fields.Author, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont(fonts.text, "B", 18)
	pdf.MultiCell(0, 8, tr(fields.Title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(fonts.text, "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr(fields.Date+"  ·  "+doc.Source), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	lines := strings.Split(doc.Markdown, "\n")
	inCodeBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont(fonts.mono, "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		switch {
		case trimmed == "":
			pdf.Ln(3)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			renderHeading(pdf, fonts.text, tr(strings.TrimSpace(strings.TrimLeft(trimmed, "#"))), level)
		case strings.HasPrefix(trimmed, "|"):
			if tableSepRegex.MatchString(trimmed) {
				continue
			}
			pdf.SetFont(fonts.mono, "", 9)
			pdf.MultiCell(0, 4.5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		case strings.HasPrefix(trimmed, "> "):
			pdf.SetFont(fonts.text, "I", 10)
			pdf.SetTextColor(80, 80, 80)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed[2:])), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		case strings.HasPrefix(trimmed, "- "):
			pdf.SetFont(fonts.text, "", 10)
			pdf.MultiCell(0, 5, tr("• "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)
		case numberedItemRegex.MatchString(trimmed):
			pdf.SetFont(fonts.text, "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		default:
			pdf.SetFont(fonts.text, "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// loadFonts registers FontPath for every style used, or falls back to the
// core fonts when no path is set.
func (r *PDFRenderer) loadFonts(pdf *gofpdf.Fpdf) (pdfFonts, error) {
	if r.FontPath == "" {
		return pdfFonts{
			text: "Helvetica",
			mono: "Courier",
			tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		}, nil
	}

	if _, err := os.Stat(r.FontPath); err != nil {
		return pdfFonts{}, fmt.Errorf("pdf font: %w", err)
	}
	for _, style := range []string{"", "B", "I"} {
		pdf.AddUTF8Font(utf8Family, style, r.FontPath)
	}
	if err := pdf.Error(); err != nil {
		return pdfFonts{}, fmt.Errorf("loading pdf font %s: %w", r.FontPath, err)
	}
	return pdfFonts{
		text: utf8Family,
		mono: utf8Family,
		tr:   func(s string) string { return s },
	}, nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, family, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont(family, "B", size)
	pdf.MultiCell(0, size*0.6, cleanInlineMarkdown(text), "", "L", false)
	pdf.Ln(2)
}

var (
	boldRegex   = regexp.MustCompile(`\*\*([^*]*)\*\*`)
	italicRegex = regexp.MustCompile(`\*([^*]+)\*`)
)

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = boldRegex.ReplaceAllString(text, "$1")
	text = italicRegex.ReplaceAllString(text, "$1")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = mdLinkRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
