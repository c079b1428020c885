// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// load → metadata → extract → normalize → render → write.
package cmd

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagepress/config"
	"github.com/gaurav-prasanna/pagepress/core"
	"github.com/gaurav-prasanna/pagepress/core/extract"
	"github.com/gaurav-prasanna/pagepress/core/fetch"
	"github.com/gaurav-prasanna/pagepress/core/normalize"
	"github.com/gaurav-prasanna/pagepress/core/output"
	"github.com/gaurav-prasanna/pagepress/core/render"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert an HTML file or URL into Markdown with frontmatter",
		Long: `Convert reads one HTML document (a local path or an http(s) URL), extracts
its metadata and main content, converts the content to Markdown and writes it
with a frontmatter block. Other formats render the same document as a JSON
report, an HTML preview or a PDF.

Examples:
  pagepress convert docs/jre-point-strategy/index.html -o content/guides/jre-point-strategy.md
  pagepress convert index.html --format json --output-dir ./out
  pagepress convert https://example.com/guide --engine library --slug ""`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	f := cmd.Flags()
	f.StringP("output", "o", "", "output file (default: derived from input)")
	f.String("output-dir", "", "directory for derived output names (default: current directory)")
	f.StringP("format", "f", "markdown", "output format: markdown, json, html, pdf")
	f.String("engine", "tags", "conversion engine: tags, library")
	f.String("pdf-font", "", "TrueType font for PDF output (needed for non-Latin text)")

	// Frontmatter overrides.
	f.String("id", "", "frontmatter id")
	f.String("type", "", "frontmatter type")
	f.String("slug", "", "frontmatter slug (empty derives it from the title)")
	f.String("author", "", "frontmatter author")
	f.StringSlice("platforms", nil, "frontmatter platforms")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := config.LoadConfig(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	normalizer, err := selectNormalizer(cfg.Engine)
	if err != nil {
		return err
	}
	renderer, err := selectRenderer(cfg)
	if err != nil {
		return err
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	doc, err := processDocument(cmd.Context(), input, cfg, fetch.New(), extract.New(), normalizer)
	if err != nil {
		return err
	}

	data, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path := writer.Path(input, cfg.Output, renderer.Extension())
	if err := writer.Write(path, data); err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("output written")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✅ Converted %s to %s\n", input, path)
	fmt.Fprintf(out, "   Frontmatter created with %d metadata fields\n", doc.Meta.Len())
	fmt.Fprintf(out, "   Markdown content: %d characters\n", utf8.RuneCountInString(doc.Markdown))
	return nil
}

// processDocument runs a single input through the pipeline up to rendering.
func processDocument(
	ctx context.Context,
	input string,
	cfg config.Config,
	loader core.Loader,
	extractor core.Extractor,
	normalizer core.Normalizer,
) (*core.Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load
	src, err := loader.Load(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	// 2. Metadata from the full document
	meta := extract.ExtractMetadata(src.HTML, extract.MetadataOptions{
		PublishTime: cfg.PublishTime,
		Offset:      cfg.Offset,
	})
	log.Debug().Int("fields", meta.Len()).Msg("metadata extracted")

	// 3. Main content region + rewrite rules
	region, err := extractor.Extract(src.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	// 4. Markdown body
	markdown, err := normalizer.Normalize(region)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	doc := &core.Document{
		Source:   src.Location,
		Meta:     meta,
		Region:   region,
		Markdown: markdown,
	}
	if src.IsURL {
		doc.BaseURL = src.Location
	}
	return doc, nil
}

func selectNormalizer(engine string) (core.Normalizer, error) {
	switch engine {
	case "tags":
		return normalize.New(), nil
	case "library":
		return normalize.NewLibrary(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}

// selectRenderer creates the Renderer for the configured format.
func selectRenderer(cfg config.Config) (core.Renderer, error) {
	switch cfg.Format {
	case "markdown":
		return render.NewMarkdownRenderer(cfg.Frontmatter), nil
	case "json":
		return render.NewJSONRenderer(cfg.Frontmatter), nil
	case "html":
		return render.NewHTMLRenderer(cfg.Frontmatter), nil
	case "pdf":
		r := render.NewPDFRenderer(cfg.Frontmatter)
		r.FontPath = cfg.PDFFont
		return r, nil
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.Format)
	}
}
