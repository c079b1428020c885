package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/frontmatter"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagepress/core"
)

const minimalPage = `<html><head><title>T</title></head><body><main><h2>Hi</h2><p>World</p></main></body></html>`

const guidePage = `<!DOCTYPE html>
<html lang="ja">
<head>
<title>JRE POINT Guide</title>
<meta name="description" content="How to get the most out of points">
<meta name="keywords" content="JRE POINT,Suica">
<script type="application/ld+json">{"@type": "Article", "datePublished": "2024-06-01"}</script>
<style>body { color: red; }</style>
</head>
<body>
<header><nav><a href="/">Home</a></nav></header>
<main>
  <h2>Point value</h2>
  <div class="card"><p>One point is worth <strong>1 yen</strong> or more.</p></div>
  <div class="formula">value = yen / points</div>
  <p class="formula-note">Rounded down.</p>
  <table>
    <thead><tr><th>Card</th><th>Rate</th></tr></thead>
    <tbody><tr><td>VIEW Plus</td><td>1.5%</td></tr><tr><td>broken</td></tr></tbody>
  </table>
  <ol><li>Sign up</li><li>Link Suica</li></ol>
  <details><summary>Notes</summary>See above</details>
  <a href="https://example.com/apply" class="cta-button">Apply now</a>
</main>
<footer>footer text</footer>
</body>
</html>`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, dir, html string) string {
	t.Helper()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))
	return path
}

func TestConvertMinimalDocument(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, minimalPage)
	outPath := filepath.Join(dir, "out.md")

	stdout, err := runCLI(t, "convert", in, "-o", outPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "✅ Converted "+in+" to "+outPath)
	require.Contains(t, stdout, "Frontmatter created with 2 metadata fields")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	s := string(data)

	require.True(t, strings.HasPrefix(s, "---\n"))
	require.Contains(t, s, "title: \"T\"\n")
	require.Contains(t, s, "---\n\n\n## Hi\nWorld\n\n")
}

func TestConvertGuideDocument(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, guidePage)
	outPath := filepath.Join(dir, "guide.md")

	_, err := runCLI(t, "convert", in, "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var fm struct {
		Title   string   `yaml:"title"`
		Date    string   `yaml:"date"`
		Tags    []string `yaml:"tags"`
		Summary string   `yaml:"summary"`
		Slug    string   `yaml:"slug"`
	}
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	require.NoError(t, err)

	require.Equal(t, "JRE POINT Guide", fm.Title)
	require.Equal(t, "2024-06-01T10:00:00+09:00", fm.Date)
	require.Equal(t, []string{"JRE POINT", "Suica"}, fm.Tags)
	require.Equal(t, "How to get the most out of points", fm.Summary)
	require.Equal(t, "jre-point-strategy", fm.Slug)

	md := string(body)
	require.Contains(t, md, "## Point value")
	require.Contains(t, md, "One point is worth**1 yen**or more.")
	require.Contains(t, md, "> Rounded down.")
	require.Contains(t, md, "| VIEW Plus | 1.5% |")
	require.NotContains(t, md, "broken")
	require.Contains(t, md, "\n1. Sign up\n1. Link Suica\n")
	require.Contains(t, md, "#### Notes\n\nSee above")
	require.Contains(t, md, "[**Apply now**](https://example.com/apply)")
	require.NotContains(t, md, "Home")
	require.NotContains(t, md, "footer text")
	require.NotContains(t, md, "color: red")
	require.NotContains(t, md, "\n\n\n")
	require.NotContains(t, md, "  ")
}

func TestConvertFormats(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, guidePage)

	t.Run("json_with_derived_name", func(t *testing.T) {
		outDir := filepath.Join(dir, "reports")
		_, err := runCLI(t, "convert", in, "--format", "json", "--output-dir", outDir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(outDir, "index.json"))
		require.NoError(t, err)

		var report struct {
			Structure core.DocumentStructure `json:"structure"`
		}
		require.NoError(t, json.Unmarshal(data, &report))
		require.Equal(t, 1, report.Structure.Tables)
	})

	t.Run("html_preview", func(t *testing.T) {
		outPath := filepath.Join(dir, "preview.html")
		_, err := runCLI(t, "convert", in, "-f", "html", "-o", outPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "<title>JRE POINT Guide</title>")
	})

	t.Run("library_engine", func(t *testing.T) {
		outPath := filepath.Join(dir, "library.md")
		_, err := runCLI(t, "convert", in, "--engine", "library", "-o", outPath, "--author", "someone")
		require.NoError(t, err)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "author: \"someone\"")
		require.Contains(t, string(data), "Point value")
	})
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "convert", filepath.Join(dir, "missing.html"))
	require.ErrorIs(t, err, core.ErrInputNotFound)

	in := writeInput(t, dir, minimalPage)
	_, err = runCLI(t, "convert", in, "--format", "docx")
	require.Error(t, err)

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	_, err = runCLI(t, "convert", in, "-o", filepath.Join(blocker, "out.md"))
	require.ErrorIs(t, err, core.ErrWrite)

	_, err = runCLI(t, "convert")
	require.Error(t, err)
}

func TestConvertWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, minimalPage)
	cfgPath := filepath.Join(dir, "pagepress.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("frontmatter:\n  id: custom-id\n  platforms: [\"blog\"]\n"), 0o644))
	outPath := filepath.Join(dir, "out.md")

	_, err := runCLI(t, "--config", cfgPath, "convert", in, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "id: \"custom-id\"\n")
	require.Contains(t, string(data), "platforms: [\"blog\"]\n")
}
