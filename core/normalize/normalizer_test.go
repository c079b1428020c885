package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func normalize(t *testing.T, fragment string) string {
	t.Helper()
	md, err := New().Normalize(fragment)
	require.NoError(t, err)
	return md
}

func TestNormalizeHeadingAndParagraph(t *testing.T) {
	md := normalize(t, `<h2>Hi</h2><p>World</p>`)
	require.Equal(t, "\n## Hi\nWorld\n\n", md)

	md = normalize(t, `<h3>Three</h3><h4>Four</h4><h5>Five</h5>`)
	require.Equal(t, "\n### Three\n\n#### Four\nFive", md)
}

func TestNormalizeOrderedListUsesLiteralMarker(t *testing.T) {
	md := normalize(t, `<ol><li>first</li><li>second</li><li>third</li></ol>`)

	var items []string
	for _, line := range strings.Split(md, "\n") {
		if line != "" {
			items = append(items, line)
		}
	}
	require.Equal(t, []string{"1. first", "1. second", "1. third"}, items)
	require.NotContains(t, md, "2.")
}

func TestNormalizeNestedLists(t *testing.T) {
	md := normalize(t, `<ul><li>a<ol><li>b</li></ol></li><li>c</li></ul>`)
	require.Equal(t, "\n- a\n1. b\n\n- c\n", md)
}

func TestNormalizeInlineCodeUnescapesEntities(t *testing.T) {
	md := normalize(t, `<p>Use <code>x&lt;y</code></p>`)
	require.Contains(t, md, "`x<y`")
}

func TestNormalizePreformattedBlock(t *testing.T) {
	md := normalize(t, "<pre>line1\n  line2\n</pre>")
	require.Equal(t, "\n```\nline1\n line2\n```\n", md)
}

func TestNormalizeInlineMarkup(t *testing.T) {
	t.Run("bold_and_italic", func(t *testing.T) {
		md := normalize(t, `<p>a <strong>b</strong> <em>c</em></p>`)
		require.Equal(t, "a**b***c*\n\n", md)
	})

	t.Run("anchor_drops_target", func(t *testing.T) {
		md := normalize(t, `<p>See <a href="/docs">docs</a> now</p>`)
		require.Contains(t, md, "[docs]")
		require.NotContains(t, md, "/docs")
	})

	t.Run("line_break", func(t *testing.T) {
		md := normalize(t, `<p>one<br/>two<br>three</p>`)
		require.Equal(t, "one\ntwo\nthree\n\n", md)
	})
}

func TestNormalizeCollapsibleSection(t *testing.T) {
	md := normalize(t, `<details><summary>Notes</summary>See above</details>`)
	require.Contains(t, md, "#### Notes\n\nSee above")

	md = normalize(t, `<details><summary>Notes</summary><p>See above</p></details>`)
	require.Equal(t, "\n\n#### Notes\n\nSee above\n\n", md)
}

func TestNormalizeCollapsibleTitleIsFirstSummaryText(t *testing.T) {
	md := normalize(t, `<details><summary><strong>Q</strong> more</summary>body</details>`)
	require.Contains(t, md, "#### Q\n\nbody\n\n")
	require.NotContains(t, md, "#### more")
}

func TestNormalizeCollapsibleWithoutSummary(t *testing.T) {
	md := normalize(t, `<details>hidden body</details>`)
	require.Equal(t, "hidden body\n\n", md)
	require.NotContains(t, md, "####")
}

func TestNormalizeTables(t *testing.T) {
	t.Run("head_section_header", func(t *testing.T) {
		md := normalize(t, `<table>
			<thead><tr><th>A</th><th>B</th></tr></thead>
			<tbody>
				<tr><td>1</td><td>2</td></tr>
				<tr><td>3</td></tr>
			</tbody>
		</table>`)
		require.Equal(t, "\n| A | B |\n| --- | --- |\n| 1 | 2 |\n\n", md)
		require.NotContains(t, md, "| 3 |")
	})

	t.Run("first_row_header", func(t *testing.T) {
		md := normalize(t, `<table><tr><td>Card</td><td>Rate</td></tr><tr><td>  View
			Plus </td><td>1.5%</td></tr></table>`)
		require.Equal(t, "\n| Card | Rate |\n| --- | --- |\n| View Plus | 1.5% |\n\n", md)
	})

	t.Run("empty_table", func(t *testing.T) {
		require.Equal(t, "", normalize(t, `<table><tr></tr></table>`))
	})
}

func TestTableRenderDropsMismatchedRows(t *testing.T) {
	tb := table{
		header: []string{"A", "B"},
		rows:   [][]string{{"1", "2"}, {"3"}},
	}
	out := tb.render()
	require.Contains(t, out, "| 1 | 2 |")
	require.NotContains(t, out, "3")
}

func TestNormalizeIgnoresChromeTags(t *testing.T) {
	md := normalize(t, `<section><nav></nav><span>plain</span> <div>text</div></section>`)
	require.Equal(t, "plain text", md)
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"newline_runs", "a\n\n\n\nb", "a\n\nb"},
		{"space_runs", "a   b  c", "a b c"},
		{"mixed", "a \n\n\n  b", "a \n\n b"},
		{"untouched", "a\n\nb c", "a\n\nb c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cleanup(tt.in)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, Cleanup(got))
		})
	}
}

func TestNormalizeOutputHasNoWhitespaceRuns(t *testing.T) {
	md := normalize(t, `<p>  lots   of

	space </p><p></p><p></p><p>next</p><ul><li>  x  </li></ul>`)
	require.NotContains(t, md, "\n\n\n")
	require.NotContains(t, md, "  ")
	require.Equal(t, md, Cleanup(md))
}

func TestLibraryNormalizerKeepsLinks(t *testing.T) {
	md, err := NewLibrary().Normalize(`<p>See <a href="https://example.com/docs">docs</a></p>`)
	require.NoError(t, err)
	require.Contains(t, md, "[docs](https://example.com/docs)")
}
