package links

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagepress/core"
)

func TestExtract(t *testing.T) {
	fragment := `<p>See <a href="/cards">the
		cards</a>, <a href="https://example.org/x">x</a>,
		<a href="#top">top</a> <a href="mailto:a@b.c">mail</a>
		<a href="/cards">again</a> <a>no target</a></p>`

	t.Run("without_base", func(t *testing.T) {
		got, err := Extract(fragment, "")
		require.NoError(t, err)
		require.Equal(t, []core.Link{
			{Text: "the cards", Href: "/cards"},
			{Text: "x", Href: "https://example.org/x"},
		}, got)
	})

	t.Run("with_base", func(t *testing.T) {
		got, err := Extract(fragment, "https://example.com/guides/jre")
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "https://example.com/cards", got[0].Href)
	})

	t.Run("no_links", func(t *testing.T) {
		got, err := Extract(`<p>plain</p>`, "")
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestExtractClassifiesTargets(t *testing.T) {
	fragment := `<a href="/guide/">guide</a>
		<a href="/guide#fees">fees</a>
		<a href="/files/terms.PDF">terms</a>
		<a href="https://other.example/apply">apply</a>`

	got, err := Extract(fragment, "https://example.com/guides/jre")
	require.NoError(t, err)
	require.Equal(t, []core.Link{
		{Text: "guide", Href: "https://example.com/guide/"},
		{Text: "terms", Href: "https://example.com/files/terms.PDF", Asset: true},
		{Text: "apply", Href: "https://other.example/apply", External: true},
	}, got)
}
