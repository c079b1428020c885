package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagepress/core"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>ポイント</p>"), 0o644))

	src, err := New().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "<p>ポイント</p>", src.HTML)
	require.False(t, src.IsURL)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := New().Load(context.Background(), filepath.Join(dir, "missing.html"))
	require.ErrorIs(t, err, core.ErrInputNotFound)

	bad := filepath.Join(dir, "bad.html")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xfe, 'x'}, 0o644))
	_, err = New().Load(context.Background(), bad)
	require.ErrorIs(t, err, core.ErrDecode)
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/guide":
			require.Contains(t, r.Header.Get("User-Agent"), "PagePress")
			w.Write([]byte("<main><p>hi</p></main>"))
		case "/boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src, err := New().Load(context.Background(), srv.URL+"/guide")
	require.NoError(t, err)
	require.True(t, src.IsURL)
	require.Equal(t, "<main><p>hi</p></main>", src.HTML)

	_, err = New().Load(context.Background(), srv.URL+"/nope")
	require.ErrorIs(t, err, core.ErrInputNotFound)

	_, err = New().Load(context.Background(), srv.URL+"/boom")
	require.Error(t, err)
}

func TestIsURL(t *testing.T) {
	require.True(t, IsURL("https://example.com"))
	require.True(t, IsURL("http://example.com/a"))
	require.False(t, IsURL("docs/index.html"))
	require.False(t, IsURL("ftp://example.com"))
}
