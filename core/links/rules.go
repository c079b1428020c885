package links

import (
	"net/url"
	"path"
	"strings"
)

// assetExtensions mark targets that are downloads or page resources rather
// than readable pages.
var assetExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// IsAsset reports whether target points to a static file.
func IsAsset(target *url.URL) bool {
	return assetExtensions[strings.ToLower(path.Ext(target.Path))]
}

// IsExternal reports whether target lives on a different host than base.
// Without an absolute base nothing is considered external.
func IsExternal(target, base *url.URL) bool {
	if base == nil || base.Host == "" || target.Host == "" {
		return false
	}
	return !strings.EqualFold(target.Host, base.Host)
}

// dedupeKey strips the fragment and a trailing slash so that /a, /a/ and
// /a#top count as one target.
func dedupeKey(target *url.URL) string {
	u := *target
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
		u.RawPath = ""
	}
	return u.String()
}
