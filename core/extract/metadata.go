package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gaurav-prasanna/pagepress/core"
)

const (
	defaultPublishTime = "10:00:00"
	defaultOffset      = "+09:00"
)

var (
	titleRe       = regexp.MustCompile(`(?s)<title>(.*?)</title>`)
	descriptionRe = regexp.MustCompile(`<meta\s+name="description"\s+content="(.*?)"`)
	keywordsRe    = regexp.MustCompile(`<meta\s+name="keywords"\s+content="(.*?)"`)
	publishedRe   = regexp.MustCompile(`"datePublished":\s*"(.*?)"`)
)

// MetadataOptions controls how the date field is built.
type MetadataOptions struct {
	// PublishTime is the time of day appended to a datePublished value.
	PublishTime string
	// Offset is the zone of the date, written as ±hh:mm, e.g. "+09:00".
	Offset string
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (o MetadataOptions) withDefaults() MetadataOptions {
	if o.PublishTime == "" {
		o.PublishTime = defaultPublishTime
	}
	if o.Offset == "" {
		o.Offset = defaultOffset
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// ExtractMetadata searches the full document for title, description,
// keywords and publication date. Absent fields are left out of the map,
// except date which falls back to the current time.
func ExtractMetadata(html string, opts MetadataOptions) core.Metadata {
	opts = opts.withDefaults()
	meta := core.Metadata{}

	if m := titleRe.FindStringSubmatch(html); m != nil {
		meta[core.FieldTitle] = strings.TrimSpace(m[1])
	}
	if m := descriptionRe.FindStringSubmatch(html); m != nil {
		meta[core.FieldDescription] = strings.TrimSpace(m[1])
	}
	if m := keywordsRe.FindStringSubmatch(html); m != nil {
		meta[core.FieldKeywords] = strings.TrimSpace(m[1])
	}

	if m := publishedRe.FindStringSubmatch(html); m != nil {
		meta[core.FieldDate] = m[1] + "T" + opts.PublishTime + opts.Offset
	} else {
		meta[core.FieldDate] = FormatTimestamp(opts.Now(), opts.Offset)
	}
	return meta
}

// FormatTimestamp renders t in the zone named by offset, followed by that
// offset. An offset that does not parse falls back to +09:00.
func FormatTimestamp(t time.Time, offset string) string {
	loc, err := ParseOffset(offset)
	if err != nil {
		offset = defaultOffset
		loc, _ = ParseOffset(offset)
	}
	return t.In(loc).Format("2006-01-02T15:04:05") + offset
}

// ParseOffset turns a ±hh:mm offset into a fixed zone.
func ParseOffset(offset string) (*time.Location, error) {
	if len(offset) != 6 || (offset[0] != '+' && offset[0] != '-') || offset[3] != ':' {
		return nil, fmt.Errorf("invalid offset %q (want ±hh:mm)", offset)
	}
	hours, err := strconv.Atoi(offset[1:3])
	if err != nil || hours > 14 {
		return nil, fmt.Errorf("invalid offset %q: bad hours", offset)
	}
	minutes, err := strconv.Atoi(offset[4:6])
	if err != nil || minutes > 59 {
		return nil, fmt.Errorf("invalid offset %q: bad minutes", offset)
	}

	secs := (hours*60 + minutes) * 60
	if offset[0] == '-' {
		secs = -secs
	}
	return time.FixedZone("UTC"+offset, secs), nil
}
