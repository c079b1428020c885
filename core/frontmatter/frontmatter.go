// Package frontmatter builds the YAML header prepended to converted guides.
package frontmatter

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"
	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/pagepress/core"
)

const delimiter = "---\n"

// Defaults holds the publishing-platform values and the fallbacks used
// when the document lacks a field.
type Defaults struct {
	ID        string   `mapstructure:"id"`
	Type      string   `mapstructure:"type"`
	Platforms []string `mapstructure:"platforms"`
	// Slug is used as-is; when empty it is derived from the title.
	Slug   string `mapstructure:"slug"`
	Author string `mapstructure:"author"`

	Title    string `mapstructure:"title"`
	Summary  string `mapstructure:"summary"`
	Keywords string `mapstructure:"keywords"`
}

// DefaultValues returns the defaults of the JRE POINT strategy guide.
func DefaultValues() Defaults {
	return Defaults{
		ID:        "jre-point-strategy-guide",
		Type:      "guide",
		Platforms: []string{"blog", "github_pages"},
		Slug:      "jre-point-strategy",
		Author:    "ino",
		Title:     "JRE POINT活用戦略：価値最大化とビューカード徹底比較ガイド",
		Summary:   "JRE POINTの価値最大化とビューカード徹底比較ガイド。1ポイントの価値を最大5.83円まで引き出す戦略を解説。",
		Keywords:  "JRE POINT,ビューカード,還元率,ポイント戦略,Suica,VIEWプラス,ゴールドカード,JRE CARD",
	}
}

// Fields is the resolved frontmatter, in output order.
type Fields struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Type      string   `json:"type"`
	Tags      []string `json:"tags"`
	Platforms []string `json:"platforms"`
	Slug      string   `json:"slug"`
	Summary   string   `json:"summary"`
	Author    string   `json:"author"`
}

// Resolve merges the document metadata with the defaults.
func Resolve(meta core.Metadata, d Defaults) Fields {
	f := Fields{
		ID:        d.ID,
		Title:     meta.Get(core.FieldTitle, d.Title),
		Date:      meta.Get(core.FieldDate, ""),
		Type:      d.Type,
		Tags:      strings.Split(meta.Get(core.FieldKeywords, d.Keywords), ","),
		Platforms: d.Platforms,
		Slug:      d.Slug,
		Summary:   meta.Get(core.FieldDescription, d.Summary),
		Author:    d.Author,
	}
	if f.Slug == "" {
		f.Slug = deriveSlug(f.Title, f.ID)
	}
	return f
}

// deriveSlug normalizes title into a slug, using fallback when the title
// has nothing slug-worthy in it.
func deriveSlug(title, fallback string) string {
	s, err := slug.Normalize(title)
	if err != nil || s == "" {
		return fallback
	}
	return s
}

// Build renders the frontmatter block for meta, delimiters and trailing
// blank line included.
func Build(meta core.Metadata, d Defaults) (string, error) {
	return Resolve(meta, d).Marshal()
}

// Marshal renders f as a delimited YAML block. Scalars are double-quoted
// and lists use flow style.
func (f Fields) Marshal() (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}

	add("id", quoted(f.ID))
	add("title", quoted(f.Title))
	add("date", quoted(f.Date))
	add("type", quoted(f.Type))
	add("tags", flowList(f.Tags))
	add("platforms", flowList(f.Platforms))
	add("slug", quoted(f.Slug))
	add("summary", quoted(f.Summary))
	add("author", quoted(f.Author))

	out, err := yaml.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}
	return delimiter + string(out) + delimiter + "\n", nil
}

func quoted(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: v}
}

func flowList(items []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, it := range items {
		n.Content = append(n.Content, quoted(it))
	}
	return n
}
