// Package config loads PagePress settings from defaults, an optional YAML
// file, PAGEPRESS_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/pagepress/core/extract"
	"github.com/gaurav-prasanna/pagepress/core/frontmatter"
)

// EnvPrefix prefixes every environment override, e.g. PAGEPRESS_FRONTMATTER_AUTHOR.
const EnvPrefix = "PAGEPRESS"

// Supported values for Format and Engine.
var (
	Formats = []string{"markdown", "json", "html", "pdf"}
	Engines = []string{"tags", "library"}
)

type Config struct {
	Output      string               `mapstructure:"output"`
	OutputDir   string               `mapstructure:"output_dir"`
	Format      string               `mapstructure:"format"`
	Engine      string               `mapstructure:"engine"`
	LogLevel    string               `mapstructure:"log_level"`
	PublishTime string               `mapstructure:"publish_time"`
	Offset      string               `mapstructure:"offset"`
	PDFFont     string               `mapstructure:"pdf_font"`
	Frontmatter frontmatter.Defaults `mapstructure:"frontmatter"`
}

// FlagKeys maps command-line flag names to config keys.
var FlagKeys = map[string]string{
	"output":     "output",
	"output-dir": "output_dir",
	"format":     "format",
	"engine":     "engine",
	"log-level":  "log_level",
	"pdf-font":   "pdf_font",
	"id":         "frontmatter.id",
	"type":       "frontmatter.type",
	"slug":       "frontmatter.slug",
	"author":     "frontmatter.author",
	"platforms":  "frontmatter.platforms",
}

func setDefaults(v *viper.Viper) {
	fm := frontmatter.DefaultValues()
	v.SetDefault("output", "")
	v.SetDefault("output_dir", "")
	v.SetDefault("format", "markdown")
	v.SetDefault("engine", "tags")
	v.SetDefault("log_level", "info")
	v.SetDefault("publish_time", "10:00:00")
	v.SetDefault("offset", "+09:00")
	v.SetDefault("pdf_font", "")
	v.SetDefault("frontmatter.id", fm.ID)
	v.SetDefault("frontmatter.type", fm.Type)
	v.SetDefault("frontmatter.platforms", fm.Platforms)
	v.SetDefault("frontmatter.slug", fm.Slug)
	v.SetDefault("frontmatter.author", fm.Author)
	v.SetDefault("frontmatter.title", fm.Title)
	v.SetDefault("frontmatter.summary", fm.Summary)
	v.SetDefault("frontmatter.keywords", fm.Keywords)
}

// LoadConfig reads the config file at path (skipped when empty), applies
// environment overrides and then any flags in fs that were set.
func LoadConfig(path string, fs *pflag.FlagSet) (config Config, err error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("reading config %s: %w", path, err)
			return
		}
	}

	if fs != nil {
		for name, key := range FlagKeys {
			if f := fs.Lookup(name); f != nil {
				if err = v.BindPFlag(key, f); err != nil {
					err = fmt.Errorf("binding flag %s: %w", name, err)
					return
				}
			}
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		err = fmt.Errorf("decoding config: %w", err)
		return
	}
	err = config.Validate()
	return
}

// Validate checks enumerated settings, the date offset and the platform list.
func (c Config) Validate() error {
	if !contains(Formats, c.Format) {
		return fmt.Errorf("config: unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	if !contains(Engines, c.Engine) {
		return fmt.Errorf("config: unknown engine %q (want one of %s)", c.Engine, strings.Join(Engines, ", "))
	}
	if _, err := extract.ParseOffset(c.Offset); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for _, p := range c.Frontmatter.Platforms {
		if strings.TrimSpace(p) == "" {
			return errors.New("config: frontmatter platforms must not contain empty entries")
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
