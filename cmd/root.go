// Package cmd implements the CLI commands for PagePress using Cobra.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Persistent flag variables.
var flagConfig string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pagepress",
		Short: "PagePress — convert guide pages into publishable Markdown",
		Long: `PagePress converts an HTML guide page into Markdown with a frontmatter
block for the publishing platform, or into a JSON report, HTML preview or PDF.

Usage:
  pagepress convert <input> [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (YAML)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newConvertCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging points the global zerolog logger at stderr.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
