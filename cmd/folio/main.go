// folio is a terminal portfolio with pointer-driven tilt, scroll effects and
// a contact form, viewable locally or over SSH.
//
// Usage:
//
//	folio view                - Open the portfolio in this terminal
//	folio serve               - Serve the portfolio over SSH
//	folio tilt                - Compute a tilt for a pointer sample
//	folio scroll <value>      - Map a scroll offset through a range
//	folio projects            - List projects, optionally by category
//	folio config              - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Config YAML (default search: ~/.folio, ./configs)
//	--content <path>  - Content YAML (same search order)
//	--fps <rate>      - Animation frame rate (default: 30)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-folio/internal/config"
	"github.com/vovakirdan/tui-folio/internal/content"
	"github.com/vovakirdan/tui-folio/internal/platform/tui"

	// Import sections to register them
	_ "github.com/vovakirdan/tui-folio/internal/sections"
)

var (
	// Global flags
	flagConfig  string
	flagContent string
	flagFPS     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio - a portfolio in your terminal",
	Long: `Folio renders a personal portfolio in the terminal: a scrolling home
page with tilting cards, an all-projects page and a contact form.

Available commands:
  view      - Open the portfolio locally
  serve     - Start SSH server so others can visit
  tilt      - Compute the tilt of a surface for a pointer sample
  scroll    - Map a scroll offset through the parallax or fade range
  projects  - List projects
  config    - Print the effective configuration

Examples:
  folio view
  folio view --route /all-projects
  folio serve
  folio tilt --x 150 --y 50 --width 200 --height 100
  folio scroll 250 --range fade`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "Path to content YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", tui.DefaultFPS, "Animation frame rate")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tiltCmd)
	rootCmd.AddCommand(scrollCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(configCmd)
}

// mustConfig loads the configuration or exits.
func mustConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// mustContent loads the portfolio content or exits.
func mustContent() content.Portfolio {
	p, err := content.Load(flagContent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return p
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(cfg config.Config, w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := cfg.Log.ParsedLevel()
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
