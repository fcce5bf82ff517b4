package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-folio/internal/platform/tui"
)

var (
	flagRoute      string
	flagLogFile    string
	flagSkipLoader bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the portfolio in this terminal",
	Long: `Open the portfolio full screen. Move the mouse over cards to tilt them.

Controls:
  Up/Down, PgUp/PgDn  - Scroll
  1-9, Tab/Shift+Tab  - Jump between sections
  P                   - All projects
  C                   - Contact form (Ctrl+S sends, Esc closes)
  ?                   - Help
  Q/Ctrl+C            - Quit

Routes:
  /              - Home page
  /all-projects  - All projects with category filter

Examples:
  folio view
  folio view --route /all-projects
  folio view --log-file folio.log`,
	Run: runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagRoute, "route", string(tui.RouteHome), "Page to open")
	viewCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	viewCmd.Flags().BoolVar(&flagSkipLoader, "no-loader", false, "Skip the startup loader")
}

func runView(_ *cobra.Command, _ []string) {
	route, err := tui.ParseRoute(flagRoute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Known routes: / and /all-projects")
		os.Exit(1)
	}

	cfg := mustConfig()
	portfolio := mustContent()

	// The alt screen owns stdout, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, fileErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if fileErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", fileErr)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(cfg, out, "folio")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err = tui.Run(tui.Options{
		Config:     cfg,
		Portfolio:  portfolio,
		Route:      route,
		FPS:        flagFPS,
		Width:      width,
		Height:     height,
		Logger:     logger,
		SkipLoader: flagSkipLoader,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
