package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-folio/internal/config"
	"github.com/vovakirdan/tui-folio/internal/fx"
)

var flagScrollRange string

var scrollCmd = &cobra.Command{
	Use:   "scroll <value>",
	Short: "Map a scroll offset through the parallax or fade range",
	Long: `Map a scroll offset in pixels the way the hero section does.

Ranges (from the config's scroll section):
  parallax  - Scroll 0..500 to a vertical offset of 0..200
  fade      - Scroll 0..200 to an opacity of 1..0

Values outside the input range are clamped.

Examples:
  folio scroll 250
  folio scroll 100 --range fade`,
	Args: cobra.ExactArgs(1),
	Run:  runScroll,
}

func init() {
	scrollCmd.Flags().StringVar(&flagScrollRange, "range", "parallax", "Range: parallax or fade")
}

// scrollRange returns the named range from cfg.
func scrollRange(cfg config.ScrollConfig, name string) (fx.NumericRange, error) {
	switch name {
	case "parallax":
		return cfg.Parallax, nil
	case "fade":
		return cfg.Fade, nil
	default:
		return fx.NumericRange{}, fmt.Errorf("unknown range %q (want parallax or fade)", name)
	}
}

func runScroll(_ *cobra.Command, args []string) {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid scroll value %q\n", args[0])
		os.Exit(1)
	}

	cfg := mustConfig()
	r, err := scrollRange(cfg.Scroll, flagScrollRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := fx.Map(value, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(strconv.FormatFloat(out, 'f', -1, 64))
}
