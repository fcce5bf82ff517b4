package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-folio/internal/config"
	"github.com/vovakirdan/tui-folio/internal/fx"
)

var (
	flagTiltX      float64
	flagTiltY      float64
	flagTiltLeft   float64
	flagTiltTop    float64
	flagTiltWidth  float64
	flagTiltHeight float64
	flagTiltPreset string
)

var tiltCmd = &cobra.Command{
	Use:   "tilt",
	Short: "Compute the tilt of a surface for a pointer sample",
	Long: `Compute the rotation and perspective a surface gets when the pointer is
at (x, y). Coordinates are in pixels.

Presets (tuned in the config's tilt section):
  profile  - Profile card: clamped, base perspective 1200, rests at 1000
  icon     - Skill icons: fixed 1000px perspective
  card     - Project cards: pointer offset mapped through clamped ranges

Examples:
  folio tilt --x 150 --y 50 --width 200 --height 100
  folio tilt --x 0 --y 0 --left 10 --top 10 --width 40 --height 40 --preset icon`,
	Run: runTilt,
}

func init() {
	tiltCmd.Flags().Float64Var(&flagTiltX, "x", 0, "Pointer x")
	tiltCmd.Flags().Float64Var(&flagTiltY, "y", 0, "Pointer y")
	tiltCmd.Flags().Float64Var(&flagTiltLeft, "left", 0, "Surface left edge")
	tiltCmd.Flags().Float64Var(&flagTiltTop, "top", 0, "Surface top edge")
	tiltCmd.Flags().Float64Var(&flagTiltWidth, "width", 200, "Surface width")
	tiltCmd.Flags().Float64Var(&flagTiltHeight, "height", 100, "Surface height")
	tiltCmd.Flags().StringVar(&flagTiltPreset, "preset", "profile", "Preset: profile, icon, card")
}

// computeTilt runs the named preset from cfg.
func computeTilt(cfg config.TiltConfig, preset string, sample fx.PointerSample, rect fx.SurfaceRect) (fx.TiltResult, float64, error) {
	switch strings.ToLower(preset) {
	case "profile":
		calc := fx.NewTiltCalculator(cfg.Profile)
		return calc.Compute(sample, rect), calc.Depth(rect.Contains(sample)), nil
	case "icon":
		calc := fx.NewTiltCalculator(cfg.Icon)
		return calc.Compute(sample, rect), calc.Depth(rect.Contains(sample)), nil
	case "card":
		calc := fx.NewTiltCalculator(cfg.Card)
		t := cfg.CardDelta.Compute(sample, rect)
		t.PerspectivePx = calc.Options().BasePerspective
		return t, calc.Depth(rect.Contains(sample)), nil
	default:
		return fx.TiltResult{}, 0, fmt.Errorf("unknown preset %q", preset)
	}
}

func runTilt(_ *cobra.Command, _ []string) {
	cfg := mustConfig()

	sample := fx.PointerSample{X: flagTiltX, Y: flagTiltY}
	rect := fx.SurfaceRect{Left: flagTiltLeft, Top: flagTiltTop, Width: flagTiltWidth, Height: flagTiltHeight}
	if err := fx.CheckSurface(rect); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (result is neutral)\n", err)
	}

	t, depth, err := computeTilt(cfg.Tilt, flagTiltPreset, sample, rect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("rotateX:     %.2f deg\n", t.RotationX)
	fmt.Printf("rotateY:     %.2f deg\n", t.RotationY)
	fmt.Printf("perspective: %.0f px\n", t.PerspectivePx)
	fmt.Printf("depth:       %.0f px\n", depth)
	fmt.Println()
	fmt.Printf("transform: %s\n", t)
}
