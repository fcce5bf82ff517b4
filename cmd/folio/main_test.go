package main

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-folio/internal/config"
	"github.com/vovakirdan/tui-folio/internal/fx"
)

func TestComputeTiltPresets(t *testing.T) {
	cfg := config.DefaultConfig().Tilt
	rect := fx.SurfaceRect{Left: 0, Top: 0, Width: 200, Height: 100}

	tests := []struct {
		name        string
		preset      string
		sample      fx.PointerSample
		wantRX      float64
		wantRY      float64
		wantPersp   float64
		wantDepth   float64
		expectError bool
	}{
		{"profile corner", "profile", fx.PointerSample{X: 200, Y: 100}, 15, -15, 1200, 0, false},
		{"profile centre", "profile", fx.PointerSample{X: 100, Y: 50}, 0, 0, 1200, 0, false},
		{"icon hovered", "icon", fx.PointerSample{X: 150, Y: 50}, 0, -7.5, 1000, 20, false},
		{"card delta", "card", fx.PointerSample{X: 150, Y: 50}, 0, -7.5, 1000, 30, false},
		{"preset is case insensitive", "PROFILE", fx.PointerSample{X: 100, Y: 50}, 0, 0, 1200, 0, false},
		{"unknown preset", "wobble", fx.PointerSample{}, 0, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, depth, err := computeTilt(cfg, tt.preset, tt.sample, rect)
			if tt.expectError {
				if err == nil {
					t.Error("computeTilt() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("computeTilt() error = %v", err)
			}
			if math.Abs(got.RotationX-tt.wantRX) > 1e-9 || math.Abs(got.RotationY-tt.wantRY) > 1e-9 {
				t.Errorf("computeTilt() = %v, expected rotateX %v rotateY %v", got, tt.wantRX, tt.wantRY)
			}
			if got.PerspectivePx != tt.wantPersp {
				t.Errorf("computeTilt() perspective = %v, expected %v", got.PerspectivePx, tt.wantPersp)
			}
			if depth != tt.wantDepth {
				t.Errorf("computeTilt() depth = %v, expected %v", depth, tt.wantDepth)
			}
		})
	}
}

func TestScrollRange(t *testing.T) {
	cfg := config.DefaultConfig().Scroll

	tests := []struct {
		name     string
		rng      string
		value    float64
		expected float64
	}{
		{"parallax midpoint", "parallax", 250, 100},
		{"parallax clamps", "parallax", 900, 200},
		{"fade midpoint", "fade", 100, 0.5},
		{"fade clamps below", "fade", -50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := scrollRange(cfg, tt.rng)
			if err != nil {
				t.Fatalf("scrollRange() error = %v", err)
			}
			if got := r.Map(tt.value); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Map(%v) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}

	if _, err := scrollRange(cfg, "zoom"); err == nil {
		t.Error("scrollRange(zoom) expected error")
	}
}
