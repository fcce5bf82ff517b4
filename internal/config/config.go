// Package config provides YAML-based application configuration for the
// portfolio: tilt presets, scroll ranges, loader timing, input rate limits
// and the contact endpoint.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-folio/internal/fx"
)

// Config is the complete application configuration.
type Config struct {
	Tilt    TiltConfig    `yaml:"tilt"`
	Scroll  ScrollConfig  `yaml:"scroll"`
	Loader  LoaderConfig  `yaml:"loader"`
	Input   InputConfig   `yaml:"input"`
	Contact ContactConfig `yaml:"contact"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// TiltConfig holds the tilt presets of each tracked surface.
type TiltConfig struct {
	Profile   fx.TiltOptions `yaml:"profile"`
	Icon      fx.TiltOptions `yaml:"icon"`
	Card      fx.TiltOptions `yaml:"card"`
	CardDelta fx.DeltaTilt   `yaml:"card_delta"`
	Spring    SpringConfig   `yaml:"spring"`
	// EntranceMs is the duration of the profile card entrance animation.
	EntranceMs int `yaml:"entrance_ms"`
}

// SpringConfig smooths tilt changes between frames.
type SpringConfig struct {
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// ScrollConfig defines the hero scroll effects.
type ScrollConfig struct {
	Parallax fx.NumericRange `yaml:"parallax"`
	Fade     fx.NumericRange `yaml:"fade"`
	// PxPerLine converts terminal lines scrolled into page pixels.
	PxPerLine float64 `yaml:"px_per_line"`
}

// LoaderConfig defines the startup loader timing.
type LoaderConfig struct {
	StepMs      int `yaml:"step_ms"`       // progress +1 every step
	HideAfterMs int `yaml:"hide_after_ms"` // loader visible at most this long
}

// Step returns the progress step interval.
func (c LoaderConfig) Step() time.Duration { return ms(c.StepMs) }

// HideAfter returns the loader visibility timeout.
func (c LoaderConfig) HideAfter() time.Duration { return ms(c.HideAfterMs) }

// InputConfig defines rate limits applied to user input.
type InputConfig struct {
	PointerThrottleMs int `yaml:"pointer_throttle_ms"`
	ResizeDebounceMs  int `yaml:"resize_debounce_ms"`
	SubmitThrottleMs  int `yaml:"submit_throttle_ms"`
	MemoSize          int `yaml:"memo_size"`
}

// PointerThrottle returns the pointer motion throttle window.
func (c InputConfig) PointerThrottle() time.Duration { return ms(c.PointerThrottleMs) }

// ResizeDebounce returns the relayout debounce delay.
func (c InputConfig) ResizeDebounce() time.Duration { return ms(c.ResizeDebounceMs) }

// SubmitThrottle returns the contact submit throttle window.
func (c InputConfig) SubmitThrottle() time.Duration { return ms(c.SubmitThrottleMs) }

// ContactConfig defines where contact form submissions go.
type ContactConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Timeout returns the HTTP timeout for a submission.
func (c ContactConfig) Timeout() time.Duration { return ms(c.TimeoutMs) }

// ServerConfig defines the SSH listener.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	HostKey string `yaml:"host_key"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ParsedLevel returns the configured log level, InfoLevel when empty.
func (c LogConfig) ParsedLevel() (log.Level, error) {
	if c.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Level)
}

// Validate checks every section and joins all problems.
func (c Config) Validate() error {
	var errs []error

	for name, r := range map[string]fx.NumericRange{
		"scroll.parallax": c.Scroll.Parallax,
		"scroll.fade":     c.Scroll.Fade,
	} {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if err := c.Tilt.CardDelta.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tilt.card_delta: %w", err))
	}
	for name, o := range map[string]fx.TiltOptions{
		"tilt.profile": c.Tilt.Profile,
		"tilt.icon":    c.Tilt.Icon,
		"tilt.card":    c.Tilt.Card,
	} {
		if o.MaxDegrees < 0 || o.BasePerspective < 0 || o.ScaleFactor < 0 {
			errs = append(errs, fmt.Errorf("%s: %w: negative tilt option", name, fx.ErrConfiguration))
		}
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"scroll.px_per_line", c.Scroll.PxPerLine},
		{"loader.step_ms", float64(c.Loader.StepMs)},
		{"loader.hide_after_ms", float64(c.Loader.HideAfterMs)},
		{"input.pointer_throttle_ms", float64(c.Input.PointerThrottleMs)},
		{"input.resize_debounce_ms", float64(c.Input.ResizeDebounceMs)},
		{"input.submit_throttle_ms", float64(c.Input.SubmitThrottleMs)},
		{"input.memo_size", float64(c.Input.MemoSize)},
		{"contact.timeout_ms", float64(c.Contact.TimeoutMs)},
		{"tilt.spring.frequency", c.Tilt.Spring.Frequency},
		{"tilt.entrance_ms", float64(c.Tilt.EntranceMs)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s: %w: must be positive, got %v", p.name, fx.ErrConfiguration, p.value))
		}
	}
	if c.Tilt.Spring.Damping < 0 {
		errs = append(errs, fmt.Errorf("tilt.spring.damping: %w: must not be negative", fx.ErrConfiguration))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %w: %d out of range", fx.ErrConfiguration, c.Server.Port))
	}
	if _, err := c.Log.ParsedLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// YAML renders the configuration.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
