package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-folio/internal/fx"
)

//go:embed defaults/folio.yaml
var defaultFolioYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFolioYAML
}

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/folio.yaml.
func DefaultConfig() Config {
	return Config{
		Tilt: TiltConfig{
			Profile:   fx.ProfileCardTilt(),
			Icon:      fx.IconTilt(),
			Card:      fx.CardTilt(),
			CardDelta: fx.DefaultDeltaTilt(),
			Spring: SpringConfig{
				Frequency: 6,
				Damping:   0.5,
			},
			EntranceMs: 800,
		},
		Scroll: ScrollConfig{
			Parallax:  fx.ParallaxRange(),
			Fade:      fx.FadeRange(),
			PxPerLine: 20,
		},
		Loader: LoaderConfig{
			StepMs:      20,
			HideAfterMs: 3000,
		},
		Input: InputConfig{
			PointerThrottleMs: 16,
			ResizeDebounceMs:  100,
			SubmitThrottleMs:  3000,
			MemoSize:          256,
		},
		Contact: ContactConfig{
			Endpoint:  "https://api.web3forms.com/submit",
			TimeoutMs: 10000,
		},
		Server: ServerConfig{
			Host:    "localhost",
			Port:    2323,
			HostKey: ".ssh/folio_ed25519",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
