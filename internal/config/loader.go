package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvAccessKey = "FOLIO_CONTACT_ACCESS_KEY"
	EnvEndpoint  = "FOLIO_CONTACT_ENDPOINT"
	EnvLogLevel  = "FOLIO_LOG_LEVEL"
)

var envKeys = []string{EnvAccessKey, EnvEndpoint, EnvLogLevel}

// Load loads the application configuration and applies environment
// overrides from the process and ./.env.
// Search order: customPath -> ~/.folio/config.yaml -> ./configs/folio.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	env, err := Env(".env")
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg, env)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "folio.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFolioYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, so omitted keys keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Env collects override variables. Values from dotenvPath fill in keys the
// process environment does not set; a missing file is not an error.
func Env(dotenvPath string) (map[string]string, error) {
	env := make(map[string]string)

	if dotenvPath != "" {
		vals, err := godotenv.Read(dotenvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", dotenvPath, err)
		}
		for _, k := range envKeys {
			if v, ok := vals[k]; ok {
				env[k] = v
			}
		}
	}

	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides configuration values from env. Empty values are
// ignored.
func ApplyEnv(cfg *Config, env map[string]string) {
	if v := env[EnvAccessKey]; v != "" {
		cfg.Contact.AccessKey = v
	}
	if v := env[EnvEndpoint]; v != "" {
		cfg.Contact.Endpoint = v
	}
	if v := env[EnvLogLevel]; v != "" {
		cfg.Log.Level = v
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".folio", filename)
}
