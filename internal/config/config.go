// Package config provides hierarchical configuration management for jobviz
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.jobviz/config.yml, JSON accepted as fallback) > user config
// (~/.config/jobviz/config.yml) > defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the jobviz CLI tool configuration.
type Configuration struct {
	// Orientation is the default diagram layout direction.
	// Valid values: "top-bottom", "bottom-top", "left-right", "right-left".
	// Can be set via the JOBVIZ_ORIENTATION env var.
	Orientation string `koanf:"orientation"`

	// Format is the default diagram output format: "ascii" or "dot".
	// Can be set via the JOBVIZ_FORMAT env var.
	Format string `koanf:"format"`

	// Color controls colorized output: "auto", "always", or "never".
	// Can be set via the JOBVIZ_COLOR env var.
	Color string `koanf:"color"`

	// Watch configures watch mode behavior.
	// Environment variable support via the JOBVIZ_WATCH_* prefix.
	Watch WatchConfig `koanf:"watch"`
}

// WatchConfig holds settings for 'jobviz watch'.
type WatchConfig struct {
	// Debounce is the quiet period after the last write before the pipeline
	// re-runs, as a duration string (e.g., "500ms", "2s").
	Debounce string `koanf:"debounce"`
}

// DebounceDuration parses the configured debounce interval.
func (w WatchConfig) DebounceDuration() (time.Duration, error) {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch.debounce %q: %w", w.Debounce, err)
	}
	return d, nil
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
// projectConfigPath overrides the project config location when non-empty
// (used by the --config flag and tests).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config if present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading user config %s: %w", path, err)
	}
	return nil
}

// loadProjectConfig loads the project-level config. YAML is preferred; a
// JSON config is accepted when no YAML file exists.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		if err := k.Load(file.Provider(customPath), parserForPath(customPath)); err != nil {
			return fmt.Errorf("loading config %s: %w", customPath, err)
		}
		return nil
	}

	yamlPath := ProjectConfigPath()
	jsonPath := ProjectJSONConfigPath()

	switch {
	case fileExists(yamlPath):
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading project config %s: %w", yamlPath, err)
		}
	case fileExists(jsonPath):
		if err := k.Load(file.Provider(jsonPath), json.Parser()); err != nil {
			return fmt.Errorf("loading project config %s: %w", jsonPath, err)
		}
	}
	return nil
}

// parserForPath picks the config parser based on the file extension.
func parserForPath(path string) koanf.Parser {
	if strings.HasSuffix(path, ".json") {
		return json.Parser()
	}
	return yaml.Parser()
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("JOBVIZ_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("loading environment config: %w", err)
	}
	return nil
}

// envTransform maps JOBVIZ_WATCH_DEBOUNCE to watch.debounce and so on.
func envTransform(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "JOBVIZ_")), "_", ".")
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks that configuration values are within their allowed sets.
func Validate(cfg *Configuration) error {
	if !isOneOf(cfg.Orientation, "top-bottom", "bottom-top", "left-right", "right-left") {
		return fmt.Errorf("invalid orientation %q (valid: top-bottom, bottom-top, left-right, right-left)", cfg.Orientation)
	}
	if !isOneOf(cfg.Format, "ascii", "dot") {
		return fmt.Errorf("invalid format %q (valid: ascii, dot)", cfg.Format)
	}
	if !isOneOf(cfg.Color, "auto", "always", "never") {
		return fmt.Errorf("invalid color %q (valid: auto, always, never)", cfg.Color)
	}
	if _, err := cfg.Watch.DebounceDuration(); err != nil {
		return err
	}
	return nil
}

// isOneOf reports whether value is among the allowed values.
func isOneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
