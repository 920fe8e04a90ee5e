// Package config loads slidedeck settings from a YAML file with
// SLIDEDECK_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"slidedeck/internal/render"
	"slidedeck/internal/telemetry"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides. Nested keys are separated by a
// double underscore: SLIDEDECK_SERVE__ADDR sets serve.addr.
const EnvPrefix = "SLIDEDECK_"

// Config is the top-level configuration, corresponding to slidedeck.yml.
type Config struct {
	// Deck is the path of a YAML deck. Empty means the built-in sample.
	Deck      string           `yaml:"deck" koanf:"deck"`
	Language  string           `yaml:"language" koanf:"language"`
	Labels    LabelsConfig     `yaml:"labels" koanf:"labels"`
	Serve     ServeConfig      `yaml:"serve" koanf:"serve"`
	Telemetry telemetry.Config `yaml:"telemetry" koanf:"telemetry"`
	LogFile   string           `yaml:"log_file" koanf:"log_file"`
}

// LabelsConfig overrides individual chrome strings.
type LabelsConfig struct {
	Counter  string `yaml:"counter" koanf:"counter"`
	Previous string `yaml:"previous" koanf:"previous"`
	Next     string `yaml:"next" koanf:"next"`
}

// ServeConfig configures the browser host.
type ServeConfig struct {
	Addr           string   `yaml:"addr" koanf:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Language: "",
		Serve: ServeConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
		Telemetry: telemetry.Config{
			ServiceName: telemetry.DefaultServiceName,
		},
	}
}

// Load reads configuration from path, if it exists, then overlays
// environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envKey maps SLIDEDECK_LABELS__NEXT to labels.next.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// listKeys are string lists that may be set from the environment as a
// comma-separated value.
var listKeys = map[string]bool{
	"serve.allowed_origins": true,
}

// envValue maps an environment variable to its config key and splits list
// values: SLIDEDECK_SERVE__ALLOWED_ORIGINS="http://a, http://b" sets two
// origins.
func envValue(name, value string) (string, any) {
	key := envKey(name)
	if !listKeys[key] {
		return key, value
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// Validate checks values that would otherwise fail later at render time.
func (c *Config) Validate() error {
	if c.Labels.Counter != "" && strings.Count(c.Labels.Counter, "%d") != 2 {
		return fmt.Errorf("labels.counter %q must contain exactly two %%d verbs", c.Labels.Counter)
	}
	if c.Serve.Addr == "" {
		return fmt.Errorf("serve.addr is required")
	}
	return nil
}

// ChromeLabels resolves chrome strings for a deck language: the configured
// language wins over the deck's, and individual overrides win over both.
func (c *Config) ChromeLabels(deckLanguage string) render.Labels {
	return render.LabelsFor(c.LanguageFor(deckLanguage)).Override(render.Labels{
		Counter:  c.Labels.Counter,
		Previous: c.Labels.Previous,
		Next:     c.Labels.Next,
	})
}

// LanguageFor returns the effective document language.
func (c *Config) LanguageFor(deckLanguage string) string {
	if c.Language != "" {
		return c.Language
	}
	if deckLanguage != "" {
		return deckLanguage
	}
	return "de"
}
