package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Source type discriminators. The type selects which adapter the
// aggregator runs over the source's records.
const (
	TypeRednote  = "rednote"
	TypeBilibili = "bilibili"
)

// Source is one platform export. URL may be an http(s) address or a
// local file path. FallbackURL names a legacy export tried when the
// primary is unreachable or empty.
type Source struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	URL         string `yaml:"url"`
	FallbackURL string `yaml:"fallback_url,omitempty"`
	Enabled     bool   `yaml:"enabled"`
}

type Config struct {
	RequestTimeout string   `yaml:"request_timeout"`
	ImagesDir      string   `yaml:"images_dir"`
	Sources        []Source `yaml:"sources"`
}

// RequestTimeoutDuration parses the configured timeout, defaulting to 30s.
func (c *Config) RequestTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// GetImagesDir returns the mirror directory, defaulting to public/images.
func (c *Config) GetImagesDir() string {
	if c.ImagesDir == "" {
		return filepath.Join("public", "images")
	}
	return c.ImagesDir
}

// EnabledSources returns the sources to load, in declaration order. That
// order is also the order their items appear in the aggregate collection.
func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "marksort", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to the config path on first run.
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	validTypes := map[string]bool{TypeRednote: true, TypeBilibili: true}
	for i, s := range cfg.Sources {
		if s.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if s.URL == "" {
			return fmt.Errorf("source %q: url is required", s.Name)
		}
		if !validTypes[s.Type] {
			return fmt.Errorf("source %q: unknown type %q (valid: %s, %s)", s.Name, s.Type, TypeRednote, TypeBilibili)
		}
	}
	return nil
}
