package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if len(cfg.Sources) != 2 {
		t.Fatalf("expected 2 default sources, got %d", len(cfg.Sources))
	}
	if cfg.Sources[0].Type != TypeRednote || cfg.Sources[1].Type != TypeBilibili {
		t.Errorf("unexpected default source types: %+v", cfg.Sources)
	}
	if cfg.Sources[0].FallbackURL == "" {
		t.Error("rednote default source should carry a legacy fallback url")
	}
}

func TestRequestTimeoutDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"10s", 10 * time.Second},
		{"2m", 2 * time.Minute},
		{"", 30 * time.Second},
		{"invalid", 30 * time.Second},
		{"-5s", 30 * time.Second},
	}
	for _, tt := range tests {
		cfg := &Config{RequestTimeout: tt.input}
		if got := cfg.RequestTimeoutDuration(); got != tt.want {
			t.Errorf("RequestTimeoutDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEnabledSourcesKeepOrder(t *testing.T) {
	cfg := &Config{
		Sources: []Source{
			{Name: "A", Enabled: true},
			{Name: "B", Enabled: false},
			{Name: "C", Enabled: true},
		},
	}
	enabled := cfg.EnabledSources()
	if len(enabled) != 2 {
		t.Fatalf("expected 2 enabled sources, got %d", len(enabled))
	}
	if enabled[0].Name != "A" || enabled[1].Name != "C" {
		t.Errorf("unexpected enabled sources: %v", enabled)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `request_timeout: 5s
sources:
  - name: Local
    type: rednote
    url: /tmp/rednote.json
    enabled: true
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RequestTimeout != "5s" {
		t.Errorf("expected 5s, got %s", cfg.RequestTimeout)
	}
	if len(cfg.Sources) != 1 || cfg.Sources[0].Name != "Local" {
		t.Errorf("unexpected sources: %+v", cfg.Sources)
	}
}

func TestLoadNonexistentFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Sources) == 0 {
		t.Error("expected default sources when config doesn't exist")
	}
}

func TestValidateMissingName(t *testing.T) {
	cfg := &Config{Sources: []Source{{Type: TypeRednote, URL: "x.json"}}}
	if validate(cfg) == nil {
		t.Error("expected error for missing name")
	}
}

func TestValidateMissingURL(t *testing.T) {
	cfg := &Config{Sources: []Source{{Name: "Test", Type: TypeRednote}}}
	if validate(cfg) == nil {
		t.Error("expected error for missing URL")
	}
}

func TestValidateUnknownType(t *testing.T) {
	cfg := &Config{Sources: []Source{{Name: "Test", Type: "rss", URL: "x.json"}}}
	if validate(cfg) == nil {
		t.Error("expected error for unknown source type")
	}
}

func TestGetImagesDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetImagesDir(); got != filepath.Join("public", "images") {
		t.Errorf("GetImagesDir = %q", got)
	}
	cfg.ImagesDir = "/srv/images"
	if got := cfg.GetImagesDir(); got != "/srv/images" {
		t.Errorf("GetImagesDir = %q", got)
	}
}
