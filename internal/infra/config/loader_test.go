package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join("testdata", "unitconv.yaml")
	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Category != domain.CategoryCustom {
		t.Fatalf("expected category custom, got %q", cfg.Category)
	}
	if cfg.Precision != 3 {
		t.Fatalf("expected precision 3, got %d", cfg.Precision)
	}
	if cfg.FromUnit != "a" || cfg.ToUnit != "b" {
		t.Fatalf("expected units a/b, got %s/%s", cfg.FromUnit, cfg.ToUnit)
	}
	if cfg.Factors[domain.CategoryCustom]["b"] != 0.5 {
		t.Fatalf("expected custom factors to map, got %v", cfg.Factors)
	}

	ui := cfg.UI
	if ui.FromLabel != "Source" || ui.ToLabel != "Target" {
		t.Fatalf("expected labels to map, got %q/%q", ui.FromLabel, ui.ToLabel)
	}
	if !ui.HideLabels || !ui.DisableTo || !ui.AllowUnitSelection {
		t.Fatalf("expected ui flags to map, got %+v", ui)
	}
	if ui.Disabled || ui.DisableFrom {
		t.Fatalf("unset flags must keep defaults, got %+v", ui)
	}
}

func TestLoadConfigInvalidFactor(t *testing.T) {
	path := filepath.Join("testdata", "unitconv_invalid.yaml")
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !strings.Contains(err.Error(), "factors.custom.b") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join("testdata", "unitconv_broken.yaml")
	_, err := LoadConfig(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !strings.Contains(err.Error(), "yaml:") {
		t.Fatalf("expected yaml error, got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "unitconv.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if cfg.Precision != 2 {
		t.Fatalf("expected defaults alongside the error")
	}
}

func TestParseConfigEmptyDocumentUsesDefaults(t *testing.T) {
	cfg, err := ParseConfig("inline", []byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Category != "" || cfg.Precision != 2 || cfg.UI.FromLabel != "From" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
