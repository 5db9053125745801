package fsconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/infra/config"
)

func TestInitializer_Init_WritesLoadableConfig(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.ConfigSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	path := filepath.Join(tmp, "unitconv.yaml")
	assertFileExists(t, path)
	assertFileExists(t, filepath.Join(tmp, ".unitconv", "logs"))

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("starter config must load: %v", err)
	}
	if cfg.Category != domain.CategoryLength || cfg.ToUnit != "km" {
		t.Fatalf("unexpected starter config %+v", cfg)
	}
	if len(cfg.Factors[domain.CategoryCustom]) != 2 {
		t.Fatalf("expected sample custom factors, got %v", cfg.Factors)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "unitconv.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing unitconv.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.ConfigSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read unitconv.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected unitconv.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.ConfigSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read unitconv.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "unitconv:") {
		t.Fatalf("expected unitconv.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
