package usecase

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/aalvaropc/unitconv/internal/domain"
)

type fakeInitializer struct {
	spec  domain.ConfigSpec
	force bool
	calls int
}

func (f *fakeInitializer) Init(spec domain.ConfigSpec, force bool) error {
	f.spec = spec
	f.force = force
	f.calls++
	return nil
}

func TestNewSession_LogsAcceptedEdits(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pair := NewSession(lengthConfig(), log)
	pair.EditFrom("1500")
	pair.EditFrom("1500")

	out := buf.String()
	if strings.Count(out, "conversion.changed") != 1 {
		t.Fatalf("expected exactly one log line, got:\n%s", out)
	}
	if !strings.Contains(out, `"to_value":1.5`) {
		t.Fatalf("expected converted value in log, got:\n%s", out)
	}
}

func TestNewSession_InstallsFactors(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Category = domain.CategoryCustom
	cfg.FromUnit, cfg.ToUnit = "a", "b"
	cfg.Factors[domain.CategoryCustom] = domain.FactorTable{"a": 1, "b": 0.5}

	pair := NewSession(cfg, nil)
	pair.EditTo("4")

	if got := pair.Value().From.Value; got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestInitConfig_Delegates(t *testing.T) {
	f := &fakeInitializer{}
	if err := NewInitConfig(f).Execute("/tmp/x", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.calls != 1 || f.spec.Root != "/tmp/x" || !f.force {
		t.Fatalf("unexpected call %+v", f)
	}
}
