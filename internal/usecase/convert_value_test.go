package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func lengthConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Category = domain.CategoryLength
	cfg.FromUnit = "m"
	cfg.ToUnit = "km"
	return cfg
}

func TestConvertValue_UsesConfigDefaults(t *testing.T) {
	uc := NewConvertValue(lengthConfig())

	got, err := uc.Execute(context.Background(), ConvertRequest{Value: 1500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.Conversion{
		From: domain.Record{Unit: "m", Value: 1500},
		To:   domain.Record{Unit: "km", Value: 1.5},
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestConvertValue_RequestOverridesConfig(t *testing.T) {
	uc := NewConvertValue(lengthConfig())
	p := 1

	got, err := uc.Execute(context.Background(), ConvertRequest{
		Value:     100,
		Category:  domain.CategoryTemperature,
		FromUnit:  "c",
		ToUnit:    "k",
		Precision: &p,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 373.15 is stored just below the tie.
	if got.To.Value != 373.1 {
		t.Fatalf("expected 373.1, got %v", got.To.Value)
	}
}

func TestConvertValue_InstallsCustomFactors(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Category = domain.CategoryCustom
	cfg.FromUnit, cfg.ToUnit = "a", "b"
	cfg.Factors[domain.CategoryCustom] = domain.FactorTable{"a": 1, "b": 0.5}

	uc := NewConvertValue(cfg)
	got, err := uc.Execute(context.Background(), ConvertRequest{Value: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.To.Value != 6 {
		t.Fatalf("expected 6, got %v", got.To.Value)
	}
}

func TestConvertValue_LenientUnknownUnitYieldsZero(t *testing.T) {
	uc := NewConvertValue(lengthConfig())

	got, err := uc.Execute(context.Background(), ConvertRequest{Value: 5, ToUnit: "parsec"})
	if err != nil {
		t.Fatalf("lenient mode must not fail: %v", err)
	}
	if got.To.Value != 0 {
		t.Fatalf("expected 0, got %v", got.To.Value)
	}
}

func TestConvertValue_StrictValidation(t *testing.T) {
	uc := NewConvertValue(domain.DefaultConfig())
	neg := -1

	cases := []struct {
		name string
		req  ConvertRequest
	}{
		{"missing category", ConvertRequest{Value: 1, FromUnit: "m", ToUnit: "km"}},
		{"unknown category", ConvertRequest{Value: 1, Category: "volume", FromUnit: "l", ToUnit: "ml"}},
		{"unknown unit", ConvertRequest{Value: 1, Category: domain.CategoryLength, FromUnit: "m", ToUnit: "parsec"}},
		{"unknown temperature unit", ConvertRequest{Value: 1, Category: domain.CategoryTemperature, FromUnit: "c", ToUnit: "r"}},
		{"custom without table", ConvertRequest{Value: 1, Category: domain.CategoryCustom, FromUnit: "a", ToUnit: "b"}},
		{"negative precision", ConvertRequest{Value: 1, Category: domain.CategoryLength, FromUnit: "m", ToUnit: "km", Precision: &neg}},
	}
	for _, c := range cases {
		c.req.Strict = true
		_, err := uc.Execute(context.Background(), c.req)
		if !domain.IsKind(err, domain.KindInvalidInput) {
			t.Errorf("%s: expected invalid_input, got %v", c.name, err)
		}
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput in chain", c.name)
		}
	}

	ok := ConvertRequest{Value: 1, Category: domain.CategoryWeight, FromUnit: "kg", ToUnit: "g", Strict: true}
	got, err := uc.Execute(context.Background(), ok)
	if err != nil || got.To.Value != 1000 {
		t.Fatalf("expected 1000 without error, got %v, %v", got.To.Value, err)
	}
}

func TestConvertValue_RespectsCanceledContext(t *testing.T) {
	uc := NewConvertValue(lengthConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, ConvertRequest{Value: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	out, err := uc.ExecuteAll(ctx, ConvertRequest{}, []float64{1, 2})
	if !errors.Is(err, context.Canceled) || len(out) != 0 {
		t.Fatalf("expected no results and context.Canceled, got %v, %v", out, err)
	}
}

func TestConvertValue_ExecuteAll(t *testing.T) {
	conv := domain.NewConverter()
	uc := NewConvertValue(lengthConfig(), WithConverter(conv))
	if uc.Converter() != conv {
		t.Fatalf("expected shared converter")
	}

	out, err := uc.ExecuteAll(context.Background(), ConvertRequest{}, []float64{1000, 2500, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1, 2.5, 0}
	if len(out) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(out))
	}
	for i, w := range want {
		if out[i].To.Value != w {
			t.Errorf("result %d: got %v, want %v", i, out[i].To.Value, w)
		}
	}
}
