package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// ConvertRequest describes a one-shot conversion. Empty fields fall back to
// the session config.
type ConvertRequest struct {
	Value     float64
	Category  domain.Category
	FromUnit  domain.Unit
	ToUnit    domain.Unit
	Precision *int

	// Strict rejects unknown categories and units instead of yielding 0.
	Strict bool
}

type ConvertValue struct {
	cfg  domain.Config
	conv *domain.Converter
}

type ConvertOption func(*ConvertValue)

// WithConverter shares a converter instead of building one from the config.
func WithConverter(c *domain.Converter) ConvertOption {
	return func(uc *ConvertValue) {
		if c != nil {
			uc.conv = c
		}
	}
}

func NewConvertValue(cfg domain.Config, opts ...ConvertOption) *ConvertValue {
	uc := &ConvertValue{cfg: cfg}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.conv == nil {
		uc.conv = cfg.NewConverter()
	}
	return uc
}

// Converter exposes the converter used for requests.
func (uc *ConvertValue) Converter() *domain.Converter { return uc.conv }

// Execute converts req.Value and returns both sides of the conversion.
func (uc *ConvertValue) Execute(ctx context.Context, req ConvertRequest) (domain.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return domain.Conversion{}, err
	}

	req = uc.withDefaults(req)

	if req.Strict {
		if err := uc.validate(req); err != nil {
			return domain.Conversion{}, err
		}
	}

	out := uc.conv.Convert(req.Value, req.FromUnit, req.ToUnit, req.Category, *req.Precision)
	return domain.Conversion{
		From: domain.Record{Unit: req.FromUnit, Value: req.Value},
		To:   domain.Record{Unit: req.ToUnit, Value: out},
	}, nil
}

// ExecuteAll converts every value with the same settings. It stops at the
// first error and returns what was converted so far.
func (uc *ConvertValue) ExecuteAll(ctx context.Context, req ConvertRequest, values []float64) ([]domain.Conversion, error) {
	out := make([]domain.Conversion, 0, len(values))
	for _, v := range values {
		req.Value = v
		c, err := uc.Execute(ctx, req)
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (uc *ConvertValue) withDefaults(req ConvertRequest) ConvertRequest {
	if req.Category == "" {
		req.Category = uc.cfg.Category
	}
	if req.FromUnit == "" {
		req.FromUnit = uc.cfg.FromUnit
	}
	if req.ToUnit == "" {
		req.ToUnit = uc.cfg.ToUnit
	}
	if req.Precision == nil {
		p := uc.cfg.Precision
		req.Precision = &p
	}
	return req
}

func (uc *ConvertValue) validate(req ConvertRequest) error {
	if req.Category == "" {
		return invalidInput(fmt.Errorf("category is required: %w", domain.ErrInvalidInput))
	}
	if !uc.conv.HasCategory(req.Category) {
		return invalidInput(fmt.Errorf("unknown category %q: %w", req.Category, domain.ErrInvalidInput))
	}
	for _, u := range []domain.Unit{req.FromUnit, req.ToUnit} {
		if !uc.conv.HasUnit(req.Category, u) {
			return invalidInput(fmt.Errorf("unit %q is not part of %s: %w", u, req.Category, domain.ErrInvalidInput))
		}
	}
	if *req.Precision < 0 {
		return invalidInput(fmt.Errorf("precision must not be negative: %w", domain.ErrInvalidInput))
	}
	return nil
}

func invalidInput(err error) error {
	return &domain.OpError{
		Op:   "usecase.convert",
		Kind: domain.KindInvalidInput,
		Err:  err,
	}
}
