package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
)

var builtinCategories = map[domain.Category]bool{
	domain.CategoryLength:      true,
	domain.CategoryWeight:      true,
	domain.CategoryTemperature: true,
	domain.CategoryCustom:      true,
}

// MapConfig applies parsed values on top of domain.DefaultConfig.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	factors, err := mapFactors(path, yc.Factors)
	if err != nil {
		return cfg, err
	}
	cfg.Factors = factors

	if c := strings.TrimSpace(yc.Category); c != "" {
		cat := domain.Category(strings.ToLower(c))
		if !builtinCategories[cat] {
			if _, ok := factors[cat]; !ok {
				return cfg, invalidField(path, "category", fmt.Sprintf("unknown category %q", c))
			}
		}
		cfg.Category = cat
	}

	if yc.Precision != nil {
		if *yc.Precision < 0 {
			return cfg, invalidField(path, "precision", "precision must not be negative")
		}
		cfg.Precision = *yc.Precision
	}

	if u := strings.TrimSpace(yc.FromUnit); u != "" {
		cfg.FromUnit = domain.Unit(u)
	}
	if u := strings.TrimSpace(yc.ToUnit); u != "" {
		cfg.ToUnit = domain.Unit(u)
	}

	cfg.UI = mapUI(cfg.UI, yc.UI)
	return cfg, nil
}

func mapUI(ui domain.UIConfig, y YAMLUI) domain.UIConfig {
	if y.FromLabel != "" {
		ui.FromLabel = y.FromLabel
	}
	if y.ToLabel != "" {
		ui.ToLabel = y.ToLabel
	}
	setBool(&ui.HideLabels, y.HideLabels)
	setBool(&ui.Disabled, y.Disabled)
	setBool(&ui.DisableFrom, y.DisableFrom)
	setBool(&ui.DisableTo, y.DisableTo)
	setBool(&ui.AllowUnitSelection, y.AllowUnitSelection)
	return ui
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func mapFactors(path string, in map[string]map[string]float64) (map[domain.Category]domain.FactorTable, error) {
	out := make(map[domain.Category]domain.FactorTable, len(in))

	cats := make([]string, 0, len(in))
	for c := range in {
		cats = append(cats, c)
	}
	sort.Strings(cats) // stable error reporting

	for _, c := range cats {
		name := strings.ToLower(strings.TrimSpace(c))
		if name == "" {
			return nil, invalidField(path, "factors", "category name is empty")
		}

		units := make([]string, 0, len(in[c]))
		for u := range in[c] {
			units = append(units, u)
		}
		sort.Strings(units)

		table := make(domain.FactorTable, len(units))
		for _, u := range units {
			f := in[c][u]
			if strings.TrimSpace(u) == "" {
				return nil, invalidField(path, fmt.Sprintf("factors.%s", c), "unit code is empty")
			}
			if !(f > 0) || math.IsInf(f, 0) {
				return nil, invalidField(path, fmt.Sprintf("factors.%s.%s", c, u), "factor must be a positive number")
			}
			table[domain.Unit(strings.TrimSpace(u))] = f
		}
		out[domain.Category(name)] = table
	}
	return out, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
