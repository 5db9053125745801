package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/unitconv/internal/domain"
)

// Values collects the numbers selected by a JSONPath expression in a JSON
// document.
//
// Policy:
// - Numbers are taken as is; strings are read with domain.ParseValue.
// - Anything else (objects, booleans, null, non-numeric strings) is skipped.
// - Arrays returned by wildcards are flattened in document order.
func Values(body []byte, expr string) ([]float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, invalid(fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidInput))
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, invalid(fmt.Errorf("document is not valid JSON: %w", err))
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, invalid(fmt.Errorf("jsonpath %s: %w", expr, err))
	}

	return collect(nil, val), nil
}

func collect(out []float64, v any) []float64 {
	switch t := v.(type) {
	case float64:
		return append(out, t)
	case string:
		if f, ok := domain.ParseValue(t); ok {
			return append(out, f)
		}
		return out
	case []any:
		for _, item := range t {
			out = collect(out, item)
		}
		return out
	default:
		return out
	}
}

func invalid(err error) error {
	return &domain.OpError{
		Op:   "extract.values",
		Kind: domain.KindInvalidInput,
		Err:  err,
	}
}
