package domain

import (
	"math"
	"sort"
)

// Category selects a conversion domain.
type Category string

const (
	CategoryLength      Category = "length"
	CategoryWeight      Category = "weight"
	CategoryTemperature Category = "temperature"
	CategoryCustom      Category = "custom"
)

// Unit is a short unit code. It only has meaning within its category.
type Unit string

const (
	Celsius    Unit = "c"
	Fahrenheit Unit = "f"
	Kelvin     Unit = "k"
)

// FactorTable maps a unit to the multiplier converting it into the category's
// base unit (meters for length, grams for weight).
type FactorTable map[Unit]float64

// Clone returns an independent copy. A nil table stays nil.
func (t FactorTable) Clone() FactorTable {
	if t == nil {
		return nil
	}
	out := make(FactorTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Units returns the table's units ordered by factor, then by code.
func (t FactorTable) Units() []Unit {
	out := make([]Unit, 0, len(t))
	for u := range t {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := t[out[i]], t[out[j]]
		if fi != fj {
			return fi < fj
		}
		return out[i] < out[j]
	})
	return out
}

// factor reports the multiplier for u. Zero and NaN count as missing.
func (t FactorTable) factor(u Unit) (float64, bool) {
	f, ok := t[u]
	if !ok || f == 0 || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// TemperatureUnits are the only units the temperature formulas understand.
var TemperatureUnits = []Unit{Celsius, Fahrenheit, Kelvin}

// BuiltinFactors returns fresh copies of the built-in linear tables.
func BuiltinFactors() map[Category]FactorTable {
	return map[Category]FactorTable{
		CategoryLength: {
			"mm": 0.001,
			"cm": 0.01,
			"m":  1,
			"km": 1000,
			"in": 0.0254,
			"ft": 0.3048,
			"yd": 0.9144,
			"mi": 1609.34,
		},
		CategoryWeight: {
			"mg":  0.001,
			"g":   1,
			"kg":  1000,
			"oz":  28.3495,
			"lb":  453.592,
			"ton": 1000000,
		},
	}
}
