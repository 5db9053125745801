package domain

import (
	"math"
	"sort"
	"sync"
)

// Converter holds the factor tables of a session and converts values between
// units. It is safe for concurrent use.
type Converter struct {
	mu     sync.Mutex
	tables map[Category]FactorTable
}

// NewConverter returns a converter seeded with the built-in length and weight
// tables.
func NewConverter() *Converter {
	return &Converter{tables: BuiltinFactors()}
}

// Convert maps value from one unit to another within cat, rounding every
// computed result to precision decimals.
//
// It never fails. A missing value, unit, category, or factor yields 0. For
// linear categories a value of 0 also yields 0 without converting; for
// temperature 0 is a real reading and converts normally.
func (c *Converter) Convert(value float64, from, to Unit, cat Category, precision int) float64 {
	if math.IsNaN(value) || from == "" || to == "" || cat == "" {
		return 0
	}

	if cat == CategoryTemperature {
		return convertTemperature(value, from, to, precision)
	}
	if value == 0 {
		return 0
	}

	c.mu.Lock()
	table := c.tables[cat]
	ff, okFrom := table.factor(from)
	ft, okTo := table.factor(to)
	c.mu.Unlock()

	if !okFrom || !okTo {
		return 0
	}

	base := value * ff
	return Round(base/ft, precision)
}

// InstallFactors replaces the table used for cat. Empty tables are ignored.
// The table is copied; later changes to the caller's map have no effect.
func (c *Converter) InstallFactors(cat Category, table FactorTable) bool {
	if len(table) == 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[cat] = table.Clone()
	return true
}

// Factors returns a copy of the active table for cat, or nil.
func (c *Converter) Factors(cat Category) FactorTable {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tables[cat].Clone()
}

// Units lists the units cat understands, smallest factor first.
func (c *Converter) Units(cat Category) []Unit {
	if cat == CategoryTemperature {
		return append([]Unit(nil), TemperatureUnits...)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tables[cat].Units()
}

// HasCategory reports whether Convert can do anything for cat.
func (c *Converter) HasCategory(cat Category) bool {
	if cat == CategoryTemperature {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables[cat]) > 0
}

// HasUnit reports whether u is a usable unit of cat.
func (c *Converter) HasUnit(cat Category, u Unit) bool {
	if cat == CategoryTemperature {
		return u == Celsius || u == Fahrenheit || u == Kelvin
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.tables[cat].factor(u)
	return ok
}

// Categories returns length, weight and temperature followed by every other
// category with an installed table, sorted by name.
func (c *Converter) Categories() []Category {
	out := []Category{CategoryLength, CategoryWeight, CategoryTemperature}

	c.mu.Lock()
	var extra []Category
	for cat, t := range c.tables {
		if cat == CategoryLength || cat == CategoryWeight || cat == CategoryTemperature || len(t) == 0 {
			continue
		}
		extra = append(extra, cat)
	}
	c.mu.Unlock()

	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// convertTemperature goes through celsius. Both legs are rounded except the
// identity legs for celsius itself.
func convertTemperature(value float64, from, to Unit, precision int) float64 {
	var celsius float64
	switch from {
	case Celsius:
		celsius = value
	case Fahrenheit:
		celsius = Round((value-32)*5/9, precision)
	case Kelvin:
		celsius = Round(value-273.15, precision)
	default:
		return 0
	}

	switch to {
	case Celsius:
		return celsius
	case Fahrenheit:
		return Round(celsius*9/5+32, precision)
	case Kelvin:
		return Round(celsius+273.15, precision)
	default:
		return 0
	}
}
