package domain

// Config represents a unitconv session configuration loaded from unitconv.yaml
// and overridden by flags.
type Config struct {
	Category  Category
	Precision int
	FromUnit  Unit
	ToUnit    Unit

	// Factors are installed per category on top of the built-in tables,
	// replacing (not merging) the table of each category they name.
	Factors map[Category]FactorTable

	UI UIConfig
}

// UIConfig holds presentation-only settings. The engine never reads them.
type UIConfig struct {
	FromLabel          string
	ToLabel            string
	HideLabels         bool
	Disabled           bool
	DisableFrom        bool
	DisableTo          bool
	AllowUnitSelection bool
}

// FromDisabled reports whether the from side accepts edits.
func (u UIConfig) FromDisabled() bool { return u.Disabled || u.DisableFrom }

// ToDisabled reports whether the to side accepts edits.
func (u UIConfig) ToDisabled() bool { return u.Disabled || u.DisableTo }

// ConfigSpec describes where a starter config is written.
type ConfigSpec struct {
	Root string
}

// DefaultConfig provides sane defaults if unitconv.yaml is partially missing.
// No category is selected by default.
func DefaultConfig() Config {
	return Config{
		Precision: 2,
		FromUnit:  "m",
		ToUnit:    "m",
		Factors:   map[Category]FactorTable{},
		UI: UIConfig{
			FromLabel: "From",
			ToLabel:   "To",
		},
	}
}

// PairConfig extracts the engine settings.
func (c Config) PairConfig() PairConfig {
	return PairConfig{
		Category:  c.Category,
		Precision: c.Precision,
		FromUnit:  c.FromUnit,
		ToUnit:    c.ToUnit,
	}
}

// NewConverter returns a converter with the config's factor tables installed.
func (c Config) NewConverter() *Converter {
	conv := NewConverter()
	for cat, table := range c.Factors {
		conv.InstallFactors(cat, table)
	}
	return conv
}
