package config

type YAMLFile struct {
	UnitConv YAMLConfig `yaml:"unitconv"`
}

type YAMLConfig struct {
	Category  string `yaml:"category"`
	Precision *int   `yaml:"precision"`
	FromUnit  string `yaml:"from_unit"`
	ToUnit    string `yaml:"to_unit"`

	UI YAMLUI `yaml:"ui"`

	// category -> unit -> factor to the category's base unit
	Factors map[string]map[string]float64 `yaml:"factors"`
}

type YAMLUI struct {
	FromLabel          string `yaml:"from_label"`
	ToLabel            string `yaml:"to_label"`
	HideLabels         *bool  `yaml:"hide_labels"`
	Disabled           *bool  `yaml:"disabled"`
	DisableFrom        *bool  `yaml:"disable_from"`
	DisableTo          *bool  `yaml:"disable_to"`
	AllowUnitSelection *bool  `yaml:"allow_unit_selection"`
}
