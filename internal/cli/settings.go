package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/infra/config"
	"github.com/aalvaropc/unitconv/internal/infra/configfinder"
	"github.com/aalvaropc/unitconv/internal/ports"
)

type globalOptions struct {
	debug      bool
	configPath string
}

type loadedConfig struct {
	cfg  domain.Config
	path string // empty when running on defaults
	root string // directory used for logs
}

// configSource resolves the session config through the ports.
type configSource struct {
	locator ports.ConfigLocator
	loader  ports.ConfigLoader
}

func defaultConfigSource() configSource {
	return configSource{
		locator: configfinder.NewFinder(),
		loader:  config.NewLoader(),
	}
}

// resolveConfig loads an explicit --config path, or the nearest unitconv.yaml
// found upward from the working directory. No config at all means defaults.
func resolveConfig(configFlag string) (loadedConfig, error) {
	return defaultConfigSource().resolve(configFlag)
}

func (s configSource) resolve(configFlag string) (loadedConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	if p := strings.TrimSpace(configFlag); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return loadedConfig{}, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := s.loader.LoadConfig(abs)
		if err != nil {
			return loadedConfig{}, err
		}
		return loadedConfig{cfg: cfg, path: abs, root: filepath.Dir(abs)}, nil
	}

	root, err := s.locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return loadedConfig{cfg: domain.DefaultConfig(), root: wd}, nil
		}
		return loadedConfig{}, err
	}

	path := filepath.Join(root, configfinder.FileName)
	cfg, err := s.loader.LoadConfig(path)
	if err != nil {
		return loadedConfig{}, err
	}
	return loadedConfig{cfg: cfg, path: path, root: root}, nil
}

// sessionFlags override config values when explicitly set.
type sessionFlags struct {
	category  string
	from      string
	to        string
	precision int

	fromLabel          string
	toLabel            string
	hideLabels         bool
	disabled           bool
	disableFrom        bool
	disableTo          bool
	allowUnitSelection bool
}

func (s *sessionFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.category, "category", "k", "", "Conversion category: length|weight|temperature|custom")
	f.StringVarP(&s.from, "from", "f", "", "Source unit (e.g. m, kg, c)")
	f.StringVarP(&s.to, "to", "t", "", "Target unit (e.g. km, lb, f)")
	f.IntVarP(&s.precision, "precision", "p", 2, "Decimal digits kept after rounding")
}

func (s *sessionFlags) bindUI(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&s.fromLabel, "from-label", "", "Label of the from field")
	f.StringVar(&s.toLabel, "to-label", "", "Label of the to field")
	f.BoolVar(&s.hideLabels, "hide-labels", false, "Render fields without labels")
	f.BoolVar(&s.disabled, "disabled", false, "Disable both fields")
	f.BoolVar(&s.disableFrom, "disable-from", false, "Disable the from field")
	f.BoolVar(&s.disableTo, "disable-to", false, "Disable the to field")
	f.BoolVar(&s.allowUnitSelection, "allow-unit-selection", false, "Allow cycling units with ctrl+n/ctrl+p")
}

func (s *sessionFlags) apply(cmd *cobra.Command, cfg domain.Config) domain.Config {
	f := cmd.Flags()
	changed := func(name string) bool {
		fl := f.Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("category") {
		cfg.Category = domain.Category(strings.ToLower(strings.TrimSpace(s.category)))
	}
	if changed("from") {
		cfg.FromUnit = domain.Unit(strings.TrimSpace(s.from))
	}
	if changed("to") {
		cfg.ToUnit = domain.Unit(strings.TrimSpace(s.to))
	}
	if changed("precision") {
		cfg.Precision = s.precision
	}

	if changed("from-label") {
		cfg.UI.FromLabel = s.fromLabel
	}
	if changed("to-label") {
		cfg.UI.ToLabel = s.toLabel
	}
	if changed("hide-labels") {
		cfg.UI.HideLabels = s.hideLabels
	}
	if changed("disabled") {
		cfg.UI.Disabled = s.disabled
	}
	if changed("disable-from") {
		cfg.UI.DisableFrom = s.disableFrom
	}
	if changed("disable-to") {
		cfg.UI.DisableTo = s.disableTo
	}
	if changed("allow-unit-selection") {
		cfg.UI.AllowUnitSelection = s.allowUnitSelection
	}
	return cfg
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
