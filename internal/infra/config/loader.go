package config

import (
	"os"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a unitconv.yaml file and applies it on top of the defaults.
func LoadConfig(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return ParseConfig(path, b)
}

// ParseConfig decodes YAML bytes; path is only used in errors.
func ParseConfig(path string, b []byte) (domain.Config, error) {
	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto.UnitConv)
}

// Loader adapts LoadConfig to ports.ConfigLoader.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

func (l *Loader) LoadConfig(path string) (domain.Config, error) {
	return LoadConfig(path)
}
