package ports

import "github.com/aalvaropc/unitconv/internal/domain"

// ConfigLoader loads a session configuration from a source (e.g., filesystem).
type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
