package ports

import "github.com/aalvaropc/unitconv/internal/domain"

type ConfigInitializer interface {
	Init(spec domain.ConfigSpec, force bool) error
}
