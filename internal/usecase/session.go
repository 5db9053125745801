package usecase

import (
	"log/slog"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// NewSession builds a paired converter from cfg with its factor tables
// installed. Accepted edits are logged at debug level when log is non-nil.
func NewSession(cfg domain.Config, log *slog.Logger) *domain.Pair {
	pair := domain.NewPair(cfg.NewConverter(), cfg.PairConfig())

	if log != nil {
		pair.Subscribe(func(c domain.Conversion) {
			log.Debug("conversion.changed",
				"category", string(pair.Category()),
				"from_unit", string(c.From.Unit),
				"from_value", c.From.Value,
				"to_unit", string(c.To.Unit),
				"to_value", c.To.Value,
			)
		})
	}
	return pair
}
