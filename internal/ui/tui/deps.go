package tui

import (
	"log/slog"

	"github.com/aalvaropc/unitconv/internal/domain"
)

type Deps struct {
	// Config is the resolved session, flags already applied.
	Config domain.Config

	Logger *slog.Logger
	Debug  bool
}
