package analyzer

import (
	"log/slog"
)

type Option func(*Analyzer)

// WithLogger sets logger used to trace dropped constructions
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}
