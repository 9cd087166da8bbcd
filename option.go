package luamod

import (
	"github.com/viant/afs"
	"github.com/viant/luamod/inspector/info"
	"log/slog"
)

type Option func(*Service)

// WithFS sets storage service
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithConfig sets generator config
func WithConfig(config *info.Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithLogger sets logger used for console reporting
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
