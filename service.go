package luamod

import (
	"context"
	"errors"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/luamod/analyzer"
	"github.com/viant/luamod/inspector/coder"
	"github.com/viant/luamod/inspector/graph"
	"github.com/viant/luamod/inspector/info"
	"github.com/viant/luamod/inspector/lua"
	"github.com/viant/luamod/inspector/repository"
	"log/slog"
)

// ErrAddonName reports that no addon name was configured nor detected
var ErrAddonName = errors.New("addon name was not configured and no .toc manifest was found")

// Service generates Modules annotations for an addon source tree
type Service struct {
	fs     afs.Service
	config *info.Config
	logger *slog.Logger
}

// Diff represents a change reported in dry run mode
type Diff struct {
	Path string
	Text string
}

// Report summarizes a generator run
type Report struct {
	Addon       string
	Annotations *graph.AnnotationMap
	Updated     []string // Files rewritten
	Diffs       []*Diff  // Pending changes, dry run only
	Errors      []error  // Per parent and per file failures
}

// New creates a generator service
func New(options ...Option) *Service {
	ret := &Service{
		fs:     afs.New(),
		config: info.DefaultConfig(),
		logger: slog.Default(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Generate scans the addon rooted at rootURL and rewrites Modules annotations.
// Only an unreadable root or an unknown addon name abort the run, other failures are collected in the report.
func (s *Service) Generate(ctx context.Context, rootURL string) (*Report, error) {
	config := *s.config
	config.Init()
	addonName, err := s.addonName(ctx, rootURL, &config)
	if err != nil {
		return nil, err
	}
	patterns, err := lua.NewPatterns(addonName, config.BaseType, config.RootSentinel)
	if err != nil {
		return nil, err
	}
	loader, err := repository.NewLoader(s.fs, config.Exclude...)
	if err != nil {
		return nil, err
	}
	project, err := loader.Load(ctx, rootURL, config.CoreFile, config.ModulesDir)
	if err != nil {
		return nil, err
	}
	project.Name = addonName
	s.logger.Debug("loaded sources", "addon", addonName, "files", len(project.Sources))

	result := analyzer.New(patterns, analyzer.WithLogger(s.logger)).Analyze(project)
	s.logger.Debug("analyzed hierarchy", "classes", result.Index.Len(), "parents", result.Annotations.Len())

	var coderOptions []coder.Option
	if !config.SkipSyntaxCheck {
		coderOptions = append(coderOptions, coder.WithSyntaxGuard(lua.NewSyntaxGuard()))
	}
	service := coder.New(s.fs, coderOptions...)
	plan := service.Synthesize(ctx, result.Annotations, result.Index, project)
	report := &Report{Addon: addonName, Annotations: result.Annotations}
	for _, planErr := range plan.Errors {
		s.reportError(planErr)
		report.Errors = append(report.Errors, planErr)
	}
	if config.DryRun {
		for _, change := range plan.Changes {
			text, err := coder.Diff(change)
			if err != nil {
				return nil, fmt.Errorf("failed to diff %s: %w", change.Path, err)
			}
			s.logger.Info("would update", "file", change.Path, "parents", change.Parents)
			report.Diffs = append(report.Diffs, &Diff{Path: change.Path, Text: text})
		}
	} else {
		outcome := service.Apply(ctx, plan)
		for _, path := range outcome.Updated {
			s.logger.Info("updated", "file", path)
		}
		for _, applyErr := range outcome.Errors {
			s.reportError(applyErr)
		}
		report.Updated = outcome.Updated
		report.Errors = append(report.Errors, outcome.Errors...)
	}
	s.logger.Info("done", "addon", addonName, "updated", len(report.Updated), "pending", len(report.Diffs), "errors", len(report.Errors))
	return report, nil
}

func (s *Service) addonName(ctx context.Context, rootURL string, config *info.Config) (string, error) {
	addon, err := repository.New(s.fs).Detect(ctx, rootURL, config.CoreFile)
	if err != nil {
		return "", err
	}
	if !addon.HasCore {
		s.logger.Warn("core file not found", "file", config.CoreFile, "root", rootURL)
	}
	if config.AddonName != "" {
		return config.AddonName, nil
	}
	if addon.Name == "" {
		return "", ErrAddonName
	}
	s.logger.Debug("detected addon", "name", addon.Name, "manifest", addon.Manifest)
	return addon.Name, nil
}

func (s *Service) reportError(err error) {
	var missing *coder.MissingDeclarationError
	if errors.As(err, &missing) {
		s.logger.Warn("no class definition found", "parent", missing.Parent, "file", missing.Path)
		return
	}
	s.logger.Error("failed to update", "error", err)
}
