package analyzer

import (
	"github.com/viant/luamod/inspector/graph"
	"github.com/viant/luamod/inspector/lua"
	"log/slog"
)

// Analyzer infers the addon module hierarchy from loaded sources
type Analyzer struct {
	inspector *lua.Inspector
	patterns  *lua.Patterns
	logger    *slog.Logger
}

// Result holds analysis output
type Result struct {
	Files       []*graph.File
	Index       *graph.ClassIndex
	Annotations *graph.AnnotationMap
}

// New creates an analyzer for addon patterns
func New(patterns *lua.Patterns, options ...Option) *Analyzer {
	ret := &Analyzer{
		inspector: lua.NewInspector(patterns),
		patterns:  patterns,
		logger:    slog.Default(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Analyze indexes classes and builds annotation map of the project
func (a *Analyzer) Analyze(project *graph.Project) *Result {
	files := a.inspector.InspectProject(project)
	index := IndexClasses(files)
	for _, record := range index.Records() {
		a.logger.Debug("indexed class", "class", record.Name, "file", record.File, "line", record.Line)
	}
	annotations := a.BuildHierarchy(project, files, index)
	return &Result{Files: files, Index: index, Annotations: annotations}
}
