package analyzer

import (
	"github.com/viant/luamod/inspector/graph"
	"strings"
)

// BuildHierarchy resolves constructions of module files and groups the edges by parent class.
// When a file declares several classes the first indexed one becomes the child class.
func (a *Analyzer) BuildHierarchy(project *graph.Project, files []*graph.File, index *graph.ClassIndex) *graph.AnnotationMap {
	annotations := graph.NewAnnotationMap()
	for _, file := range files {
		source := project.LookupSource(file.Path)
		if source == nil || source.Core || len(file.Constructions) == 0 {
			continue
		}
		lines := strings.Split(string(source.Content), "\n")
		for _, construction := range file.Constructions {
			edge := a.edge(construction, lines, index)
			if edge == nil {
				continue
			}
			annotations.Add(edge)
		}
	}
	return annotations
}

func (a *Analyzer) edge(construction *graph.Construction, lines []string, index *graph.ClassIndex) *graph.Edge {
	end := construction.Line
	if end > len(lines) {
		end = len(lines)
	}
	parent, ok := ResolveParent(a.patterns, construction.ParentExpr, lines[:end])
	if !ok {
		a.logger.Debug("unresolved parent", "file", construction.File, "module", construction.Name, "expr", construction.ParentExpr)
		return nil
	}
	if !index.Has(parent) {
		a.logger.Debug("unknown parent class", "file", construction.File, "module", construction.Name, "parent", parent)
		return nil
	}
	child := index.FirstInFile(construction.File)
	if child == nil {
		a.logger.Debug("no class declared", "file", construction.File, "module", construction.Name)
		return nil
	}
	return &graph.Edge{Parent: parent, Child: construction.Name, ChildClass: child.Name}
}
