package lua

import (
	"github.com/viant/luamod/inspector/graph"
)

// Inspector extracts class declarations and module constructions from Lua sources
type Inspector struct {
	patterns *Patterns
}

// NewInspector creates a new Inspector bound to addon patterns
func NewInspector(patterns *Patterns) *Inspector {
	return &Inspector{patterns: patterns}
}

// InspectSource extracts facts of a single file
func (i *Inspector) InspectSource(path string, src []byte) *graph.File {
	return &graph.File{
		Path:          path,
		Classes:       i.patterns.ClassDeclarations(path, src),
		Constructions: i.patterns.Constructions(path, src),
	}
}

// InspectProject extracts facts of every project source in project order
func (i *Inspector) InspectProject(project *graph.Project) []*graph.File {
	files := make([]*graph.File, 0, len(project.Sources))
	for _, source := range project.Sources {
		files = append(files, i.InspectSource(source.Path, source.Content))
	}
	return files
}
