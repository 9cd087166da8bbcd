package analyzer

import (
	"github.com/viant/luamod/inspector/graph"
)

// IndexClasses records class declarations of files in order, a redeclared name takes the later file
func IndexClasses(files []*graph.File) *graph.ClassIndex {
	index := graph.NewClassIndex()
	for _, file := range files {
		for _, class := range file.Classes {
			index.Add(class)
		}
	}
	return index
}
