package graph

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Child represents a child module entry of a parent annotation
type Child struct {
	Name  string
	Class string
}

// AnnotationMap groups child modules by parent class in discovery order
type AnnotationMap struct {
	parents *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, string]]
}

// NewAnnotationMap creates an empty map
func NewAnnotationMap() *AnnotationMap {
	return &AnnotationMap{parents: orderedmap.New[string, *orderedmap.OrderedMap[string, string]]()}
}

// Add folds an edge into the map, a repeated child name updates its class in place
func (m *AnnotationMap) Add(edge *Edge) {
	children, ok := m.parents.Get(edge.Parent)
	if !ok {
		children = orderedmap.New[string, string]()
		m.parents.Set(edge.Parent, children)
	}
	children.Set(edge.Child, edge.ChildClass)
}

// Len returns number of parents
func (m *AnnotationMap) Len() int {
	return m.parents.Len()
}

// Parents returns parent class names in discovery order
func (m *AnnotationMap) Parents() []string {
	result := make([]string, 0, m.parents.Len())
	for pair := m.parents.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Key)
	}
	return result
}

// Children returns child entries of parent in discovery order
func (m *AnnotationMap) Children(parent string) []Child {
	children, ok := m.parents.Get(parent)
	if !ok {
		return nil
	}
	result := make([]Child, 0, children.Len())
	for pair := children.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, Child{Name: pair.Key, Class: pair.Value})
	}
	return result
}
