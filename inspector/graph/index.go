package graph

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ClassIndex maps fully qualified class names to their defining files.
// Names keep the position of their first declaration, a later declaration only replaces the record.
type ClassIndex struct {
	classes *orderedmap.OrderedMap[string, *ClassRecord]
}

// NewClassIndex creates an empty index
func NewClassIndex() *ClassIndex {
	return &ClassIndex{classes: orderedmap.New[string, *ClassRecord]()}
}

// Add records a class declaration
func (i *ClassIndex) Add(record *ClassRecord) {
	i.classes.Set(record.Name, record)
}

// Lookup returns the record of a class name
func (i *ClassIndex) Lookup(name string) (*ClassRecord, bool) {
	return i.classes.Get(name)
}

// Has reports whether the class is known
func (i *ClassIndex) Has(name string) bool {
	_, ok := i.classes.Get(name)
	return ok
}

// FirstInFile returns the first indexed class whose defining file is path
func (i *ClassIndex) FirstInFile(path string) *ClassRecord {
	for pair := i.classes.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.File == path {
			return pair.Value
		}
	}
	return nil
}

// Len returns number of indexed classes
func (i *ClassIndex) Len() int {
	return i.classes.Len()
}

// Records returns class records in index order
func (i *ClassIndex) Records() []*ClassRecord {
	result := make([]*ClassRecord, 0, i.classes.Len())
	for pair := i.classes.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Value)
	}
	return result
}
