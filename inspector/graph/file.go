package graph

import "strings"

// Source represents a loaded addon source file
type Source struct {
	Path    string // Path relative to the addon root, slash separated
	URL     string // Location used for reading and writing
	Content []byte // Content at load time
	Hash    uint64 // Digest of Content
	Core    bool   // Designated core file, declares classes but contributes no constructions
}

// Lines splits content into lines, line terminators other than '\n' are kept
func (s *Source) Lines() []string {
	return strings.Split(string(s.Content), "\n")
}

// NewSource creates a source and computes its digest
func NewSource(path, URL string, content []byte) (*Source, error) {
	digest, err := Hash(content)
	if err != nil {
		return nil, err
	}
	return &Source{Path: path, URL: URL, Content: content, Hash: digest}, nil
}

// File represents facts extracted from a single source file
type File struct {
	Path          string          // Path relative to the addon root
	Classes       []*ClassRecord  // Class declarations in order of appearance
	Constructions []*Construction // Module construction calls in order of appearance
}

// ClassRecord represents a class declared against the module base type
type ClassRecord struct {
	Name string // Fully qualified class name
	File string // Defining file path
	Line int    // Zero based line of the declaration
}

// Construction represents a module construction call
type Construction struct {
	File       string // Declaring file path
	Line       int    // Zero based line where the call starts
	Name       string // Module name literal
	ParentExpr string // Raw parent expression
}

// Edge represents a resolved parent child relation
type Edge struct {
	Parent     string // Parent fully qualified class name
	Child      string // Child module name
	ChildClass string // Child fully qualified class name
}
