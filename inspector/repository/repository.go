package repository

import "errors"

// ErrRootNotFound reports an addon root that does not exist or cannot be read
var ErrRootNotFound = errors.New("addon root not found")

// Addon represents information about a detected addon
type Addon struct {
	RootURL  string // Addon root location
	Name     string // Addon name derived from its manifest
	Manifest string // Manifest (.toc) file name
	HasCore  bool   // Whether the core file exists
}
