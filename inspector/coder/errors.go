package coder

import (
	"errors"
	"fmt"
)

// ErrMissingDeclaration reports a parent class whose declaration line is not present in its file
var ErrMissingDeclaration = errors.New("class declaration not found")

// MissingDeclarationError identifies the parent whose declaration could not be located
type MissingDeclarationError struct {
	Parent string
	Path   string
}

func (e *MissingDeclarationError) Error() string {
	return fmt.Sprintf("no class definition found for %s in %s", e.Parent, e.Path)
}

func (e *MissingDeclarationError) Unwrap() error {
	return ErrMissingDeclaration
}

// WriteError reports a file that could not be rewritten
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to update %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// StaleSourceError reports a file modified after it was loaded
type StaleSourceError struct {
	Path string
}

func (e *StaleSourceError) Error() string {
	return fmt.Sprintf("%s changed since it was scanned", e.Path)
}

// SyntaxError reports a rewrite rejected by the syntax guard
type SyntaxError struct {
	Path string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("refusing to update %s: %v", e.Path, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
