package lua

import (
	"context"
	"errors"
	"fmt"
	sitter "github.com/smacker/go-tree-sitter"
	tslua "github.com/smacker/go-tree-sitter/lua"
)

// ErrSyntax reports that a rewrite broke a previously valid source
var ErrSyntax = errors.New("rewrite introduced a syntax error")

// SyntaxGuard verifies that rewritten sources still parse
type SyntaxGuard struct {
	parser *sitter.Parser
}

// NewSyntaxGuard creates a guard backed by the tree-sitter Lua grammar
func NewSyntaxGuard() *SyntaxGuard {
	parser := sitter.NewParser()
	parser.SetLanguage(tslua.GetLanguage())
	return &SyntaxGuard{parser: parser}
}

// Valid reports whether src parses without error nodes
func (g *SyntaxGuard) Valid(ctx context.Context, src []byte) (bool, error) {
	tree, err := g.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return false, fmt.Errorf("failed to parse source: %w", err)
	}
	return !tree.RootNode().HasError(), nil
}

// Check fails when before parsed cleanly and after does not, sources that were already broken pass
func (g *SyntaxGuard) Check(ctx context.Context, before, after []byte) error {
	valid, err := g.Valid(ctx, before)
	if err != nil || !valid {
		return err
	}
	if valid, err = g.Valid(ctx, after); err != nil {
		return err
	}
	if !valid {
		return ErrSyntax
	}
	return nil
}
