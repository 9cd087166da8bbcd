package coder

import (
	"github.com/viant/luamod/inspector/lua"
)

type Option func(*Coder)

// WithSyntaxGuard rejects rewrites that break a previously valid source
func WithSyntaxGuard(guard *lua.SyntaxGuard) Option {
	return func(c *Coder) {
		c.guard = guard
	}
}
