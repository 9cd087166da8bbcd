package analyzer

import (
	"github.com/viant/luamod/inspector/lua"
)

// ResolveParent resolves a raw parent expression to a fully qualified class name.
// preceding holds the source lines before the construction call, in file order.
func ResolveParent(patterns *lua.Patterns, expr string, preceding []string) (string, bool) {
	if name, ok := patterns.RootReference(expr); ok {
		return name, true
	}
	if !lua.IsIdentifier(expr) {
		return "", false
	}
	return ResolveAlias(patterns, preceding, expr)
}

// ResolveAlias resolves variable through its nearest preceding assignment.
// Only one hop is followed: the assignment has to reference the root object directly.
func ResolveAlias(patterns *lua.Patterns, preceding []string, variable string) (string, bool) {
	for i := len(preceding) - 1; i >= 0; i-- {
		rhs, ok := lua.Assignment(preceding[i], variable)
		if !ok {
			continue
		}
		return patterns.RootReference(rhs)
	}
	return "", false
}
