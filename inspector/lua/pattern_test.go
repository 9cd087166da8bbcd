package lua_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/viant/luamod/inspector/graph"
	"github.com/viant/luamod/inspector/lua"
	"testing"
)

func newPatterns(t *testing.T) *lua.Patterns {
	patterns, err := lua.NewPatterns("Addon", "", "")
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	return patterns
}

func TestNewPatterns(t *testing.T) {
	_, err := lua.NewPatterns("", "", "")
	assert.NotNil(t, err)
	_, err = lua.NewPatterns("Addon", "", "Core.X")
	assert.NotNil(t, err)
	patterns, err := lua.NewPatterns("Addon", "", "")
	assert.Nil(t, err)
	assert.Equal(t, lua.DefaultBaseType, patterns.BaseType)
	assert.Equal(t, lua.DefaultRootSentinel, patterns.RootSentinel)
}

func TestPatterns_ClassDeclaration(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOk bool
	}{
		{name: "root class", line: "--- @class Addon : LibRu.Module", want: "Addon", wantOk: true},
		{name: "module class", line: "---@class Addon.Modules.Foo : LibRu.Module", want: "Addon.Modules.Foo", wantOk: true},
		{name: "nested module class", line: "--- @class Addon.Modules.Foo.Bar : LibRu.Module\r", want: "Addon.Modules.Foo.Bar", wantOk: true},
		{name: "multiple parents", line: "--- @class Addon : LibRu.Module, AceEvent", want: "Addon", wantOk: true},
		{name: "multiple parents without space", line: "---@class Addon.Modules.Foo : LibRu.Module,Mixin", want: "Addon.Modules.Foo", wantOk: true},
		{name: "other base type", line: "--- @class Addon.Modules.Foo : LibRu.Other", wantOk: false},
		{name: "longer base type", line: "--- @class Addon.Modules.Foo : LibRu.ModuleBase", wantOk: false},
		{name: "other addon", line: "--- @class MyAddon : LibRu.Module", wantOk: false},
		{name: "addon prefix", line: "--- @class AddonX : LibRu.Module", wantOk: false},
		{name: "not in modules namespace", line: "--- @class Addon.Util : LibRu.Module", wantOk: false},
		{name: "plain comment", line: "-- @class Addon : LibRu.Module", wantOk: false},
	}
	patterns := newPatterns(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := patterns.ClassDeclaration(tt.line)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatterns_Constructions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []*graph.Construction
	}{
		{
			name: "single line",
			src: `local Core = select(2, ...)
local Module = LibRu.Module.New("Foo", Core, {})`,
			want: []*graph.Construction{{File: "f.lua", Line: 1, Name: "Foo", ParentExpr: "Core"}},
		},
		{
			name: "wrapped arguments",
			src: `local Module = LibRu.Module.New(
    "Bar",
    Core.Modules.Foo,
    {}
)`,
			want: []*graph.Construction{{File: "f.lua", Line: 0, Name: "Bar", ParentExpr: "Core.Modules.Foo"}},
		},
		{
			name: "two constructions",
			src: `local Module = LibRu.Module.New("A", Core, {})
-- spacer
local Module = LibRu.Module.New("B", Parent, {})`,
			want: []*graph.Construction{
				{File: "f.lua", Line: 0, Name: "A", ParentExpr: "Core"},
				{File: "f.lua", Line: 2, Name: "B", ParentExpr: "Parent"},
			},
		},
		{
			name: "missing trailing argument",
			src:  `local Module = LibRu.Module.New("A", Core)`,
		},
		{
			name: "not a module local",
			src:  `local Other = LibRu.Module.New("A", Core, {})`,
		},
	}
	patterns := newPatterns(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualValues(t, tt.want, patterns.Constructions("f.lua", []byte(tt.src)))
		})
	}
}

func TestPatterns_RootReference(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		want   string
		wantOk bool
	}{
		{name: "sentinel", expr: "Core", want: "Addon", wantOk: true},
		{name: "modules path", expr: "Core.Modules.Bar", want: "Addon.Modules.Bar", wantOk: true},
		{name: "nested modules path", expr: " Core.Modules.Bar.Baz ", want: "Addon.Modules.Bar.Baz", wantOk: true},
		{name: "call on path", expr: "Core.Modules.Bar()", wantOk: false},
		{name: "other namespace", expr: "Core.Utils", wantOk: false},
		{name: "variable", expr: "Parent", wantOk: false},
	}
	patterns := newPatterns(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := patterns.RootReference(tt.expr)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignment(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		variable string
		want     string
		wantOk   bool
	}{
		{name: "local", line: "local Parent = Core.Modules.Bar", variable: "Parent", want: "Core.Modules.Bar", wantOk: true},
		{name: "plain", line: "  Parent=Core", variable: "Parent", want: "Core", wantOk: true},
		{name: "trailing comment", line: "local Parent = Core.Modules.Bar -- parent", variable: "Parent", want: "Core.Modules.Bar", wantOk: true},
		{name: "local with tab", line: "local\tParent = Core", variable: "Parent", want: "Core", wantOk: true},
		{name: "local with spaces", line: "local   Parent = Core.Modules.Bar", variable: "Parent", want: "Core.Modules.Bar", wantOk: true},
		{name: "semicolon", line: "local Parent = Core;", variable: "Parent", want: "Core", wantOk: true},
		{name: "comparison", line: "Parent == Core", variable: "Parent", wantOk: false},
		{name: "longer name", line: "local ParentX = Core", variable: "Parent", wantOk: false},
		{name: "field assignment", line: "self.Parent = Core", variable: "Parent", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lua.Assignment(tt.line, tt.variable)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldLines(t *testing.T) {
	name, ok := lua.FieldName("---@field Enabled boolean")
	assert.True(t, ok)
	assert.Equal(t, "Enabled", name)
	assert.True(t, lua.IsModulesField("---@field Modules {Foo: Addon.Modules.Foo}"))
	assert.True(t, lua.IsModulesField("--- @field Modules{}"))
	assert.False(t, lua.IsModulesField("---@field ModulesCount number"))
	assert.False(t, lua.IsModulesField("local Modules = {}"))
}

func TestDeclarationLine(t *testing.T) {
	lines := []string{
		"--- @class Addon.Modules.FooBar : LibRu.Module",
		"--- @class Addon.Modules.Foo : LibRu.Module",
	}
	assert.Equal(t, 1, lua.DeclarationLine(lines, "Addon.Modules.Foo"))
	assert.Equal(t, 0, lua.DeclarationLine(lines, "Addon.Modules.FooBar"))
	assert.Equal(t, -1, lua.DeclarationLine(lines, "Addon"))
}

func TestModulesFieldLine(t *testing.T) {
	assert.Equal(t, "---@field Modules {}", lua.ModulesFieldLine(nil))
	assert.Equal(t, "---@field Modules {Foo: Addon.Modules.Foo, Bar: Addon.Modules.Bar}", lua.ModulesFieldLine([]graph.Child{
		{Name: "Foo", Class: "Addon.Modules.Foo"},
		{Name: "Bar", Class: "Addon.Modules.Bar"},
	}))
}

func TestInspector_InspectSource(t *testing.T) {
	src := `--- @class Addon.Modules.Foo : LibRu.Module
local Core = select(2, ...)
local Module = LibRu.Module.New("Foo", Core, {})
`
	file := lua.NewInspector(newPatterns(t)).InspectSource("Modules/Foo.lua", []byte(src))
	assert.Equal(t, "Modules/Foo.lua", file.Path)
	assert.EqualValues(t, []*graph.ClassRecord{{Name: "Addon.Modules.Foo", File: "Modules/Foo.lua", Line: 0}}, file.Classes)
	assert.EqualValues(t, []*graph.Construction{{File: "Modules/Foo.lua", Line: 2, Name: "Foo", ParentExpr: "Core"}}, file.Constructions)
}
