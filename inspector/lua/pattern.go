package lua

import (
	"errors"
	"fmt"
	"github.com/viant/luamod/inspector/graph"
	"regexp"
	"strings"
)

const (
	// DefaultBaseType is the class all addon modules are declared against
	DefaultBaseType = "LibRu.Module"
	// DefaultRootSentinel is the identifier bound to the addon root object
	DefaultRootSentinel = "Core"
	// ModulesField is the annotation field and namespace holding child modules
	ModulesField = "Modules"
)

var (
	identifierExpr   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	localExpr        = regexp.MustCompile(`^local\s+`)
	fieldExpr        = regexp.MustCompile(`^\s*---\s*@field\s+([^\s{]+)`)
	constructionExpr = regexp.MustCompile(`local\s+Module\s*=\s*[^\n]*?\.Module\.New\s*\(\s*"([^"]+)"\s*,\s*([^,)]+?)\s*,`)
)

// Patterns holds textual patterns bound to a single addon
type Patterns struct {
	Addon        string
	BaseType     string
	RootSentinel string
	class        *regexp.Regexp
	rootModules  *regexp.Regexp
}

// NewPatterns compiles patterns for the addon, empty baseType and sentinel fall back to defaults
func NewPatterns(addon, baseType, sentinel string) (*Patterns, error) {
	if addon == "" {
		return nil, errors.New("addon name was empty")
	}
	if baseType == "" {
		baseType = DefaultBaseType
	}
	if sentinel == "" {
		sentinel = DefaultRootSentinel
	}
	if !identifierExpr.MatchString(sentinel) {
		return nil, fmt.Errorf("invalid root sentinel: %q", sentinel)
	}
	class, err := regexp.Compile(`---\s*@class\s+(` + regexp.QuoteMeta(addon) + `(?:\.` + ModulesField + `(?:\.[^:\s]+)?)?)\s*:\s*` + regexp.QuoteMeta(baseType) + `(?:[\s,]|$)`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile class pattern: %w", err)
	}
	rootModules := regexp.MustCompile(`^` + regexp.QuoteMeta(sentinel) + `\.` + ModulesField + `\.([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)$`)
	return &Patterns{
		Addon:        addon,
		BaseType:     baseType,
		RootSentinel: sentinel,
		class:        class,
		rootModules:  rootModules,
	}, nil
}

// ClassDeclaration returns the declared class name if line is a class declaration of the addon
func (p *Patterns) ClassDeclaration(line string) (string, bool) {
	match := p.class.FindStringSubmatch(line)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}

// ClassDeclarations returns class declarations of src in order of appearance
func (p *Patterns) ClassDeclarations(path string, src []byte) []*graph.ClassRecord {
	var result []*graph.ClassRecord
	for i, line := range strings.Split(string(src), "\n") {
		if name, ok := p.ClassDeclaration(line); ok {
			result = append(result, &graph.ClassRecord{Name: name, File: path, Line: i})
		}
	}
	return result
}

// Constructions returns module construction calls of src, call arguments may span lines
func (p *Patterns) Constructions(path string, src []byte) []*graph.Construction {
	var result []*graph.Construction
	for _, loc := range constructionExpr.FindAllSubmatchIndex(src, -1) {
		result = append(result, &graph.Construction{
			File:       path,
			Line:       strings.Count(string(src[:loc[0]]), "\n"),
			Name:       string(src[loc[2]:loc[3]]),
			ParentExpr: strings.TrimSpace(string(src[loc[4]:loc[5]])),
		})
	}
	return result
}

// RootReference resolves expressions denoting the root object or a path in its Modules namespace
func (p *Patterns) RootReference(expr string) (string, bool) {
	expr = strings.TrimSpace(expr)
	if expr == p.RootSentinel {
		return p.Addon, true
	}
	if match := p.rootModules.FindStringSubmatch(expr); len(match) == 2 {
		return p.Addon + "." + ModulesField + "." + match[1], true
	}
	return "", false
}

// Assignment returns the right hand side if line assigns variable, with or without local
func Assignment(line, variable string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = localExpr.ReplaceAllString(trimmed, "")
	if !strings.HasPrefix(trimmed, variable) {
		return "", false
	}
	rest := strings.TrimLeft(trimmed[len(variable):], " \t")
	if !strings.HasPrefix(rest, "=") || strings.HasPrefix(rest, "==") {
		return "", false
	}
	rhs := rest[1:]
	if idx := strings.Index(rhs, "--"); idx != -1 {
		rhs = rhs[:idx]
	}
	rhs = strings.TrimSpace(rhs)
	rhs = strings.TrimSpace(strings.TrimSuffix(rhs, ";"))
	return rhs, true
}

// IsIdentifier reports whether expr is a plain variable name
func IsIdentifier(expr string) bool {
	return identifierExpr.MatchString(expr)
}

// FieldName returns the field name if line is an annotation field line
func FieldName(line string) (string, bool) {
	match := fieldExpr.FindStringSubmatch(line)
	if len(match) < 2 {
		return "", false
	}
	return match[1], true
}

// IsModulesField reports whether line declares the Modules field
func IsModulesField(line string) bool {
	name, ok := FieldName(line)
	return ok && name == ModulesField
}

// DeclarationLine returns index of the declaration line of class, or -1
func DeclarationLine(lines []string, class string) int {
	expr := regexp.MustCompile(`---\s*@class\s+` + regexp.QuoteMeta(class) + `\s*:`)
	for i, line := range lines {
		if expr.MatchString(line) {
			return i
		}
	}
	return -1
}

// ModulesFieldLine formats the Modules field line for children
func ModulesFieldLine(children []graph.Child) string {
	builder := strings.Builder{}
	builder.WriteString("---@field ")
	builder.WriteString(ModulesField)
	builder.WriteString(" {")
	for i, child := range children {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(child.Name)
		builder.WriteString(": ")
		builder.WriteString(child.Class)
	}
	builder.WriteString("}")
	return builder.String()
}
