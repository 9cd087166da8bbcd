package coder

import (
	"bytes"
	"context"
	"fmt"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/luamod/inspector/graph"
	"github.com/viant/luamod/inspector/lua"
	"strings"
)

// Coder rewrites Modules annotation fields of parent class declarations.
// Synthesize is pure, Apply is the only step touching storage.
type Coder struct {
	fs    afs.Service
	guard *lua.SyntaxGuard
}

// Change represents a pending file rewrite
type Change struct {
	Path         string
	URL          string
	Original     []byte
	Content      []byte
	OriginalHash uint64
	Parents      []string // Parent classes annotated in this file
}

// Plan holds changes and per parent failures of a synthesis
type Plan struct {
	Changes []*Change
	Errors  []error
}

// Outcome holds result of applying a plan
type Outcome struct {
	Updated []string
	Errors  []error
}

// New creates a coder
func New(fs afs.Service, options ...Option) *Coder {
	ret := &Coder{fs: fs}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Synthesize computes new file contents for every parent of annotations
func (c *Coder) Synthesize(ctx context.Context, annotations *graph.AnnotationMap, index *graph.ClassIndex, project *graph.Project) *Plan {
	plan := &Plan{}
	buffers := map[string][]string{}
	parents := map[string][]string{}
	var order []string
	for _, parent := range annotations.Parents() {
		record, ok := index.Lookup(parent)
		if !ok {
			continue
		}
		source := project.LookupSource(record.File)
		if source == nil {
			plan.Errors = append(plan.Errors, &MissingDeclarationError{Parent: parent, Path: record.File})
			continue
		}
		lines, ok := buffers[source.Path]
		if !ok {
			lines = source.Lines()
			order = append(order, source.Path)
		}
		updated, err := Annotate(lines, parent, annotations.Children(parent))
		if err != nil {
			plan.Errors = append(plan.Errors, &MissingDeclarationError{Parent: parent, Path: source.Path})
			buffers[source.Path] = lines
			continue
		}
		buffers[source.Path] = updated
		parents[source.Path] = append(parents[source.Path], parent)
	}
	for _, path := range order {
		source := project.LookupSource(path)
		content := []byte(strings.Join(buffers[path], "\n"))
		if bytes.Equal(content, source.Content) {
			continue
		}
		if c.guard != nil {
			if err := c.guard.Check(ctx, source.Content, content); err != nil {
				plan.Errors = append(plan.Errors, &SyntaxError{Path: path, Err: err})
				continue
			}
		}
		plan.Changes = append(plan.Changes, &Change{
			Path:         path,
			URL:          source.URL,
			Original:     source.Content,
			Content:      content,
			OriginalHash: source.Hash,
			Parents:      parents[path],
		})
	}
	return plan
}

// Annotate returns lines with the Modules field of parent set to children.
// An existing Modules field in the field block following the declaration is replaced in place,
// otherwise the field is inserted right after the declaration.
func Annotate(lines []string, parent string, children []graph.Child) ([]string, error) {
	declaration := lua.DeclarationLine(lines, parent)
	if declaration == -1 {
		return nil, fmt.Errorf("%w: %s", ErrMissingDeclaration, parent)
	}
	field := lua.ModulesFieldLine(children)
	if strings.HasSuffix(lines[declaration], "\r") {
		field += "\r"
	}
	result := make([]string, 0, len(lines)+1)
	for i := declaration + 1; i < len(lines); i++ {
		line := lines[i]
		if lua.IsModulesField(line) {
			result = append(result, lines...)
			result[i] = field
			return result, nil
		}
		if _, ok := lua.FieldName(line); ok {
			continue
		}
		if strings.TrimSpace(line) != "" {
			break
		}
	}
	result = append(result, lines[:declaration+1]...)
	result = append(result, field)
	result = append(result, lines[declaration+1:]...)
	return result, nil
}

// Apply writes plan changes, a file modified since it was loaded is left untouched
func (c *Coder) Apply(ctx context.Context, plan *Plan) *Outcome {
	outcome := &Outcome{}
	for _, change := range plan.Changes {
		if err := c.write(ctx, change); err != nil {
			outcome.Errors = append(outcome.Errors, err)
			continue
		}
		outcome.Updated = append(outcome.Updated, change.Path)
	}
	return outcome
}

func (c *Coder) write(ctx context.Context, change *Change) error {
	object, err := c.fs.Object(ctx, change.URL)
	if err != nil {
		return &WriteError{Path: change.Path, Err: err}
	}
	current, err := c.fs.DownloadWithURL(ctx, change.URL)
	if err != nil {
		return &WriteError{Path: change.Path, Err: err}
	}
	same, err := graph.Matches(current, change.OriginalHash)
	if err != nil {
		return &WriteError{Path: change.Path, Err: err}
	}
	if !same {
		return &StaleSourceError{Path: change.Path}
	}
	mode := object.Mode()
	if mode == 0 {
		mode = file.DefaultFileOsMode
	}
	if err = c.fs.Upload(ctx, change.URL, mode, bytes.NewReader(change.Content)); err != nil {
		return &WriteError{Path: change.Path, Err: err}
	}
	return nil
}

// Diff returns unified diff of a change
func Diff(change *Change) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(change.Original)),
		B:        difflib.SplitLines(string(change.Content)),
		FromFile: "a/" + change.Path,
		ToFile:   "b/" + change.Path,
		Context:  3,
	})
}
