package repository

import (
	"context"
	"fmt"
	"github.com/gobwas/glob"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/luamod/inspector/graph"
	"io"
	"os"
	"path"
	"sort"
	"strings"
)

const sourceExt = ".lua"

// Loader reads addon sources: the core file and every Lua file under the modules folder
type Loader struct {
	fs         afs.Service
	exclusions []glob.Glob
}

// NewLoader creates a loader, exclude holds glob patterns matched against root relative paths
func NewLoader(fs afs.Service, exclude ...string) (*Loader, error) {
	ret := &Loader{fs: fs}
	for _, pattern := range exclude {
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclusion %q: %w", pattern, err)
		}
		ret.exclusions = append(ret.exclusions, compiled)
	}
	return ret, nil
}

// Load returns project sources, core file first then module files in path order
func (l *Loader) Load(ctx context.Context, rootURL, coreFile, modulesDir string) (*graph.Project, error) {
	if ok, _ := l.fs.Exists(ctx, rootURL); !ok {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, rootURL)
	}
	project := &graph.Project{RootURL: rootURL}
	if coreFile != "" {
		coreURL := url.Join(rootURL, coreFile)
		if ok, _ := l.fs.Exists(ctx, coreURL); ok {
			source, err := l.load(ctx, coreFile, coreURL)
			if err != nil {
				return nil, err
			}
			source.Core = true
			project.AddSource(source)
		}
	}
	paths, err := l.modulePaths(ctx, rootURL, modulesDir)
	if err != nil {
		return nil, err
	}
	for _, relative := range paths {
		if project.LookupSource(relative) != nil {
			continue
		}
		source, err := l.load(ctx, relative, url.Join(rootURL, relative))
		if err != nil {
			return nil, err
		}
		project.AddSource(source)
	}
	return project, nil
}

func (l *Loader) modulePaths(ctx context.Context, rootURL, modulesDir string) ([]string, error) {
	modulesURL := url.Join(rootURL, modulesDir)
	if ok, _ := l.fs.Exists(ctx, modulesURL); !ok {
		return nil, nil
	}
	var paths []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		relative := path.Join(modulesDir, parent, info.Name())
		if l.excluded(relative) {
			return !info.IsDir(), nil
		}
		if info.IsDir() {
			return true, nil
		}
		if strings.EqualFold(path.Ext(info.Name()), sourceExt) {
			paths = append(paths, relative)
		}
		return true, nil
	}
	if err := l.fs.Walk(ctx, modulesURL, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", modulesURL, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (l *Loader) excluded(relative string) bool {
	for _, exclusion := range l.exclusions {
		if exclusion.Match(relative) {
			return true
		}
	}
	return false
}

func (l *Loader) load(ctx context.Context, relative, URL string) (*graph.Source, error) {
	content, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", relative, err)
	}
	return graph.NewSource(relative, URL, content)
}
