package repository

import (
	"context"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

const manifestExt = ".toc"

// Detector identifies addon name and layout from the addon root folder
type Detector struct {
	fs      afs.Service
	flavors []string // Client flavor suffixes of manifest files, e.g. Addon_Mainline.toc
}

// New creates a new addon detector instance
func New(fs afs.Service) *Detector {
	return &Detector{
		fs: fs,
		flavors: []string{
			"_Mainline",
			"_Classic",
			"_Vanilla",
			"_TBC",
			"_Wrath",
			"_Cata",
			"_Mists",
			"-Classic",
			"-BCC",
			"-WOTLKC",
		},
	}
}

// Detect inspects the addon root and returns addon info, Name stays empty when no manifest is found
func (d *Detector) Detect(ctx context.Context, rootURL, coreFile string) (*Addon, error) {
	if ok, _ := d.fs.Exists(ctx, rootURL); !ok {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, rootURL)
	}
	objects, err := d.fs.List(ctx, rootURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRootNotFound, err)
	}
	addon := &Addon{RootURL: rootURL}
	var manifests []string
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		if strings.EqualFold(path.Ext(object.Name()), manifestExt) {
			manifests = append(manifests, object.Name())
		}
	}
	sort.Strings(manifests)
	addon.Manifest, addon.Name = d.selectManifest(rootURL, manifests)
	if coreFile != "" {
		addon.HasCore, _ = d.fs.Exists(ctx, url.Join(rootURL, coreFile))
	}
	return addon, nil
}

// selectManifest prefers a manifest named after the root folder, as the game client requires
func (d *Detector) selectManifest(rootURL string, manifests []string) (string, string) {
	if len(manifests) == 0 {
		return "", ""
	}
	folder := path.Base(strings.TrimRight(filepath.ToSlash(rootURL), "/"))
	for _, manifest := range manifests {
		if name := d.addonName(manifest); name == folder {
			return manifest, name
		}
	}
	return manifests[0], d.addonName(manifests[0])
}

// addonName strips extension and client flavor suffix from a manifest name
func (d *Detector) addonName(manifest string) string {
	name := strings.TrimSuffix(manifest, path.Ext(manifest))
	for _, flavor := range d.flavors {
		if strings.HasSuffix(name, flavor) {
			return strings.TrimSuffix(name, flavor)
		}
	}
	return name
}
