package info

import (
	"context"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/luamod/inspector/lua"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModulesDir = "Modules"
	DefaultCoreFile   = "Core.lua"
	// DefaultConfigFile is looked up in the addon root when no config location is given
	DefaultConfigFile = ".luamod.yaml"
)

type Config struct {
	AddonName       string   `yaml:"addonName,omitempty"`       // Top level class name, detected from the .toc manifest when empty
	ModulesDir      string   `yaml:"modulesDir,omitempty"`      // Directory scanned recursively for modules
	CoreFile        string   `yaml:"coreFile,omitempty"`        // File declaring the root class
	BaseType        string   `yaml:"baseType,omitempty"`        // Module base type of class declarations
	RootSentinel    string   `yaml:"rootSentinel,omitempty"`    // Identifier bound to the root object
	Exclude         []string `yaml:"exclude,omitempty"`         // Glob patterns of root relative paths to skip
	SkipSyntaxCheck bool     `yaml:"skipSyntaxCheck,omitempty"` //
	DryRun          bool     `yaml:"dryRun,omitempty"`          // Report diffs instead of writing
}

func DefaultConfig() *Config {
	return &Config{
		ModulesDir:   DefaultModulesDir,
		CoreFile:     DefaultCoreFile,
		BaseType:     lua.DefaultBaseType,
		RootSentinel: lua.DefaultRootSentinel,
	}
}

// Init fills empty settings with defaults
func (c *Config) Init() {
	if c.ModulesDir == "" {
		c.ModulesDir = DefaultModulesDir
	}
	if c.CoreFile == "" {
		c.CoreFile = DefaultCoreFile
	}
	if c.BaseType == "" {
		c.BaseType = lua.DefaultBaseType
	}
	if c.RootSentinel == "" {
		c.RootSentinel = lua.DefaultRootSentinel
	}
}

// LoadConfig loads YAML config, settings missing from the file keep their defaults
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	config.Init()
	return config, nil
}
