package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/luamod"
	"github.com/viant/luamod/inspector/info"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	root          = flag.String("root", ".", "Addon root folder")
	configPath    = flag.String("config", "", "Path to config file, defaults to <root>/"+info.DefaultConfigFile+" when present")
	addonName     = flag.String("addon_name", "", "The name of the addon, detected from the .toc manifest when empty")
	modulesDir    = flag.String("modules_dir", "", "Directory to scan for modules (default: Modules)")
	coreFile      = flag.String("core_file", "", "File declaring the addon root class (default: Core.lua)")
	exclude       = flag.String("exclude", "", "Comma separated glob patterns of root relative paths to skip")
	dryRun        = flag.Bool("dry_run", false, "Print diffs instead of writing files")
	noSyntaxCheck = flag.Bool("no_syntax_check", false, "Skip Lua syntax check of rewritten files")
	verbose       = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	rootPath, err := filepath.Abs(*root)
	if err != nil {
		slog.Error("invalid root", "error", err)
		os.Exit(1)
	}
	ctx := context.Background()
	fs := afs.New()
	config, err := loadConfig(ctx, fs, rootPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	applyFlags(config)

	service := luamod.New(luamod.WithFS(fs), luamod.WithConfig(config), luamod.WithLogger(logger))
	report, err := service.Generate(ctx, rootPath)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
	for _, diff := range report.Diffs {
		fmt.Print(diff.Text)
	}
}

func loadConfig(ctx context.Context, fs afs.Service, rootPath string) (*info.Config, error) {
	location := *configPath
	if location == "" {
		location = url.Join(rootPath, info.DefaultConfigFile)
		if ok, _ := fs.Exists(ctx, location); !ok {
			return info.DefaultConfig(), nil
		}
	}
	return info.LoadConfig(ctx, fs, location)
}

func applyFlags(config *info.Config) {
	if *addonName != "" {
		config.AddonName = *addonName
	}
	if *modulesDir != "" {
		config.ModulesDir = *modulesDir
	}
	if *coreFile != "" {
		config.CoreFile = *coreFile
	}
	if *exclude != "" {
		for _, pattern := range strings.Split(*exclude, ",") {
			if pattern = strings.TrimSpace(pattern); pattern != "" {
				config.Exclude = append(config.Exclude, pattern)
			}
		}
	}
	if *dryRun {
		config.DryRun = true
	}
	if *noSyntaxCheck {
		config.SkipSyntaxCheck = true
	}
}
