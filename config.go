package twinject

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ResolveConfig returns the configuration to operate with. An explicit value
// wins verbatim; nil triggers discovery from the current directory.
func ResolveConfig(explicit *Config) (Config, error) {
	if explicit != nil {
		return *explicit, nil
	}
	return DiscoverConfig(".")
}

// DiscoverConfig loads configuration with precedence: env > file > defaults.
// The config file is searched upward from startDir; a missing file is not an
// error and leaves the defaults in place.
func DiscoverConfig(startDir string) (Config, error) {
	k := koanf.New(".")

	path, err := FindConfigFile(startDir)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// Environment variables (TWINJECT_* prefix)
	if err := k.Load(env.Provider("TWINJECT_", ".", func(s string) string {
		// TWINJECT_INJECT_PURGE -> inject.purge
		// TWINJECT_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TWINJECT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment variables: %w", err)
	}

	return ConfigFromKoanf(k), nil
}

// FindConfigFile walks from startDir up to the filesystem root and returns
// the first .twinject.yaml found. An empty path without error means no
// config file exists.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// ConfigFromKoanf overlays loaded koanf state onto the defaults. Shared by
// discovery and the CLI so both read the same schema.
func ConfigFromKoanf(k *koanf.Koanf) Config {
	cfg := DefaultConfig()

	if v := k.String("inject.input-file"); v != "" {
		cfg.InputFile = v
	}
	if v := k.String("inject.input-css"); v != "" {
		cfg.InputCSS = v
	}
	if k.Exists("inject.purge") {
		cfg.Purge = k.Bool("inject.purge")
	}
	if k.Exists("inject.minify") {
		cfg.Minify = k.Bool("inject.minify")
	}
	if exts := k.Strings("inject.extensions"); len(exts) > 0 {
		cfg.HTMLExtensions = exts
	}
	if k.Exists("verbose") {
		cfg.Verbose = k.Bool("verbose")
	}

	return cfg
}
