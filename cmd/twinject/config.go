package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/twinject"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = twinject.ConfigFileName
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TWINJECT_* prefix)
	if err := k.Load(env.Provider("TWINJECT_", ".", func(s string) string {
		// TWINJECT_INJECT_PURGE -> inject.purge
		// TWINJECT_BUILD_WRITE -> build.write
		// TWINJECT_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TWINJECT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildInjectConfig constructs the library's Config struct from koanf state.
func buildInjectConfig() twinject.Config {
	config := twinject.Config{
		InputFile: getStringWithFallback("input-file", "inject.input-file", ""),
		InputCSS:  getStringWithFallback("input-css", "inject.input-css", twinject.DefaultInputCSS),
		Purge:     getBoolWithFallback("purge", "inject.purge", true),
		Minify:    getBoolWithFallback("minify", "inject.minify", false),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}

	// Handle extensions: check flag key first, then config key
	if exts := k.Strings("extensions"); len(exts) > 0 {
		config.HTMLExtensions = exts
	} else if exts := k.Strings("inject.extensions"); len(exts) > 0 {
		config.HTMLExtensions = exts
	} else {
		config.HTMLExtensions = []string{".html", ".htm"}
	}

	return config
}

// resolvePatterns selects the glob patterns to build: positional arguments
// win, then the config file, then the default.
func resolvePatterns(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if patterns := k.Strings("build.patterns"); len(patterns) > 0 {
		return patterns
	}
	return []string{"**/*.html"}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
