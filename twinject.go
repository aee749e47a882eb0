// Package twinject injects generated utility CSS into HTML documents at
// build time.
//
// twinject scans HTML markup for utility class names, synthesizes the
// matching CSS with the gotailwindcss engine, and splices a <style> element
// immediately before the closing </head> tag.
//
// # As an esbuild plugin
//
// Register the plugin and every .html file loaded by the build is rewritten
// on the fly:
//
//	result := api.Build(api.BuildOptions{
//		EntryPoints: []string{"site/index.html"},
//		Outdir:      "dist",
//		Plugins:     []api.Plugin{twinject.Plugin(nil)},
//		Write:       true,
//	})
//
// Passing nil makes the plugin discover a .twinject.yaml in the project
// tree; pass a *Config to skip discovery.
//
// # As a library
//
//	cfg := twinject.DefaultConfig()
//	tr, err := twinject.NewTransformer(&cfg)
//	out, err := tr.Transform("index.html", content)
//
// Transform is not idempotent over its own output: running it on an
// already-transformed document injects a second style element. Always feed
// it pre-injection source.
//
// # CLI Tool
//
// twinject also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/twinject/cmd/twinject@latest
package twinject

// Public API:
// - ResolveConfig(explicit *Config) (Config, error)
// - NewGenerator(cfg Config) (Generator, error)
// - NewTransformer(explicit *Config) (*Transformer, error)
// - Plugin(explicit *Config) api.Plugin
// - CollectFiles(patterns []string) ([]string, ScanStats, error)
