package twinject

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/gotailwindcss/tailwind"
	"github.com/gotailwindcss/tailwind/twembed"
	"github.com/gotailwindcss/tailwind/twpurge"
)

// Generator produces CSS for a piece of markup. All rule expansion, layering
// and purging happens inside the engine; callers only see markup in, CSS out.
type Generator interface {
	Generate(name string, markup []byte) (string, error)
}

// tailwindGenerator backs Generator with the gotailwindcss engine and its
// embedded distribution. Safe for concurrent use: every Generate call builds
// its own converter and purge scanner.
type tailwindGenerator struct {
	dist     tailwind.Dist
	inputCSS string
	purge    bool
	minify   bool
	verbose  bool
}

// NewGenerator turns a configuration value into a stateful generator.
func NewGenerator(cfg Config) (Generator, error) {
	input := cfg.InputCSS
	if cfg.InputFile != "" {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(cfg.InputFile)
		if err != nil {
			return nil, fmt.Errorf("read input css: %w", err)
		}
		input = string(content)
	}
	if input == "" {
		input = DefaultInputCSS
	}

	return &tailwindGenerator{
		dist:     twembed.New(),
		inputCSS: input,
		purge:    cfg.Purge,
		minify:   cfg.Minify,
		verbose:  cfg.Verbose,
	}, nil
}

// Generate runs the engine over the configured input CSS, purged down to the
// utility classes observed in markup.
func (g *tailwindGenerator) Generate(name string, markup []byte) (string, error) {
	var buf bytes.Buffer
	conv := tailwind.New(&buf, g.dist)
	conv.AddReader(name, strings.NewReader(g.inputCSS), false)

	if g.purge {
		scanner, err := twpurge.NewScannerFromDist(twembed.New())
		if err != nil {
			return "", fmt.Errorf("purge scanner: %w", err)
		}
		if err := scanner.Scan(bytes.NewReader(markup)); err != nil {
			return "", fmt.Errorf("scan markup: %w", err)
		}
		conv.SetPurgeChecker(scanner.Map())
	}

	if err := conv.Run(); err != nil {
		return "", fmt.Errorf("generate css: %w", err)
	}

	css := buf.String()
	if g.minify {
		minified, err := minifyCSS(css)
		if err != nil {
			return "", err
		}
		css = minified
	}

	if g.verbose {
		fmt.Printf("Generated %d bytes of CSS for %s\n", len(css), name)
	}

	return css, nil
}

// minifyCSS runs the generated stylesheet through esbuild's CSS transform.
func minifyCSS(css string) (string, error) {
	result := api.Transform(css, api.TransformOptions{
		Loader:           api.LoaderCSS,
		MinifyWhitespace: true,
		MinifySyntax:     true,
	})
	if len(result.Errors) > 0 {
		return "", fmt.Errorf("minify css: %s", result.Errors[0].Text)
	}
	return string(result.Code), nil
}
