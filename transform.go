package twinject

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yacobolo/twinject/internal/headtag"
)

// Transformer rewrites HTML documents with generated utility CSS.
type Transformer struct {
	cfg Config
	gen Generator
}

// NewTransformer resolves the configuration (nil means discovery) and builds
// the generator behind the transformer.
func NewTransformer(explicit *Config) (*Transformer, error) {
	cfg, err := ResolveConfig(explicit)
	if err != nil {
		return nil, err
	}

	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}

	return &Transformer{cfg: cfg, gen: gen}, nil
}

// Config returns the resolved configuration.
func (t *Transformer) Config() Config {
	return t.cfg
}

// Matches reports whether path has one of the configured HTML extensions.
func (t *Transformer) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range t.cfg.HTMLExtensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// Transform generates CSS for content and splices a single <style> element
// immediately before the first closing head tag. The style element is
// injected even when no utility classes matched (it is then empty). Content
// without a closing head tag comes back unchanged.
//
// Transform is not idempotent over its own output: re-running it on an
// already-transformed document adds a second style element.
func (t *Transformer) Transform(name string, content []byte) ([]byte, error) {
	css, err := t.gen.Generate(name, content)
	if err != nil {
		return nil, fmt.Errorf("generate for %s: %w", name, err)
	}

	fragment := make([]byte, 0, len(css)+len("<style></style>"))
	fragment = append(fragment, "<style>"...)
	fragment = append(fragment, css...)
	fragment = append(fragment, "</style>"...)

	return headtag.Inject(content, fragment), nil
}
