package twinject

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContainsObservedUtility(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	css, err := gen.Generate("index.html", []byte(`<div class="text-center"></div>`))
	require.NoError(t, err)
	assert.Contains(t, css, ".text-center")
	assert.NotContains(t, css, "@tailwind")
}

func TestGeneratePurgesUnusedUtilities(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	css, err := gen.Generate("index.html", []byte(`<div class="text-center"></div>`))
	require.NoError(t, err)
	assert.Contains(t, css, ".text-center")
	assert.NotContains(t, css, ".text-right")
}

func TestGenerateWithoutPurgeKeepsEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Purge = false
	gen, err := NewGenerator(cfg)
	require.NoError(t, err)

	css, err := gen.Generate("index.html", []byte(`<div class="text-center"></div>`))
	require.NoError(t, err)
	assert.Contains(t, css, ".text-center")
	assert.Contains(t, css, ".text-right")
}

func TestGenerateEmptyMarkup(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	// No utility classes observed: utilities are purged away, but
	// generation itself succeeds.
	css, err := gen.Generate("empty.html", []byte(`<html><head></head><body></body></html>`))
	require.NoError(t, err)
	assert.NotContains(t, css, ".text-center")
}

func TestGenerateCustomInputFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.css")
	require.NoError(t, os.WriteFile(inputPath, []byte("@tailwind utilities;\n"), 0o644))

	cfg := DefaultConfig()
	cfg.InputFile = inputPath
	gen, err := NewGenerator(cfg)
	require.NoError(t, err)

	css, err := gen.Generate("index.html", []byte(`<div class="text-center"></div>`))
	require.NoError(t, err)
	assert.Contains(t, css, ".text-center")
}

func TestGenerateMissingInputFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputFile = filepath.Join(t.TempDir(), "missing.css")

	_, err := NewGenerator(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input css")
}

func TestGenerateMinified(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Minify = true
	gen, err := NewGenerator(cfg)
	require.NoError(t, err)

	css, err := gen.Generate("index.html", []byte(`<div class="text-center"></div>`))
	require.NoError(t, err)
	assert.NotEmpty(t, css)
	assert.Contains(t, css, ".text-center")
}

func TestMinifyCSS(t *testing.T) {
	minified, err := minifyCSS(".a {\n  color: red;\n}\n")
	require.NoError(t, err)
	assert.Contains(t, minified, ".a{color:red}")
}
