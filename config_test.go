package twinject

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigExplicitWins(t *testing.T) {
	explicit := Config{
		InputCSS: "@tailwind utilities;",
		Purge:    false,
		Minify:   true,
	}

	cfg, err := ResolveConfig(&explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, cfg)
}

func TestDiscoverConfigDefaults(t *testing.T) {
	// An empty directory tree yields the defaults
	dir := t.TempDir()

	cfg, err := DiscoverConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultInputCSS, cfg.InputCSS)
	assert.True(t, cfg.Purge)
	assert.False(t, cfg.Minify)
	assert.Equal(t, []string{".html", ".htm"}, cfg.HTMLExtensions)
}

func TestDiscoverConfigFindsFileInParent(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "site", "pages")
	require.NoError(t, os.MkdirAll(child, 0o755))

	configContent := `
verbose: true

inject:
  input-file: styles/input.css
  purge: false
  minify: true
  extensions:
    - ".xhtml"
`
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(configContent), 0o644))

	cfg, err := DiscoverConfig(child)
	require.NoError(t, err)
	assert.Equal(t, "styles/input.css", cfg.InputFile)
	assert.False(t, cfg.Purge)
	assert.True(t, cfg.Minify)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{".xhtml"}, cfg.HTMLExtensions)
}

func TestDiscoverConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configContent := `
inject:
  purge: true
  minify: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(configContent), 0o644))

	t.Setenv("TWINJECT_INJECT_PURGE", "false")
	t.Setenv("TWINJECT_INJECT_MINIFY", "true")

	cfg, err := DiscoverConfig(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Purge)
	assert.True(t, cfg.Minify)
}

func TestDiscoverConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("inject: [broken"), 0o644))

	_, err := DiscoverConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))

	t.Run("missing file returns empty path", func(t *testing.T) {
		path, err := FindConfigFile(child)
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("file in ancestor is found", func(t *testing.T) {
		want := filepath.Join(root, ConfigFileName)
		require.NoError(t, os.WriteFile(want, []byte("verbose: false\n"), 0o644))

		path, err := FindConfigFile(child)
		require.NoError(t, err)
		assert.Equal(t, want, path)
	})
}
