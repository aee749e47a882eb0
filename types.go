package twinject

// ConfigFileName is the config file discovered in the project tree.
const ConfigFileName = ".twinject.yaml"

// DefaultInputCSS is the source handed to the engine when no input CSS is
// configured. The three directives expand to the full framework sections.
const DefaultInputCSS = "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n"

// Config holds generator and injection configuration
type Config struct {
	InputCSS       string   // Inline source CSS fed to the engine (default: the @tailwind directives)
	InputFile      string   // Path to a source CSS file; takes precedence over InputCSS
	Purge          bool     // Drop rules for classes absent from the markup (default: true)
	Minify         bool     // Minify generated CSS before injection (default: false)
	HTMLExtensions []string // File extensions treated as HTML (default: .html, .htm)
	Verbose        bool     // Enable debug logging
}

// DefaultConfig returns the configuration used when nothing is supplied or
// discovered.
func DefaultConfig() Config {
	return Config{
		InputCSS:       DefaultInputCSS,
		Purge:          true,
		Minify:         false,
		HTMLExtensions: []string{".html", ".htm"},
	}
}

// ScanStats tracks file collection statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesCollected  int // Files kept after filtering
	FilesSkipped    int // Files skipped due to filtering
}
