package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twinject"
)

var buildCmd = &cobra.Command{
	Use:   "build [patterns...]",
	Short: "Inject generated utility CSS into HTML files",
	Long: `Expand glob patterns over HTML files, generate utility CSS for each
document and write the transformed copies to the output directory
(or back in place with --write).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.String("input-file", "", "Source CSS file fed to the engine (default: built-in @tailwind directives)")
	f.Bool("purge", true, "Drop rules for classes absent from the markup")
	f.Bool("minify", false, "Minify generated CSS before injection")
	f.StringSlice("extensions", nil, "File extensions treated as HTML")
	f.String("out-dir", "dist", "Output directory for transformed files")
	f.Bool("write", false, "Rewrite files in place instead of writing to out-dir")
}

// buildSummary collects per-run statistics for reporting.
type buildSummary struct {
	Files    int // Files written
	Injected int // Files that actually received a style element
	CSSBytes int // Total bytes added across all files
	Stats    twinject.ScanStats
	Warnings []string
}

func runBuild(cmd *cobra.Command, args []string) error {
	config := buildInjectConfig()

	tr, err := twinject.NewTransformer(&config)
	if err != nil {
		return fmt.Errorf("building transformer: %w", err)
	}

	patterns := resolvePatterns(args)
	outDir := getStringWithFallback("out-dir", "build.out-dir", "dist")
	writeInPlace := getBoolWithFallback("write", "build.write", false)

	summary, err := runBuildOnce(tr, patterns, outDir, writeInPlace)
	if err != nil {
		return err
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		printSummary(summary, getBoolWithFallback("color", "color", false))
	}

	return nil
}

// runBuildOnce is shared between `twinject build` and `twinject watch`.
func runBuildOnce(tr *twinject.Transformer, patterns []string, outDir string, writeInPlace bool) (buildSummary, error) {
	var summary buildSummary

	files, stats, err := twinject.CollectFiles(patterns)
	if err != nil {
		return summary, err
	}
	summary.Stats = stats

	for _, path := range files {
		if !tr.Matches(path) {
			summary.Stats.FilesSkipped++
			continue
		}

		// #nosec G304 - paths come from user-supplied glob patterns
		content, err := os.ReadFile(path)
		if err != nil {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("read %s: %v", path, err))
			continue
		}

		out, err := tr.Transform(path, content)
		if err != nil {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("transform %s: %v", path, err))
			continue
		}

		dest := path
		if !writeInPlace {
			dest = filepath.Join(outDir, path)
			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				return summary, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(dest, out, 0o644); err != nil {
			return summary, fmt.Errorf("write %s: %w", dest, err)
		}

		summary.Files++
		// Documents without a closing head tag pass through unchanged;
		// anything longer received the style element.
		if len(out) > len(content) {
			summary.Injected++
			summary.CSSBytes += len(out) - len(content)
		}
	}

	return summary, nil
}

func printSummary(s buildSummary, useColors bool) {
	fmt.Println(renderStyle(styleGreen,
		fmt.Sprintf("✓ Processed %d files (%d injected, %d bytes of CSS)", s.Files, s.Injected, s.CSSBytes),
		useColors))

	if s.Stats.FilesSkipped > 0 {
		fmt.Println(renderStyle(styleGray,
			fmt.Sprintf("  Skipped %d files (non-HTML or gitignored)", s.Stats.FilesSkipped),
			useColors))
	}

	for _, w := range s.Warnings {
		fmt.Println(renderStyle(styleYellow, "  Warning: "+w, useColors))
	}
}
