package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yacobolo/twinject"
)

var watchCmd = &cobra.Command{
	Use:   "watch [patterns...]",
	Short: "Rebuild transformed HTML files when sources change",
	Long: `Run a build, then watch the matched files' directories and rebuild
on change. Rapid edits are debounced. Watch always writes to the output
directory; in-place writes would retrigger the watcher with already
transformed documents.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.String("input-file", "", "Source CSS file fed to the engine (default: built-in @tailwind directives)")
	f.Bool("purge", true, "Drop rules for classes absent from the markup")
	f.Bool("minify", false, "Minify generated CSS before injection")
	f.StringSlice("extensions", nil, "File extensions treated as HTML")
	f.String("out-dir", "dist", "Output directory for transformed files")
	f.Int("debounce-ms", 250, "Debounce interval for rapid file changes")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if getBoolWithFallback("write", "build.write", false) {
		return fmt.Errorf("watch requires an output directory; disable build.write")
	}

	config := buildInjectConfig()

	tr, err := twinject.NewTransformer(&config)
	if err != nil {
		return fmt.Errorf("building transformer: %w", err)
	}

	patterns := resolvePatterns(args)
	outDir := getStringWithFallback("out-dir", "build.out-dir", "dist")
	debounce := time.Duration(getIntWithFallback("debounce-ms", "watch.debounce-ms", 250)) * time.Millisecond
	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := getBoolWithFallback("color", "color", false)

	// Initial build before watching
	summary, err := runBuildOnce(tr, patterns, outDir, false)
	if err != nil {
		return err
	}
	if !quiet {
		printSummary(summary, useColors)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directories containing matched files (more reliable than
	// watching the files directly)
	dirs, err := watchDirs(patterns)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching directory %s: %w", dir, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		fmt.Println(renderStyle(styleCyan,
			fmt.Sprintf("Watching %d directories (Ctrl-C to stop)", len(dirs)),
			useColors))
	}

	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}

	var rebuildTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event, tr, absOut) {
				continue
			}
			// Reset/start debounce timer
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			rebuildTimer = time.AfterFunc(debounce, func() {
				s, err := runBuildOnce(tr, patterns, outDir, false)
				if err != nil {
					fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
					return
				}
				if !quiet {
					printSummary(s, useColors)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// relevantEvent filters watcher noise: only create/write/rename of HTML
// files outside the output directory trigger a rebuild.
func relevantEvent(event fsnotify.Event, tr *twinject.Transformer, absOut string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	if !tr.Matches(event.Name) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err == nil && strings.HasPrefix(abs, absOut+string(filepath.Separator)) {
		return false
	}
	return true
}

// watchDirs returns the parent directories of all files currently matching
// the patterns.
func watchDirs(patterns []string) ([]string, error) {
	files, _, err := twinject.CollectFiles(patterns)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		dir := filepath.Dir(f)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	return dirs, nil
}
