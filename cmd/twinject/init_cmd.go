package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twinject"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twinject.yaml config file",
	Long:  `Create a .twinject.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(twinject.ConfigFileName); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", twinject.ConfigFileName)
		}

		if err := os.WriteFile(twinject.ConfigFileName, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created " + twinject.ConfigFileName)
		return nil
	},
}

const defaultConfig = `# twinject configuration
# Docs: https://github.com/yacobolo/twinject

# Shared settings
verbose: false

# CSS generation and injection
inject:
  input-file: ""          # custom source CSS; empty = built-in @tailwind directives
  purge: true             # drop rules for classes absent from the markup
  minify: false           # minify generated CSS with esbuild
  extensions:
    - ".html"
    - ".htm"

# Offline builds (twinject build / twinject watch)
build:
  patterns:
    - "**/*.html"
  out-dir: dist
  write: false            # true rewrites files in place

watch:
  debounce-ms: 250
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
