package twinject

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// PluginName identifies the esbuild plugin in build output.
const PluginName = "twinject"

// Plugin returns an esbuild plugin that rewrites matching HTML files as they
// are loaded. Each matched file is read, run through Transform, and handed
// back with the copy loader so esbuild emits the document verbatim.
//
// Passing nil discovers the configuration from the project tree; a non-nil
// value is used as-is. Configuration and engine failures surface through
// esbuild's own error reporting when the first file loads.
func Plugin(explicit *Config) api.Plugin {
	tr, initErr := NewTransformer(explicit)

	return api.Plugin{
		Name: PluginName,
		Setup: func(build api.PluginBuild) {
			filter := `\.html?$`
			if initErr == nil {
				filter = extensionFilter(tr.Config().HTMLExtensions)
			}

			build.OnLoad(api.OnLoadOptions{Filter: filter},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					if initErr != nil {
						return api.OnLoadResult{}, initErr
					}

					content, err := os.ReadFile(args.Path)
					if err != nil {
						return api.OnLoadResult{}, fmt.Errorf("read %s: %w", args.Path, err)
					}

					out, err := tr.Transform(args.Path, content)
					if err != nil {
						return api.OnLoadResult{}, err
					}

					contents := string(out)
					return api.OnLoadResult{
						Contents: &contents,
						Loader:   api.LoaderCopy,
					}, nil
				})
		},
	}
}

// extensionFilter builds the OnLoad path filter for a set of extensions.
// esbuild filters are Go regular expressions.
func extensionFilter(exts []string) string {
	quoted := make([]string, 0, len(exts))
	for _, e := range exts {
		quoted = append(quoted, regexp.QuoteMeta(strings.TrimPrefix(e, ".")))
	}
	return `\.(` + strings.Join(quoted, "|") + `)$`
}
