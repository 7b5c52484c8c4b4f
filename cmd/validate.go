package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/workflow-things/providers/internal/index"
	"github.com/workflow-things/providers/internal/manifest"
	"github.com/workflow-things/providers/internal/registry"
)

var validateIndexPath string

var validateCmd = &cobra.Command{
	Use:   "validate [manifest files...]",
	Short: "Validate provider manifests",
	Long:  `Loads provider manifests, checks referential integrity (binding owners, duplicate identifiers, connection types), and verifies they assemble into one registry.`,
	Run:   runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateIndexPath, "index", "", "Validate all manifests listed in an index.yaml")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	paths, err := collectManifestPaths(args, validateIndexPath)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	if len(paths) == 0 {
		fmt.Println(errorStyle.Render("no manifests given: pass manifest files or --index"))
		os.Exit(1)
	}

	var manifests []*manifest.ProviderManifest
	failed := false

	for _, path := range paths {
		m, err := manifest.Load(path)
		if err != nil {
			fmt.Printf("%s %s: %v\n", errorStyle.Render("✗"), path, err)
			failed = true
			continue
		}

		fmt.Printf("%s %s (%d integrations)\n", successStyle.Render("✓"), path, len(m.Integrations))
		manifests = append(manifests, m)
	}

	if !failed && len(manifests) > 0 {
		if _, err := registry.Build(manifests...); err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("✗ registry build: %v", err)))
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("\n%d manifest(s) valid", len(manifests))))
}

// collectManifestPaths merges positional manifest files with the entries of
// an optional index file. Index entries are resolved relative to the index.
func collectManifestPaths(args []string, indexPath string) ([]string, error) {
	paths := append([]string{}, args...)

	if indexPath != "" {
		idx, err := index.Load(indexPath)
		if err != nil {
			return nil, fmt.Errorf("loading index: %w", err)
		}
		base := filepath.Dir(indexPath)
		for _, m := range idx.Manifests {
			if !filepath.IsAbs(m) {
				m = filepath.Join(base, m)
			}
			paths = append(paths, m)
		}
	}

	return paths, nil
}
