package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/workflow-things/providers/internal/catalog"
	"github.com/workflow-things/providers/internal/index"
	"github.com/workflow-things/providers/internal/manifest"
)

var (
	fetchCatalogURL string
	fetchNames      []string
	fetchOutputDir  string
	fetchIndexPath  string
	fetchDryRun     bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch provider manifests from a catalog API",
	Long:  `Downloads provider manifests from the catalog API and writes them as YAML files, optionally registering them in an index.yaml.`,
	Run:   runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchCatalogURL, "catalog-url", "a", "", "Catalog API URL (default: $PROVIDER_CATALOG_URL or http://localhost:8080)")
	fetchCmd.Flags().StringSliceVarP(&fetchNames, "names", "n", nil, "Provider names to fetch (default: all)")
	fetchCmd.Flags().StringVarP(&fetchOutputDir, "output-dir", "o", ".", "Output directory for manifest files")
	fetchCmd.Flags().StringVar(&fetchIndexPath, "index", "", "Add fetched manifests to this index.yaml")
	fetchCmd.Flags().BoolVar(&fetchDryRun, "dry-run", false, "Print manifests without writing files")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) {
	// Get catalog URL from flag, environment, or default
	catalogURL := fetchCatalogURL
	if catalogURL == "" {
		catalogURL = os.Getenv("PROVIDER_CATALOG_URL")
	}
	if catalogURL == "" {
		catalogURL = "http://localhost:8080"
	}

	fmt.Printf("Connecting to catalog: %s\n\n", catalogURL)
	client := catalog.NewClient(catalogURL)

	manifests, err := fetchManifests(client)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	if len(manifests) == 0 {
		fmt.Println("No manifests found in catalog.")
		return
	}

	if err := writeManifests(manifests); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func fetchManifests(client *catalog.Client) ([]manifest.ProviderManifest, error) {
	if len(fetchNames) == 0 {
		return client.FetchManifests()
	}

	var manifests []manifest.ProviderManifest
	for _, name := range fetchNames {
		m, err := client.FetchManifest(name)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", name, err)
		}
		manifests = append(manifests, *m)
	}
	return manifests, nil
}

func writeManifests(manifests []manifest.ProviderManifest) error {
	if fetchDryRun {
		fmt.Println("=== DRY RUN - No files written ===")
	} else if err := os.MkdirAll(fetchOutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var written []string
	for i := range manifests {
		m := &manifests[i]

		if err := manifest.Validate(m); err != nil {
			fmt.Printf("%s skipping %s: %v\n", errorStyle.Render("✗"), m.Name, err)
			continue
		}

		filename := m.Name + ".yaml"
		path := filepath.Join(fetchOutputDir, filename)

		if fetchDryRun {
			fmt.Printf("Would write: %s (%d integrations)\n", path, len(m.Integrations))
			continue
		}

		if err := manifest.Save(path, m); err != nil {
			return err
		}
		fmt.Printf("Saved: %s\n", path)
		written = append(written, filename)
	}

	if fetchIndexPath == "" || fetchDryRun || len(written) == 0 {
		return nil
	}

	// A missing index is created; a corrupt one is an error
	idx := &index.Index{}
	if _, err := os.Stat(fetchIndexPath); err == nil {
		idx, err = index.Load(fetchIndexPath)
		if err != nil {
			return err
		}
	}

	for _, f := range written {
		index.AddManifest(idx, f)
	}

	if err := index.Save(fetchIndexPath, idx); err != nil {
		return err
	}
	fmt.Printf("Updated index: %s\n", fetchIndexPath)

	return nil
}
