package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/workflow-things/providers/internal/manifest"
	"github.com/workflow-things/providers/internal/registry"
)

var (
	listIndexPath string
	listTag       string
	listKind      string
	listOutput    string
)

var listCmd = &cobra.Command{
	Use:   "list [manifest files...]",
	Short: "List integrations from provider manifests",
	Long:  `Lists all integrations declared in the given provider manifests, with optional filtering by tag or by provided capability kind.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&listIndexPath, "index", "", "Read manifests from an index.yaml")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag")
	listCmd.Flags().StringVar(&listKind, "kind", "", "Filter by provided capability kind (operator, hook, sensor, transfer, secrets-backend, log-handler)")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table, json, yaml)")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	reg, manifests, err := loadRegistry(args, listIndexPath)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	var kind manifest.Kind
	if listKind != "" {
		kind, err = manifest.ParseKind(listKind)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			os.Exit(1)
		}
	}

	var entries []manifest.Integration
	for _, m := range manifests {
		for _, in := range manifest.FilterIntegrations(m, listTag) {
			if kind != "" && len(reg.Lookup(kind, in.Name)) == 0 {
				continue
			}
			entries = append(entries, in)
		}
	}

	if len(entries) == 0 {
		fmt.Println("No integrations found.")
		return
	}

	switch listOutput {
	case "json":
		printIntegrationsJSON(entries)
	case "yaml":
		printIntegrationsYAML(entries)
	default:
		printIntegrationsTable(reg, entries)
	}
}

// loadRegistry loads the given manifests and builds the query registry
func loadRegistry(args []string, indexPath string) (*registry.Registry, []*manifest.ProviderManifest, error) {
	paths, err := collectManifestPaths(args, indexPath)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no manifests given: pass manifest files or --index")
	}

	var manifests []*manifest.ProviderManifest
	for _, path := range paths {
		m, err := manifest.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading %s: %w", path, err)
		}
		manifests = append(manifests, m)
	}

	reg, err := registry.Build(manifests...)
	if err != nil {
		return nil, nil, err
	}

	return reg, manifests, nil
}

func printIntegrationsTable(reg *registry.Registry, entries []manifest.Integration) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISPLAY NAME\tTAGS\tOPERATORS\tHOOKS\tSENSORS\tDOC URL")
	fmt.Fprintln(w, "----\t------------\t----\t---------\t-----\t-------\t-------")

	for _, in := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			in.Name,
			in.DisplayName,
			strings.Join(in.Tags, ","),
			len(reg.Lookup(manifest.KindOperator, in.Name)),
			len(reg.Lookup(manifest.KindHook, in.Name)),
			len(reg.Lookup(manifest.KindSensor, in.Name)),
			in.ExternalDocURL)
	}

	w.Flush()
}

func printIntegrationsJSON(entries []manifest.Integration) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error marshalling JSON: %v", err)))
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func printIntegrationsYAML(entries []manifest.Integration) {
	data, err := yaml.Marshal(entries)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error marshalling YAML: %v", err)))
		os.Exit(1)
	}
	fmt.Print(string(data))
}
