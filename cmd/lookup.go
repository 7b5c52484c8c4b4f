package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/workflow-things/providers/internal/manifest"
)

var (
	lookupIndexPath   string
	lookupKind        string
	lookupIntegration string
	lookupAll         bool
	lookupOutput      string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [manifest files...]",
	Short: "Look up the modules implementing a capability",
	Long:  `Resolves an integration and capability kind to the module references implementing it, in declared order. An integration without the capability yields an empty result.`,
	Run:   runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupIndexPath, "index", "", "Read manifests from an index.yaml")
	lookupCmd.Flags().StringVarP(&lookupKind, "kind", "k", "", "Capability kind (operator, hook, sensor, transfer, secrets-backend, log-handler)")
	lookupCmd.Flags().StringVarP(&lookupIntegration, "integration", "i", "", "Integration name")
	lookupCmd.Flags().BoolVar(&lookupAll, "all", false, "Include deprecated module aliases")
	lookupCmd.Flags().StringVarP(&lookupOutput, "output", "o", "text", "Output format (text, json)")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) {
	if lookupKind == "" || lookupIntegration == "" {
		fmt.Println(errorStyle.Render("lookup requires --kind and --integration"))
		os.Exit(1)
	}

	kind, err := manifest.ParseKind(lookupKind)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	reg, _, err := loadRegistry(args, lookupIndexPath)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	var modules []string
	if lookupAll {
		modules = reg.LookupAll(kind, lookupIntegration)
	} else {
		modules = reg.Lookup(kind, lookupIntegration)
	}

	printModules(modules)
}

func printModules(modules []string) {
	if lookupOutput == "json" {
		if modules == nil {
			modules = []string{}
		}
		data, err := json.MarshalIndent(modules, "", "  ")
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Error marshalling JSON: %v", err)))
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if len(modules) == 0 {
		fmt.Println("none")
		return
	}
	for _, mod := range modules {
		fmt.Println(mod)
	}
}
