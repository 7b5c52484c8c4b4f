package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/workflow-things/providers/internal/manifest"
	"github.com/workflow-things/providers/internal/registry"
)

var showIndexPath string

var showCmd = &cobra.Command{
	Use:   "show <integration> [manifest files...]",
	Short: "Show a single integration and its capabilities",
	Long:  `Prints the metadata, documentation links, capability bindings, and connection types of one integration.`,
	Args:  cobra.MinimumNArgs(1),
	Run:   runShow,
}

func init() {
	showCmd.Flags().StringVar(&showIndexPath, "index", "", "Read manifests from an index.yaml")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) {
	name := args[0]

	reg, _, err := loadRegistry(args[1:], showIndexPath)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	in, ok := reg.Integration(name)
	if !ok {
		fmt.Println(errorStyle.Render(fmt.Sprintf("integration %q not found", name)))
		os.Exit(1)
	}

	printIntegration(reg, in)
}

func printIntegration(reg *registry.Registry, in *manifest.Integration) {
	name := in.Name

	title := in.DisplayName
	if title == "" {
		title = in.Name
	}
	fmt.Println(headerStyle.Render(title))

	if in.ExternalDocURL != "" {
		fmt.Printf("Docs: %s\n", in.ExternalDocURL)
	}
	if len(in.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(in.Tags, ", "))
	}
	for _, guide := range in.HowToGuides {
		fmt.Printf("Guide: %s\n", guide)
	}

	for _, kind := range manifest.Kinds() {
		if kind == manifest.KindTransfer {
			continue
		}
		modules := reg.Lookup(kind, name)
		if len(modules) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", headerStyle.Render(string(kind)+"s"))
		for _, mod := range modules {
			fmt.Printf("  %s\n", mod)
		}
		for _, mod := range reg.LookupAll(kind, name)[len(modules):] {
			current, _ := reg.Supersedes(mod)
			fmt.Printf("  %s\n", mutedStyle.Render(fmt.Sprintf("%s (deprecated, use %s)", mod, current)))
		}
	}

	if transfers := reg.TransfersFrom(name); len(transfers) > 0 {
		fmt.Printf("\n%s\n", headerStyle.Render("transfers"))
		for _, t := range transfers {
			fmt.Printf("  %s -> %s (%s)\n", t.Source, t.Target, t.Module)
		}
	}

	if types := connectionTypesFor(reg, name); len(types) > 0 {
		fmt.Printf("\n%s\n", headerStyle.Render("connection types"))
		for _, ct := range types {
			fmt.Printf("  %s -> %s\n", ct.ConnectionType, ct.Hook)
		}
	}
}

// connectionTypesFor returns the mappings whose hook is declared by the
// integration, deprecated aliases included
func connectionTypesFor(reg *registry.Registry, name string) []manifest.ConnectionType {
	hooks := make(map[string]bool)
	for _, mod := range reg.LookupAll(manifest.KindHook, name) {
		hooks[mod] = true
	}

	var types []manifest.ConnectionType
	for _, ct := range reg.ConnectionTypes() {
		if hooks[ct.Hook] {
			types = append(types, ct)
		}
	}
	return types
}
