package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/workflow-things/providers/internal/manifest"
)

var (
	addManifestPath   string
	addName           string
	addDisplayName    string
	addDocURL         string
	addLogo           string
	addTags           []string
	addGuides         []string
	addInteractive    bool
	addNonInteractive bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an integration to a provider manifest",
	Long:  `Adds an integration record to a provider manifest file. Prompts interactively when run in a terminal; use flags for scripted use. The manifest is created if it does not exist.`,
	Run:   runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addManifestPath, "manifest", "m", "provider.yaml", "Path to the provider manifest")
	addCmd.Flags().StringVar(&addName, "name", "", "Integration name")
	addCmd.Flags().StringVar(&addDisplayName, "display-name", "", "Human-readable integration name")
	addCmd.Flags().StringVar(&addDocURL, "doc-url", "", "External documentation URL")
	addCmd.Flags().StringVar(&addLogo, "logo", "", "Logo reference")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "Tag (repeatable)")
	addCmd.Flags().StringSliceVar(&addGuides, "guide", nil, "How-to guide link (repeatable)")
	addCmd.Flags().BoolVarP(&addInteractive, "interactive", "i", false, "Force interactive mode")
	addCmd.Flags().BoolVar(&addNonInteractive, "non-interactive", false, "Force non-interactive mode")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	m, err := loadOrCreateManifest(addManifestPath)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	interactive := addInteractive
	if !addInteractive && !addNonInteractive {
		// Auto-detect: interactive if TTY, non-interactive otherwise
		interactive = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	var in manifest.Integration
	if interactive {
		in, err = promptIntegration()
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			os.Exit(1)
		}
	} else {
		in = manifest.Integration{
			Name:           addName,
			DisplayName:    addDisplayName,
			ExternalDocURL: addDocURL,
			Logo:           addLogo,
			Tags:           addTags,
			HowToGuides:    addGuides,
		}
	}

	if err := manifest.ValidIdentifier(in.Name); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	replaced := manifest.FindIntegration(m, in.Name) != nil
	manifest.AddIntegration(m, in)

	if err := manifest.Validate(m); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	if err := manifest.Save(addManifestPath, m); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	verb := "Added"
	if replaced {
		verb = "Updated"
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("%s integration %q in %s", verb, in.Name, addManifestPath)))
}

// loadOrCreateManifest loads a manifest file, creating an empty one named
// after the file when it does not exist
func loadOrCreateManifest(path string) (*manifest.ProviderManifest, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if name == "provider" {
			name = "my-provider"
		}
		return manifest.New(name), nil
	}

	return manifest.Load(path)
}
