package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/workflow-things/providers/internal/manifest"
)

// runRemoveInteractive lets the user pick the integration to remove. The
// repo is prepared first so the picker reads the manifest the edit will
// apply to, not a stale local copy.
func runRemoveInteractive() error {
	manifestPath, repo, cleanup, err := prepareManifestRepo(removeManifestPath)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	if len(m.Integrations) == 0 {
		return fmt.Errorf("manifest %s declares no integrations", manifestPath)
	}

	name := removeName
	if name == "" {
		var options []huh.Option[string]
		for _, in := range m.Integrations {
			label := in.Name
			if in.DisplayName != "" {
				label = fmt.Sprintf("%s (%s)", in.DisplayName, in.Name)
			}
			if len(in.Tags) > 0 {
				label = fmt.Sprintf("%s [%s]", label, strings.Join(in.Tags, ","))
			}
			options = append(options, huh.NewOption(label, in.Name))
		}

		selectForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Select integration to remove").
					Options(options...).
					Value(&name),
			),
		)
		if err := selectForm.Run(); err != nil {
			return err
		}
	}

	owned := countOwnedBindings(m, name)

	confirm := false
	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %q and its %d owned bindings?", name, owned)).
				Description("Transfers touching the integration are removed too").
				Affirmative("Yes, remove").
				Negative("Cancel").
				Value(&confirm),
		),
	)
	if err := confirmForm.Run(); err != nil {
		return err
	}
	if !confirm {
		fmt.Println("Cancelled.")
		return nil
	}

	return removeIntegration(manifestPath, repo, name)
}
