package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/workflow-things/providers/internal/manifest"
)

// promptIntegration collects integration attributes through an interactive form
func promptIntegration() (manifest.Integration, error) {
	var (
		name        string
		displayName string
		docURL      string
		logo        string
		tagsRaw     string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Integration name").
				Description("Unique identifier, e.g. amazon-s3").
				Validate(manifest.ValidIdentifier).
				Value(&name),
			huh.NewInput().
				Title("Display name").
				Description("Human-readable name shown in the host UI").
				Value(&displayName),
			huh.NewInput().
				Title("Documentation URL").
				Placeholder("https://...").
				Value(&docURL),
			huh.NewInput().
				Title("Logo reference").
				Placeholder("/integration-logos/...").
				Value(&logo),
			huh.NewInput().
				Title("Tags").
				Description("Comma-separated, e.g. aws,storage").
				Value(&tagsRaw),
		),
	)

	if err := form.Run(); err != nil {
		return manifest.Integration{}, fmt.Errorf("form cancelled: %w", err)
	}

	confirm := true
	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Add integration %q?", name)).
				Affirmative("Yes, add").
				Negative("Cancel").
				Value(&confirm),
		),
	)
	if err := confirmForm.Run(); err != nil {
		return manifest.Integration{}, err
	}
	if !confirm {
		return manifest.Integration{}, fmt.Errorf("cancelled")
	}

	return manifest.Integration{
		Name:           strings.TrimSpace(name),
		DisplayName:    strings.TrimSpace(displayName),
		ExternalDocURL: strings.TrimSpace(docURL),
		Logo:           strings.TrimSpace(logo),
		Tags:           splitTags(tagsRaw),
	}, nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
