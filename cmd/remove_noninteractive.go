package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/workflow-things/providers/internal/gitops"
	"github.com/workflow-things/providers/internal/index"
	"github.com/workflow-things/providers/internal/manifest"
	"github.com/workflow-things/providers/internal/registry"
)

// runRemoveNonInteractive removes an integration identified by flags
func runRemoveNonInteractive() error {
	if removeName == "" {
		return fmt.Errorf("non-interactive mode requires --name")
	}

	manifestPath, repo, cleanup, err := prepareManifestRepo(removeManifestPath)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	return removeIntegration(manifestPath, repo, removeName)
}

// removeIntegration performs the manifest edit and any configured git flow.
// Removing the last integration deletes the manifest file and drops its
// index entry when --index is set.
func removeIntegration(manifestPath string, repo *gitops.Repo, name string) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	in := manifest.FindIntegration(m, name)
	if in == nil {
		return fmt.Errorf("integration %q not found in %s", name, manifestPath)
	}

	owned := countOwnedBindings(m, name)

	if removeDryRun {
		fmt.Println("=== DRY RUN - No changes made ===")
		fmt.Printf("Would remove integration %q (%d owned bindings) from %s\n", name, owned, manifestPath)
		return nil
	}

	if err := manifest.RemoveIntegration(m, name); err != nil {
		return err
	}

	if len(m.Integrations) == 0 {
		if err := os.Remove(manifestPath); err != nil {
			return fmt.Errorf("removing empty manifest: %w", err)
		}
		fmt.Printf("Removed empty manifest: %s\n", manifestPath)

		if err := dropIndexEntry(removeIndexPath, manifestPath); err != nil {
			return err
		}
	} else if err := manifest.Save(manifestPath, m); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Removed integration %q (%d owned bindings) from %s", name, owned, manifestPath)))

	return finishGitFlow(repo, manifestPath, name)
}

// dropIndexEntry removes a deleted manifest from the index file. Entries are
// stored relative to the index directory.
func dropIndexEntry(indexPath, manifestPath string) error {
	if indexPath == "" {
		return nil
	}

	idx, err := index.Load(indexPath)
	if err != nil {
		return err
	}

	entry, err := filepath.Rel(filepath.Dir(indexPath), manifestPath)
	if err != nil {
		entry = filepath.Base(manifestPath)
	}

	if err := index.RemoveManifest(idx, entry); err != nil {
		fmt.Printf("Warning: %v\n", err)
		return nil
	}

	if err := index.Save(indexPath, idx); err != nil {
		return err
	}
	fmt.Printf("Updated index: %s\n", indexPath)
	return nil
}

// countOwnedBindings counts the bindings an integration owns across all
// kinds, transfers targeting it included
func countOwnedBindings(m *manifest.ProviderManifest, name string) int {
	reg, err := registry.Build(m)
	if err != nil {
		return 0
	}

	count := 0
	for _, kind := range manifest.Kinds() {
		count += len(reg.Lookup(kind, name))
	}
	for _, t := range reg.Transfers() {
		if t.Target == name && t.Source != name {
			count++
		}
	}
	return count
}
