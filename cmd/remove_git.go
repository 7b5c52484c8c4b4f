package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/workflow-things/providers/internal/gitops"
)

// prepareManifestRepo resolves the manifest path for the configured git
// workflow. With --git-repo-url the catalog repo is cloned to a temp
// directory and the manifest path is taken relative to it; otherwise the
// local path is used as-is. The returned cleanup removes the clone.
func prepareManifestRepo(manifestPath string) (string, *gitops.Repo, func(), error) {
	useGit := removeGitCommit || removeGitPush || removeCreatePR

	if removeGitRepoURL != "" {
		user, token, err := gitops.ResolveCredentials(removeGitUser, removeGitToken)
		if err != nil {
			return "", nil, nil, err
		}

		fmt.Printf("Cloning %s...\n", removeGitRepoURL)
		repo, tmpDir, err := gitops.Clone(removeGitRepoURL, user, token)
		if err != nil {
			return "", nil, nil, err
		}

		cleanup := func() { _ = repo.Cleanup() }
		return filepath.Join(tmpDir, manifestPath), repo, cleanup, nil
	}

	if !useGit {
		return manifestPath, nil, nil, nil
	}

	root, err := gitops.FindRoot(filepath.Dir(manifestPath))
	if err != nil {
		return "", nil, nil, fmt.Errorf("manifest is not in a git repository: %w", err)
	}

	user, token := gitops.ResolveCredentialsOptional(removeGitUser, removeGitToken)
	if removeGitPush {
		user, token, err = gitops.ResolveCredentials(removeGitUser, removeGitToken)
		if err != nil {
			return "", nil, nil, err
		}
	}

	repo, err := gitops.Open(root, user, token)
	if err != nil {
		return "", nil, nil, err
	}

	return manifestPath, repo, nil, nil
}

// finishGitFlow commits, pushes, and opens a PR for the manifest edit
// according to the remove command's git flags
func finishGitFlow(repo *gitops.Repo, manifestPath, integration string) error {
	if repo == nil || removeDryRun {
		return nil
	}
	if !removeGitCommit && !removeGitPush && !removeCreatePR {
		return nil
	}

	branch := removeGitBranch
	if removeGitCreateBranch {
		if branch == "" {
			branch = fmt.Sprintf("remove-%s", integration)
		}
		if err := repo.CreateBranch(branch); err != nil {
			return err
		}
		fmt.Printf("Created branch: %s\n", branch)
	}

	if err := repo.Add([]string{manifestPath}); err != nil {
		return err
	}

	message := removeGitMessage
	if message == "" {
		message = fmt.Sprintf("Remove integration %s", integration)
	}
	if err := repo.Commit(message, removeGitUser, ""); err != nil {
		return err
	}
	fmt.Printf("Committed: %s\n", message)

	if removeGitPush || removeCreatePR {
		if err := repo.Push(removeGitRemote); err != nil {
			return err
		}
		fmt.Printf("Pushed to %s\n", removeGitRemote)
	}

	if !removeCreatePR {
		return nil
	}

	if err := gitops.CheckGHAuth(); err != nil {
		return err
	}

	title := removePRTitle
	if title == "" {
		title = fmt.Sprintf("Remove integration %s", integration)
	}
	if branch == "" {
		current, err := repo.CurrentBranch()
		if err != nil {
			return err
		}
		branch = current
	}

	pr, err := gitops.CreatePR(gitops.PRConfig{
		Title:       title,
		Description: removePRDescription,
		Labels:      removePRLabels,
		BaseBranch:  removePRBase,
		HeadBranch:  branch,
	}, repo.Path)
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Created PR: %s", pr.URL)))
	return nil
}
