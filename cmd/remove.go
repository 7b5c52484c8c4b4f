package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	removeManifestPath string
	removeName         string
	removeIndexPath    string
	removeDryRun       bool

	// Git flags
	removeGitRepoURL      string
	removeGitBranch       string
	removeGitCreateBranch bool
	removeGitCommit       bool
	removeGitPush         bool
	removeGitMessage      string
	removeGitRemote       string
	removeGitUser         string
	removeGitToken        string

	// PR flags
	removeCreatePR      bool
	removePRTitle       string
	removePRDescription string
	removePRLabels      []string
	removePRBase        string

	// Mode flags
	removeInteractive    bool
	removeNonInteractive bool
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an integration from a provider manifest",
	Long:  `Removes an integration record along with every capability binding it owns and every transfer touching it. Optionally commits the edit and opens a Git PR.`,
	Run:   runRemove,
}

func init() {
	removeCmd.Flags().StringVarP(&removeManifestPath, "manifest", "m", "provider.yaml", "Path to the provider manifest within the repo")
	removeCmd.Flags().StringVar(&removeName, "name", "", "Name of the integration to remove")
	removeCmd.Flags().StringVar(&removeIndexPath, "index", "", "Drop the manifest from this index.yaml when it becomes empty")
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "Show what would be removed without making changes")

	removeCmd.Flags().StringVar(&removeGitRepoURL, "git-repo-url", "", "Clone from URL instead of using the local repo")
	removeCmd.Flags().StringVar(&removeGitBranch, "git-branch", "", "Branch to commit to")
	removeCmd.Flags().BoolVar(&removeGitCreateBranch, "git-create-branch", false, "Create the branch before committing")
	removeCmd.Flags().BoolVar(&removeGitCommit, "git-commit", false, "Commit the manifest edit")
	removeCmd.Flags().BoolVar(&removeGitPush, "git-push", false, "Push after committing")
	removeCmd.Flags().StringVar(&removeGitMessage, "git-message", "", "Commit message")
	removeCmd.Flags().StringVar(&removeGitRemote, "git-remote", "origin", "Remote to push to")
	removeCmd.Flags().StringVar(&removeGitUser, "git-user", "", "Git user (or GIT_USER/GITHUB_USER)")
	removeCmd.Flags().StringVar(&removeGitToken, "git-token", "", "Git token (or GIT_TOKEN/GITHUB_TOKEN)")

	removeCmd.Flags().BoolVar(&removeCreatePR, "create-pr", false, "Create a pull request via gh")
	removeCmd.Flags().StringVar(&removePRTitle, "pr-title", "", "Pull request title")
	removeCmd.Flags().StringVar(&removePRDescription, "pr-description", "", "Pull request description")
	removeCmd.Flags().StringSliceVar(&removePRLabels, "pr-label", nil, "Pull request label (repeatable)")
	removeCmd.Flags().StringVar(&removePRBase, "pr-base", "main", "Pull request base branch")

	removeCmd.Flags().BoolVarP(&removeInteractive, "interactive", "i", false, "Force interactive mode")
	removeCmd.Flags().BoolVar(&removeNonInteractive, "non-interactive", false, "Force non-interactive mode")

	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) {
	interactive := removeInteractive
	if !removeInteractive && !removeNonInteractive {
		interactive = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	var err error
	if interactive {
		err = runRemoveInteractive()
	} else {
		err = runRemoveNonInteractive()
	}

	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
