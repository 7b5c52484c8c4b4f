package gitops

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// PRConfig holds pull request configuration
type PRConfig struct {
	Title       string
	Description string
	Labels      []string
	BaseBranch  string
	HeadBranch  string
}

// PRResult holds the result of PR creation
type PRResult struct {
	URL string
}

// CheckGHInstalled checks if the gh CLI is installed
func CheckGHInstalled() bool {
	_, err := exec.LookPath("gh")
	return err == nil
}

// CheckGHAuth verifies the gh CLI is authenticated
func CheckGHAuth() error {
	cmd := exec.Command("gh", "auth", "status")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gh CLI not authenticated: run 'gh auth login'")
	}
	return nil
}

// CreatePR creates a pull request using the gh CLI
func CreatePR(config PRConfig, repoPath string) (*PRResult, error) {
	if !CheckGHInstalled() {
		return nil, fmt.Errorf("gh CLI not found: install from https://cli.github.com")
	}

	args := []string{"pr", "create",
		"--title", config.Title,
		"--body", config.Description,
		"--base", config.BaseBranch,
	}

	for _, label := range config.Labels {
		if label != "" {
			args = append(args, "--label", label)
		}
	}

	if config.HeadBranch != "" {
		args = append(args, "--head", config.HeadBranch)
	}

	cmd := exec.Command("gh", args...)
	cmd.Dir = repoPath

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := stderr.String()
		if errMsg == "" {
			errMsg = err.Error()
		}
		return nil, fmt.Errorf("gh pr create failed: %s", errMsg)
	}

	return &PRResult{URL: strings.TrimSpace(stdout.String())}, nil
}
