package gitops

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// Repo wraps git operations on a catalog checkout holding provider manifests
type Repo struct {
	Path string
	repo *git.Repository
	auth *http.BasicAuth
}

// Open opens an existing repository at path
func Open(path, user, token string) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	r := &Repo{Path: path, repo: repo}
	if user != "" && token != "" {
		r.auth = &http.BasicAuth{Username: user, Password: token}
	}

	return r, nil
}

// Clone clones a catalog repository into a temp directory
func Clone(url, user, token string) (*Repo, string, error) {
	tmpDir, err := os.MkdirTemp("", "providers-gitops-*")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp directory: %w", err)
	}

	var auth *http.BasicAuth
	if user != "" && token != "" {
		auth = &http.BasicAuth{Username: user, Password: token}
	}

	opts := &git.CloneOptions{
		URL:      url,
		Progress: os.Stdout,
	}
	if auth != nil {
		opts.Auth = auth
	}

	repo, err := git.PlainClone(tmpDir, false, opts)
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, "", fmt.Errorf("cloning repository: %w", err)
	}

	return &Repo{Path: tmpDir, repo: repo, auth: auth}, tmpDir, nil
}

// Add stages files for commit. Paths may be absolute or repo-relative.
func (r *Repo) Add(files []string) error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	for _, f := range files {
		relPath, err := filepath.Rel(r.Path, f)
		if err != nil {
			relPath = f
		}

		absPath := filepath.Join(r.Path, relPath)
		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", absPath)
		}

		if err := worktree.AddGlob(relPath); err != nil {
			return fmt.Errorf("staging %s: %w", relPath, err)
		}
	}

	return nil
}

// Commit creates a commit with the staged changes
func (r *Repo) Commit(message, authorName, authorEmail string) error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	if authorName == "" {
		authorName = "providers-cli"
	}
	if authorEmail == "" {
		authorEmail = "providers-cli@automated"
	}

	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	return nil
}

// Push pushes the current branch to the named remote
func (r *Repo) Push(remote string) error {
	if r.auth == nil {
		return fmt.Errorf("git credentials required for push")
	}

	err := r.repo.Push(&git.PushOptions{
		RemoteName: remote,
		Auth:       r.auth,
	})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return fmt.Errorf("pushing: %w", err)
	}

	return nil
}

// CreateBranch creates and checks out a new branch, keeping untracked files
// such as freshly edited manifests
func (r *Repo) CreateBranch(name string) error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	headRef, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	branchRef := plumbing.NewBranchReferenceName(name)
	ref := plumbing.NewHashReference(branchRef, headRef.Hash())
	if err := r.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("creating branch: %w", err)
	}

	if err := worktree.Checkout(&git.CheckoutOptions{
		Branch: branchRef,
		Keep:   true,
	}); err != nil {
		return fmt.Errorf("checking out branch: %w", err)
	}

	return nil
}

// CurrentBranch returns the short name of the current branch
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Name().Short(), nil
}

// Cleanup removes the repository directory (for clone-based workflows)
func (r *Repo) Cleanup() error {
	return os.RemoveAll(r.Path)
}

// FindRoot walks up from startPath looking for a directory containing .git
func FindRoot(startPath string) (string, error) {
	path, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
			return path, nil
		}

		parent := filepath.Dir(path)
		if parent == path {
			return "", fmt.Errorf("no git repository found above %s", startPath)
		}
		path = parent
	}
}
