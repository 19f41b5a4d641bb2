package git

import (
	"errors"
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"

	smartpusherrors "smartpush.dev/smartpush/internal/errors"
)

// FindRepoRoot returns the root of the git working tree containing dir.
// An empty dir means the process working directory.
func FindRepoRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", smartpusherrors.ErrNotARepository
		}
		return "", fmt.Errorf("%w: %w", smartpusherrors.ErrNotARepository, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no working tree to stage from
		return "", fmt.Errorf("%w: %w", smartpusherrors.ErrNotARepository, err)
	}

	return worktree.Filesystem.Root(), nil
}

// RemoteURL returns the first configured URL of the named remote.
func RemoteURL(repoRoot, remote string) (string, error) {
	repo, err := gogit.PlainOpen(repoRoot)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	r, err := repo.Remote(remote)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", remote, err)
	}

	urls := r.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", remote)
	}
	return urls[0], nil
}
