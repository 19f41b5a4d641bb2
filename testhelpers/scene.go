// Package testhelpers provides testing utilities for smartpush: temporary
// repositories, a scripted process executor and a scripted prompter.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
// The process working directory is moved into the repository for the test.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// Cleanup is registered with t.Cleanup. Not safe for parallel tests.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	// Resolve symlinks so paths compare equal to what git reports (macOS /var -> /private/var)
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{Dir: tmpDir, Repo: repo}
	t.Chdir(tmpDir)

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// WithBareRemote creates a bare repository next to the scene and registers it as origin.
func (s *Scene) WithBareRemote(t *testing.T) *GitRepo {
	t.Helper()

	remote, err := NewBareRemote(filepath.Join(t.TempDir(), "remote.git"))
	if err != nil {
		t.Fatalf("Failed to create bare remote: %v", err)
	}
	if err := s.Repo.AddRemote("origin", remote.Dir); err != nil {
		t.Fatalf("Failed to add remote: %v", err)
	}
	return remote
}

// NewNonRepoDir returns a temporary directory that is not inside any repository
// and makes it the working directory.
func NewNonRepoDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	// Keep the git CLI from discovering a repository above the temp dir
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	t.Chdir(dir)
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		t.Fatalf("%s unexpectedly contains .git", dir)
	}
	return dir
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
