package git_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smartpusherrors "smartpush.dev/smartpush/internal/errors"
	"smartpush.dev/smartpush/internal/git"
	"smartpush.dev/smartpush/testhelpers"
)

func TestFindRepoRoot(t *testing.T) {
	t.Run("finds the root from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		sub := filepath.Join(scene.Dir, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0750))

		root, err := git.FindRepoRoot(sub)
		require.NoError(t, err)
		assert.Equal(t, scene.Dir, root)
	})

	t.Run("outside a repository", func(t *testing.T) {
		dir := testhelpers.NewNonRepoDir(t)

		_, err := git.FindRepoRoot(dir)
		require.Error(t, err)
		assert.True(t, errors.Is(err, smartpusherrors.ErrNotARepository))
	})
}

func TestRemoteURL(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.AddRemote("origin", "git@github.com:me/repo.git"))

	url, err := git.RemoteURL(scene.Dir, "origin")
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:me/repo.git", url)

	_, err = git.RemoteURL(scene.Dir, "upstream")
	require.Error(t, err)
}
