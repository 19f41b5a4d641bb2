package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"smartpush.dev/smartpush/internal/audit"
	"smartpush.dev/smartpush/internal/git"
	"smartpush.dev/smartpush/testhelpers"
)

func TestOperations(t *testing.T) {
	exec := testhelpers.NewScriptedExecutor().
		Fail("commit", "nothing to commit, working tree clean\n")
	runner := git.NewCommandRunner(audit.New(filepath.Join(t.TempDir(), "audit.log")), git.WithExecutor(exec))
	ctx := context.Background()

	require.True(t, git.StageAll(ctx, runner).Succeeded)
	commit := git.Commit(ctx, runner, "fix things [2024-05-17 09:30]")
	require.False(t, commit.Succeeded)
	require.True(t, git.IsNothingToCommit(commit.Output))
	git.Push(ctx, runner, "origin", "main")
	git.PushUpstream(ctx, runner, "origin", "main")
	git.PullRebase(ctx, runner, "origin", "main")
	git.ForceBranchName(ctx, runner, "main")
	git.Stash(ctx, runner)

	require.Equal(t, []string{
		"add .",
		"commit -m fix things [2024-05-17 09:30]",
		"push origin main",
		"push -u origin main",
		"pull --rebase origin main",
		"branch -M main",
		"stash",
	}, exec.Lines())
}

func TestIsNothingToCommit(t *testing.T) {
	require.True(t, git.IsNothingToCommit("On branch main\nnothing to commit, working tree clean"))
	require.True(t, git.IsNothingToCommit("Nothing to commit"))
	require.False(t, git.IsNothingToCommit("error: pathspec did not match"))
}
