package cli_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpush.dev/smartpush/internal/cli"
	smartpusherrors "smartpush.dev/smartpush/internal/errors"
	"smartpush.dev/smartpush/testhelpers"
)

var fixedClock = cli.WithClock(func() time.Time {
	return time.Date(2024, 5, 17, 9, 30, 0, 0, time.Local)
})

func TestRootCommand(t *testing.T) {
	t.Run("pushes with a message flag", func(t *testing.T) {
		isolateEnv(t)
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		exec := testhelpers.NewScriptedExecutor().Succeed("branch --show-current", "main")

		out, err := runCLI(t, "", []cli.Option{cli.WithExecutor(exec), fixedClock}, "-m", "fix bug")
		require.NoError(t, err, out)

		assert.Contains(t, out, "fix bug [2024-05-17 09:30]")
		assert.Contains(t, out, "Pushed main")
		assert.Equal(t, []string{
			"branch --show-current",
			"add .",
			`commit -m "fix bug [2024-05-17 09:30]"`,
			"push origin main",
		}, testhelpers.AuditCommands(t, filepath.Join(scene.Dir, "git_smart_push.log")))
	})

	t.Run("remote flag overrides the configured remote", func(t *testing.T) {
		isolateEnv(t)
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		exec := testhelpers.NewScriptedExecutor()

		_, err := runCLI(t, "", []cli.Option{cli.WithExecutor(exec)}, "-m", "x", "--remote", "fork", "--branch", "dev")
		require.NoError(t, err)
		assert.Equal(t, 1, exec.Count("push fork dev"))
	})

	t.Run("prompts for the message and re-asks on an invalid menu choice", func(t *testing.T) {
		isolateEnv(t)
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		exec := testhelpers.NewScriptedExecutor().
			Succeed("branch --show-current", "main").
			Fail("push", " ! [rejected]        main -> main (non-fast-forward)")

		out, err := runCLI(t, "fix bug\nabc\n7\n2\n", []cli.Option{cli.WithExecutor(exec), fixedClock})
		require.Error(t, err)
		assert.True(t, errors.Is(err, smartpusherrors.ErrAborted))
		assert.Equal(t, smartpusherrors.ExitAborted, smartpusherrors.GetExitCode(err))

		assert.Contains(t, out, "Commit message:")
		assert.Contains(t, out, "Remote has newer commits")
		assert.Contains(t, out, "1. Pull with rebase")
		assert.Equal(t, 2, strings.Count(out, "Invalid choice."))
		assert.Equal(t, 0, exec.Count("pull"))
	})

	t.Run("empty prompted message exits with an environment error", func(t *testing.T) {
		isolateEnv(t)
		testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		exec := testhelpers.NewScriptedExecutor()

		_, err := runCLI(t, "\n", []cli.Option{cli.WithExecutor(exec)})
		require.Error(t, err)
		assert.Equal(t, smartpusherrors.ExitEnvironmentError, smartpusherrors.GetExitCode(err))
		assert.Equal(t, 0, exec.Count("add"))
	})

	t.Run("outside a repository exits with an environment error", func(t *testing.T) {
		isolateEnv(t)
		testhelpers.NewNonRepoDir(t)

		out, err := runCLI(t, "", nil, "-m", "fix bug")
		require.Error(t, err)
		assert.True(t, errors.Is(err, smartpusherrors.ErrNotARepository))
		assert.Equal(t, smartpusherrors.ExitEnvironmentError, smartpusherrors.GetExitCode(err))
		assert.Contains(t, out, "Not a git repository")
	})

	t.Run("invalid configuration is rejected", func(t *testing.T) {
		isolateEnv(t)
		testhelpers.NewScene(t, nil)
		t.Setenv("SMARTPUSH_PROMPT_INTERACTIVE", "always")

		_, err := runCLI(t, "", nil, "-m", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prompt.interactive")
	})
}
