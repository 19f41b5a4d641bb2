package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"smartpush.dev/smartpush/internal/git"
)

type recordingRunner struct {
	calls [][]string
	ok    bool
}

func (r *recordingRunner) Run(_ context.Context, args ...string) git.CommandResult {
	r.calls = append(r.calls, args)
	return git.CommandResult{Command: "git " + args[0], Succeeded: r.ok}
}

func TestProgressRunner(t *testing.T) {
	t.Run("network commands show progress", func(t *testing.T) {
		var out bytes.Buffer
		inner := &recordingRunner{ok: true}
		runner := NewProgressRunner(inner, NewSimpleProgress(&out))

		result := runner.Run(context.Background(), "push", "origin", "main")

		require.True(t, result.Succeeded)
		require.Equal(t, [][]string{{"push", "origin", "main"}}, inner.calls)
		require.Equal(t, "  ⋯ git push origin main...\n  ✓ git push origin main\n", out.String())
	})

	t.Run("failures are marked", func(t *testing.T) {
		var out bytes.Buffer
		runner := NewProgressRunner(&recordingRunner{}, NewSimpleProgress(&out))

		result := runner.Run(context.Background(), "pull", "--rebase", "origin", "main")

		require.False(t, result.Succeeded)
		require.Contains(t, out.String(), "✗ git pull --rebase origin main")
	})

	t.Run("local commands are silent", func(t *testing.T) {
		var out bytes.Buffer
		inner := &recordingRunner{ok: true}
		runner := NewProgressRunner(inner, NewSimpleProgress(&out))

		runner.Run(context.Background(), "add", ".")
		runner.Run(context.Background(), "commit", "-m", "x")

		require.Len(t, inner.calls, 2)
		require.Empty(t, out.String())
	})
}

func TestIsNetworkCommand(t *testing.T) {
	require.True(t, IsNetworkCommand([]string{"push", "-u", "origin", "main"}))
	require.True(t, IsNetworkCommand([]string{"fetch"}))
	require.False(t, IsNetworkCommand([]string{"stash"}))
	require.False(t, IsNetworkCommand(nil))
}

func TestTTYProgress(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var out bytes.Buffer
	p := NewTTYProgress(&out)

	p.Start("push origin main")
	require.Equal(t, "  "+spinner.Dot.Frames[0]+" git push origin main", out.String())

	p.Complete(false)
	require.True(t, strings.HasSuffix(out.String(), "\r\x1b[2K  ✗ git push origin main\n"))

	out.Reset()
	p.Start("pull --rebase origin main")
	p.Complete(true)
	require.Contains(t, out.String(), "✓ git pull --rebase origin main\n")
}

func TestProgressUIChoosesByTerminal(t *testing.T) {
	require.IsType(t, &TTYProgress{}, NewProgressUI(&bytes.Buffer{}, true))
	require.IsType(t, &SimpleProgress{}, NewProgressUI(&bytes.Buffer{}, false))
}
