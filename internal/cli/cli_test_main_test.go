package cli_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"smartpush.dev/smartpush/internal/cli"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

// isolateEnv keeps user configuration, the home diagnostic log and GitHub
// lookups out of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SMARTPUSH_PROMPT_INTERACTIVE", "never")
	t.Setenv("SMARTPUSH_LOG_DIAGNOSTIC_FILE", filepath.Join(t.TempDir(), "smartpush.log"))
	t.Setenv("SMARTPUSH_DIAGNOSE_GITHUB", "false")
	t.Setenv("SMARTPUSH_TEST_NO_INTERACTIVE", "1")
}

// runCLI executes the root command in-process with the given stdin.
func runCLI(t *testing.T, stdin string, opts []cli.Option, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd(opts...)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}
