package testhelpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"smartpush.dev/smartpush/internal/audit"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// AuditCommands returns the command lines recorded in the audit log at path,
// with the binary name stripped ("push origin main").
func AuditCommands(t *testing.T, path string) []string {
	t.Helper()

	entries, err := audit.ReadEntries(path)
	require.NoError(t, err, "Failed to read audit log")

	commands := []string{}
	for _, e := range entries {
		if !e.IsCommand() {
			continue
		}
		cmd := e.Command()
		if _, rest, ok := strings.Cut(cmd, " "); ok {
			cmd = rest
		}
		commands = append(commands, cmd)
	}
	return commands
}

// AuditTexts returns the text of every audit entry at path.
func AuditTexts(t *testing.T, path string) []string {
	t.Helper()

	entries, err := audit.ReadEntries(path)
	require.NoError(t, err, "Failed to read audit log")

	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}
	return texts
}

// ExpectCommandCount asserts how many audited commands start with prefix.
func ExpectCommandCount(t *testing.T, path, prefix string, expected int) {
	t.Helper()

	n := 0
	for _, cmd := range AuditCommands(t, path) {
		if strings.HasPrefix(cmd, prefix) {
			n++
		}
	}
	require.Equal(t, expected, n, "unexpected number of %q commands in audit log", prefix)
}
