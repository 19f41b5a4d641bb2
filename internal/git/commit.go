package git

import (
	"context"
	"strings"
)

// Commit records the staged changes with message
func Commit(ctx context.Context, runner Runner, message string) CommandResult {
	return runner.Run(ctx, "commit", "-m", message)
}

// IsNothingToCommit reports whether commit output describes an empty change set
func IsNothingToCommit(output string) bool {
	return strings.Contains(strings.ToLower(output), "nothing to commit")
}
