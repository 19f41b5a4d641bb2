package git

import "context"

// StageAll stages every change in the working tree, untracked files included.
// Staging with nothing to stage succeeds.
func StageAll(ctx context.Context, runner Runner) CommandResult {
	return runner.Run(ctx, "add", ".")
}
