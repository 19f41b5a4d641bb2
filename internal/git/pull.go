package git

import "context"

// PullRebase rebases the current branch onto remote/branch. The remote and
// branch are explicit so the pull works without upstream tracking.
func PullRebase(ctx context.Context, runner Runner, remote, branch string) CommandResult {
	return runner.Run(ctx, "pull", "--rebase", remote, branch)
}
