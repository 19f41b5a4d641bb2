package git

import "context"

// ForceBranchName renames the current branch to name, replacing any branch
// already called name. On an unborn HEAD it sets the name of the first branch.
func ForceBranchName(ctx context.Context, runner Runner, name string) CommandResult {
	return runner.Run(ctx, "branch", "-M", name)
}

// Stash stashes local modifications
func Stash(ctx context.Context, runner Runner) CommandResult {
	return runner.Run(ctx, "stash")
}
