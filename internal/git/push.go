package git

import "context"

// Push pushes branch to remote
func Push(ctx context.Context, runner Runner, remote, branch string) CommandResult {
	return runner.Run(ctx, "push", remote, branch)
}

// PushUpstream pushes branch to remote and sets it as the upstream
func PushUpstream(ctx context.Context, runner Runner, remote, branch string) CommandResult {
	return runner.Run(ctx, "push", "-u", remote, branch)
}
