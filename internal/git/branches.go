package git

import (
	"context"
	"strings"
)

// Branch names tried, in order, when the current branch cannot be determined
const (
	BranchMain   = "main"
	BranchMaster = "master"
)

// ResolveBranch determines the branch to push. It never fails:
//  1. the checked-out branch, if the query succeeds with a non-empty name
//  2. "main" if the branch listing mentions it
//  3. "master" if the branch listing mentions it
//  4. "main"
//
// A wrong guess surfaces later as a push failure the remediation flow can handle.
func ResolveBranch(ctx context.Context, runner Runner) string {
	current := runner.Run(ctx, "branch", "--show-current")
	if name := strings.TrimSpace(current.Output); current.Succeeded && name != "" {
		return name
	}

	listing := runner.Run(ctx, "branch")
	switch {
	case strings.Contains(listing.Output, BranchMain):
		return BranchMain
	case strings.Contains(listing.Output, BranchMaster):
		return BranchMaster
	default:
		return BranchMain
	}
}
