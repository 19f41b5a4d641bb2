package actions

import (
	"fmt"
	"strings"
	"time"

	"smartpush.dev/smartpush/internal/classify"
	smartpusherrors "smartpush.dev/smartpush/internal/errors"
	"smartpush.dev/smartpush/internal/git"
	"smartpush.dev/smartpush/internal/remedy"
	"smartpush.dev/smartpush/internal/runtime"
	"smartpush.dev/smartpush/internal/tui/style"
)

// Audit log markers written around a session
const (
	MarkerStart         = "=== START ==="
	MarkerSuccess       = "SUCCESS"
	MarkerNotRepository = "Not a git repository"
)

// PushOptions contains options for the push session
type PushOptions struct {
	// Message is the commit message text; the timestamp suffix is added by the action
	Message string
	// PromptForMessage asks the user for Message instead of using the field
	PromptForMessage bool
	// Branch overrides branch resolution when non-empty
	Branch string
	// Remote overrides the configured remote when non-empty
	Remote string
}

// PushResult describes a finished session
type PushResult struct {
	State         remedy.State
	Branch        string
	CommitMessage string
	// Pushes counts every push invocation, remedial pushes included
	Pushes int
	// Failures lists the kind of every classified push failure, in order
	Failures []classify.FailureKind
}

// PushAction stages, commits and pushes, then walks every push failure through
// the remediation engine until the push succeeds or the session is aborted.
func PushAction(rt *runtime.Context, opts PushOptions) (*PushResult, error) {
	splog := rt.Splog
	ctx := rt.Context

	audit(rt, MarkerStart)

	if err := rt.OpenRepo(); err != nil {
		audit(rt, MarkerNotRepository)
		splog.Error("Not a git repository (no .git directory found from %s)", rt.WorkDir)
		return nil, smartpusherrors.NewEnvironmentError("not a git repository", err)
	}

	remote := opts.Remote
	if remote == "" {
		remote = rt.Config.Git.Remote
	}

	branch := opts.Branch
	if branch == "" {
		branch = git.ResolveBranch(ctx, rt.Runner)
	}
	audit(rt, "Using branch: "+branch)
	splog.Debug("Using branch %s on remote %s", branch, remote)

	text := opts.Message
	if opts.PromptForMessage {
		answer, err := rt.Prompter.Text("Commit message:")
		if err != nil {
			return nil, abort(rt, "", fmt.Sprintf("could not read commit message: %v", err))
		}
		text = answer
	}
	text = strings.TrimSpace(text)
	if text == "" {
		splog.Error("Commit message cannot be empty")
		audit(rt, "ABORTED: empty commit message")
		return nil, smartpusherrors.NewEnvironmentError("commit message cannot be empty", smartpusherrors.ErrEmptyCommitMessage)
	}

	result := &PushResult{
		Branch:        branch,
		CommitMessage: CommitMessage(text, rt.Now(), rt.Config.Commit.TimestampFormat),
	}
	splog.Newline()
	splog.Info("📝 Commit:\n%s", result.CommitMessage)
	splog.Newline()

	if err := commitAll(rt, result.CommitMessage); err != nil {
		return result, err
	}

	engine := remedy.NewEngine(rt.Runner, rt.Prompter, splog, remote, branch)
	if rt.Advisor != nil {
		engine.SetAdvisor(rt.Advisor)
	}

	push := func() git.CommandResult {
		result.Pushes++
		return git.Push(ctx, rt.Runner, remote, branch)
	}

	attempt := push()
	for {
		if attempt.Succeeded {
			return succeed(rt, result), nil
		}

		splog.Error("Push failed:")
		splog.Print(style.RenderOutput(attempt.Output))
		splog.Newline()

		outcome, err := engine.Handle(ctx, attempt)
		result.Failures = append(result.Failures, outcome.Kind)
		result.State = outcome.State
		if countsAsPush(outcome) {
			result.Pushes++
		}
		if err != nil {
			return result, abort(rt, outcome.Kind.String(), outcome.Reason)
		}

		switch outcome.State {
		case remedy.Succeeded:
			return succeed(rt, result), nil
		case remedy.RetryPush:
			splog.Info("Retrying push...")
			attempt = push()
		case remedy.Classifying:
			attempt = *outcome.Next
		default:
			if outcome.Failed != nil {
				audit(rt, "ABORTED: "+outcome.Reason)
				return result, smartpusherrors.NewCommandError(outcome.Failed.Command, outcome.Failed.Output, smartpusherrors.ErrRemedyFailed)
			}
			return result, abort(rt, outcome.Kind.String(), outcome.Reason)
		}
	}
}

// CommitMessage appends the bracketed timestamp to text
func CommitMessage(text string, now time.Time, layout string) string {
	return fmt.Sprintf("%s [%s]", text, now.Format(layout))
}

// commitAll stages everything and commits. An empty change set is not an error.
func commitAll(rt *runtime.Context, message string) error {
	ctx := rt.Context

	// Staging is unconditional; its result only matters through the commit
	git.StageAll(ctx, rt.Runner)

	commit := git.Commit(ctx, rt.Runner, message)
	if commit.Succeeded {
		return nil
	}
	if git.IsNothingToCommit(commit.Output) {
		rt.Splog.Info("Nothing to commit, pushing existing commits.")
		return nil
	}

	rt.Splog.Error("Commit failed:")
	rt.Splog.Print(style.RenderOutput(commit.Output))
	rt.Splog.Newline()
	audit(rt, "ABORTED: commit failed")
	return smartpusherrors.NewEnvironmentError("commit failed",
		smartpusherrors.NewCommandError(commit.Command, commit.Output, smartpusherrors.ErrCommitFailed))
}

// countsAsPush reports whether handling the failure ran a remedial push
func countsAsPush(outcome remedy.Outcome) bool {
	return outcome.State == remedy.Succeeded || outcome.Next != nil
}

func succeed(rt *runtime.Context, result *PushResult) *PushResult {
	result.State = remedy.Succeeded
	audit(rt, MarkerSuccess)
	rt.Splog.Success("Pushed %s", result.Branch)
	return result
}

func abort(rt *runtime.Context, kind, reason string) error {
	audit(rt, "ABORTED: "+reason)
	rt.Splog.Info("Aborted.")
	return smartpusherrors.NewAbortError(kind, reason)
}

func audit(rt *runtime.Context, text string) {
	if err := rt.Audit.Append(text); err != nil {
		rt.Splog.Warn("Could not write audit log %s: %v", rt.Audit.Path(), err)
	}
}
