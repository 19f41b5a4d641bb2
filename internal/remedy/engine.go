package remedy

import (
	"context"
	"fmt"

	"smartpush.dev/smartpush/internal/classify"
	"smartpush.dev/smartpush/internal/git"
)

// Prompter presents a Choice and returns the 0-based index of the chosen option.
type Prompter interface {
	Choose(choice Choice) (int, error)
}

// Output is the console the engine reports to. tui.Splog satisfies it.
type Output interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Tip(format string, args ...interface{})
}

// Advisor adds kind-specific hints, for example remote diagnostics.
type Advisor interface {
	Advise(ctx context.Context, kind classify.FailureKind) []string
}

// Outcome is where one failure left the state machine
type Outcome struct {
	State State
	Kind  classify.FailureKind
	// Trace lists every state visited while handling the failure, in order
	Trace []State
	// Reason explains an Aborted outcome
	Reason string
	// Next holds a failed remedial push that must be classified next
	Next *git.CommandResult
	// Failed holds the remedial command that failed, if any
	Failed *git.CommandResult
}

// Engine walks a push failure through classification, the user's choice and the remedy
type Engine struct {
	runner   git.Runner
	prompter Prompter
	out      Output
	advisor  Advisor
	remote   string
	branch   string
}

// NewEngine creates an engine that pushes branch to remote.
func NewEngine(runner git.Runner, prompter Prompter, out Output, remote, branch string) *Engine {
	return &Engine{
		runner:   runner,
		prompter: prompter,
		out:      out,
		remote:   remote,
		branch:   branch,
	}
}

// SetAdvisor installs an optional advisor consulted before the menu is shown.
func (e *Engine) SetAdvisor(a Advisor) {
	e.advisor = a
}

type machine struct {
	outcome Outcome
}

func (m *machine) enter(s State) {
	m.outcome.State = s
	m.outcome.Trace = append(m.outcome.Trace, s)
}

// Handle classifies one failed push and runs the remediation the user picks.
// The returned error is non-nil only when the prompt itself fails; the
// outcome is Aborted in that case.
func (e *Engine) Handle(ctx context.Context, failure git.CommandResult) (Outcome, error) {
	m := &machine{}
	m.enter(Classifying)

	kind := classify.Classify(failure.Output)
	m.outcome.Kind = kind
	remediation := Lookup(kind)

	if e.advisor != nil {
		for _, hint := range e.advisor.Advise(ctx, kind) {
			e.out.Tip("%s", hint)
		}
	}

	m.enter(PresentingChoice)
	idx, err := e.prompter.Choose(remediation.Choice())
	if err != nil {
		m.outcome.Reason = fmt.Sprintf("prompt failed: %v", err)
		m.enter(Aborted)
		return m.outcome, err
	}
	if idx < 0 || idx >= len(remediation.Options) {
		m.outcome.Reason = fmt.Sprintf("option %d out of range", idx+1)
		m.enter(Aborted)
		return m.outcome, nil
	}

	option := remediation.Options[idx]
	if option.Action == ActionAbort {
		if !remediation.Retryable() {
			e.out.Tip("%s", remediation.RecommendedAction)
		}
		m.outcome.Reason = remediation.Title
		m.enter(Aborted)
		return m.outcome, nil
	}

	m.enter(ExecutingRemedy)
	e.execute(ctx, m, option.Action)
	return m.outcome, nil
}

func (e *Engine) execute(ctx context.Context, m *machine, action Action) {
	switch action {
	case ActionStash:
		if !e.check(m, git.Stash(ctx, e.runner)) {
			return
		}
		m.enter(RetryPush)

	case ActionSetUpstream:
		if !e.check(m, git.ForceBranchName(ctx, e.runner, e.branch)) {
			return
		}
		push := git.PushUpstream(ctx, e.runner, e.remote, e.branch)
		if push.Succeeded {
			m.enter(Succeeded)
			return
		}
		// The remedial push is the retry; its failure is classified afresh
		m.outcome.Next = &push
		m.enter(Classifying)

	case ActionPullRebase:
		result := git.PullRebase(ctx, e.runner, e.remote, e.branch)
		if !result.Succeeded {
			e.out.Warn("Conflict while rebasing. Resolve it manually, then run git rebase --continue.")
			e.fail(m, result)
			return
		}
		m.enter(RetryPush)

	case ActionRetry:
		m.enter(RetryPush)

	default:
		m.outcome.Reason = fmt.Sprintf("unsupported action %s", action)
		m.enter(Aborted)
	}
}

// check aborts the machine when a remedial command failed.
func (e *Engine) check(m *machine, result git.CommandResult) bool {
	if result.Succeeded {
		return true
	}
	e.fail(m, result)
	return false
}

func (e *Engine) fail(m *machine, result git.CommandResult) {
	e.out.Error("%s failed:\n%s", result.Command, result.Output)
	m.outcome.Failed = &result
	m.outcome.Reason = fmt.Sprintf("%s failed", result.Command)
	m.enter(Aborted)
}
