package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"smartpush.dev/smartpush/internal/audit"
)

// DefaultBinary is the git executable used when none is configured
const DefaultBinary = "git"

// CommandResult is the immutable outcome of one external invocation
type CommandResult struct {
	Command   string
	Succeeded bool
	Output    string
	Timestamp time.Time
}

// Executor runs an external process and returns its combined output.
// A nil error means the process exited with status 0.
type Executor interface {
	Execute(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecExecutor is the default Executor backed by os/exec
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Execute implements Executor. Standard output comes first, then standard error.
func (e *ExecExecutor) Execute(ctx context.Context, dir, name string, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	combined := stdout.String() + stderr.String()

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		// The binary never started; surface why so the classifier and the log see it
		combined += execErr.Error()
	}
	return combined, err
}

// Runner is the single point of contact with the external git client.
// All other components invoke commands through this interface.
type Runner interface {
	Run(ctx context.Context, args ...string) CommandResult
}

// Warner receives audit log failures. tui.Splog satisfies it.
type Warner interface {
	Warn(format string, args ...interface{})
}

// CommandRunner executes git and records every invocation in the audit log
type CommandRunner struct {
	binary     string
	workingDir string
	executor   Executor
	log        *audit.Log
	warn       Warner
	now        func() time.Time
}

// RunnerOption configures a CommandRunner
type RunnerOption func(*CommandRunner)

// WithBinary overrides the git executable
func WithBinary(binary string) RunnerOption {
	return func(r *CommandRunner) {
		if binary != "" {
			r.binary = binary
		}
	}
}

// WithExecutor replaces the process executor, used by tests
func WithExecutor(executor Executor) RunnerOption {
	return func(r *CommandRunner) {
		r.executor = executor
	}
}

// WithWorkingDir runs commands in dir instead of the process working directory
func WithWorkingDir(dir string) RunnerOption {
	return func(r *CommandRunner) {
		r.workingDir = dir
	}
}

// WithWarner reports audit log write failures
func WithWarner(w Warner) RunnerOption {
	return func(r *CommandRunner) {
		r.warn = w
	}
}

// WithClock sets the clock used for CommandResult timestamps
func WithClock(now func() time.Time) RunnerOption {
	return func(r *CommandRunner) {
		r.now = now
	}
}

// NewCommandRunner creates a new CommandRunner that appends to log
func NewCommandRunner(log *audit.Log, opts ...RunnerOption) *CommandRunner {
	r := &CommandRunner{
		binary:   DefaultBinary,
		executor: NewExecExecutor(),
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes git with args. The command line is logged before the process
// starts and the trimmed output is logged before the result is returned, on
// both the success and failure paths. No timeout is applied; only ctx cancels.
func (r *CommandRunner) Run(ctx context.Context, args ...string) CommandResult {
	command := FormatCommand(r.binary, args...)
	r.record(r.log.Command(command))

	output, err := r.executor.Execute(ctx, r.workingDir, r.binary, args...)
	output = strings.TrimSpace(output)
	r.record(r.log.Append(output))

	return CommandResult{
		Command:   command,
		Succeeded: err == nil,
		Output:    output,
		Timestamp: r.now(),
	}
}

func (r *CommandRunner) record(err error) {
	if err != nil && r.warn != nil {
		r.warn.Warn("Could not write audit log %s: %v", r.log.Path(), err)
	}
}

// FormatCommand renders a command line the way a user would type it.
// Arguments containing whitespace or quotes are double-quoted.
func FormatCommand(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'") {
			parts = append(parts, strconv.Quote(arg))
			continue
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
