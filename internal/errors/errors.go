// Package errors provides sentinel errors and custom error types for the smartpush application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrEmptyCommitMessage indicates that the user supplied no commit message
	ErrEmptyCommitMessage = errors.New("commit message cannot be empty")

	// ErrAborted indicates that the session ended without a successful push
	ErrAborted = errors.New("aborted")

	// ErrCommitFailed indicates that the commit step failed for a reason other than an empty change set
	ErrCommitFailed = errors.New("commit failed")

	// ErrRemedyFailed indicates that a remedial command failed (for example a rebase conflict)
	ErrRemedyFailed = errors.New("remedy failed")

	// ErrInvalidSelection indicates a menu answer that is not a number in range
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInteractiveDisabled is returned when prompts are disabled via SMARTPUSH_TEST_NO_INTERACTIVE
	ErrInteractiveDisabled = errors.New("interactive prompts are disabled (SMARTPUSH_TEST_NO_INTERACTIVE is set)")
)

// Exit codes returned by the smartpush binary.
const (
	ExitSuccess          = 0
	ExitAborted          = 1
	ExitEnvironmentError = 2
)

// CommandError represents an external command whose failure ends the session
type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if e.Output != "" {
		msg += fmt.Sprintf("\n%s", e.Output)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError wrapping the given sentinel
func NewCommandError(command, output string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Output:  output,
		Err:     err,
	}
}

// AbortError represents a session that ended in the Aborted state
type AbortError struct {
	Kind   string
	Reason string
}

func (e *AbortError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("aborted after %s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("aborted: %s", e.Reason)
}

// Is returns true if the target error is ErrAborted
func (e *AbortError) Is(target error) bool {
	return target == ErrAborted
}

// NewAbortError creates a new AbortError
func NewAbortError(kind, reason string) *AbortError {
	return &AbortError{Kind: kind, Reason: reason}
}

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewEnvironmentError wraps an error that prevented the session from starting or committing.
func NewEnvironmentError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitEnvironmentError, Message: message, Cause: cause}
}

// GetExitCode extracts the exit code from an error.
// Aborted sessions exit 1; environment problems exit 2; anything else untyped exits 2.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, ErrAborted) || errors.Is(err, ErrRemedyFailed) {
		return ExitAborted
	}

	return ExitEnvironmentError
}
