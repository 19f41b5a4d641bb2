package testhelpers

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// ErrScriptedFailure is the error returned for scripted failures
var ErrScriptedFailure = errors.New("exit status 1")

// ScriptedResponse is the canned result for one invocation
type ScriptedResponse struct {
	Output string
	Fail   bool
}

// Invocation records one call made to a ScriptedExecutor
type Invocation struct {
	Dir  string
	Name string
	Args []string
}

// Line returns the invocation arguments joined by spaces
func (i Invocation) Line() string {
	return strings.Join(i.Args, " ")
}

type script struct {
	prefix    string
	responses []ScriptedResponse
}

// ScriptedExecutor is a git.Executor that returns canned results.
// Responses are matched by argument prefix ("push", "commit -m") and consumed
// in order; the last response for a prefix repeats once the queue is drained.
// Unmatched invocations succeed with empty output.
type ScriptedExecutor struct {
	mu          sync.Mutex
	scripts     []*script
	invocations []Invocation
}

// NewScriptedExecutor creates an empty ScriptedExecutor
func NewScriptedExecutor() *ScriptedExecutor {
	return &ScriptedExecutor{}
}

// On queues responses for invocations whose arguments start with prefix.
// The first matching prefix registered wins.
func (e *ScriptedExecutor) On(prefix string, responses ...ScriptedResponse) *ScriptedExecutor {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range e.scripts {
		if s.prefix == prefix {
			s.responses = append(s.responses, responses...)
			return e
		}
	}
	e.scripts = append(e.scripts, &script{prefix: prefix, responses: responses})
	return e
}

// Succeed queues a successful response
func (e *ScriptedExecutor) Succeed(prefix, output string) *ScriptedExecutor {
	return e.On(prefix, ScriptedResponse{Output: output})
}

// Fail queues a failing response
func (e *ScriptedExecutor) Fail(prefix, output string) *ScriptedExecutor {
	return e.On(prefix, ScriptedResponse{Output: output, Fail: true})
}

// Execute implements git.Executor.
func (e *ScriptedExecutor) Execute(_ context.Context, dir, name string, args ...string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.invocations = append(e.invocations, Invocation{Dir: dir, Name: name, Args: append([]string(nil), args...)})

	line := strings.Join(args, " ")
	for _, s := range e.scripts {
		if !strings.HasPrefix(line, s.prefix) || len(s.responses) == 0 {
			continue
		}
		resp := s.responses[0]
		if len(s.responses) > 1 {
			s.responses = s.responses[1:]
		}
		if resp.Fail {
			return resp.Output, ErrScriptedFailure
		}
		return resp.Output, nil
	}
	return "", nil
}

// Invocations returns every recorded call in order
func (e *ScriptedExecutor) Invocations() []Invocation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Invocation(nil), e.invocations...)
}

// Lines returns the argument line of every recorded call in order
func (e *ScriptedExecutor) Lines() []string {
	invocations := e.Invocations()
	lines := make([]string, len(invocations))
	for i, inv := range invocations {
		lines[i] = inv.Line()
	}
	return lines
}

// Count returns how many recorded calls start with prefix
func (e *ScriptedExecutor) Count(prefix string) int {
	n := 0
	for _, line := range e.Lines() {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}
