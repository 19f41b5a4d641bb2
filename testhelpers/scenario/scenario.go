// Package scenario combines a Scene, a scripted executor, a scripted prompter
// and a runtime Context into a terse API for push session tests.
package scenario

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smartpush.dev/smartpush/internal/config"
	"smartpush.dev/smartpush/internal/runtime"
	"smartpush.dev/smartpush/internal/tui"
	"smartpush.dev/smartpush/testhelpers"
)

// FixedTime is the clock every scenario runs at
var FixedTime = time.Date(2024, 5, 17, 9, 30, 0, 0, time.Local)

// Scenario is a push session wired to fakes. Git commands go to Executor
// unless the scenario was created with NewRealScenario.
type Scenario struct {
	T        *testing.T
	Scene    *testhelpers.Scene
	Executor *testhelpers.ScriptedExecutor
	Prompter *testhelpers.ScriptedPrompter
	Output   *bytes.Buffer
	Context  *runtime.Context
}

// NewScenario creates a scenario whose git commands are scripted.
// NOTE: Not safe for parallel tests as NewScene changes the working directory.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()
	s := newScenario(t, testhelpers.NewScene(t, setup).Dir)
	s.Executor = testhelpers.NewScriptedExecutor()
	s.Context.Executor = s.Executor
	return s
}

// NewRealScenario creates a scenario that runs the real git binary.
func NewRealScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()
	return newScenario(t, testhelpers.NewScene(t, setup).Dir)
}

// NewOutsideRepoScenario creates a scenario in a directory that is not a repository.
func NewOutsideRepoScenario(t *testing.T) *Scenario {
	t.Helper()
	s := newScenario(t, testhelpers.NewNonRepoDir(t))
	s.Executor = testhelpers.NewScriptedExecutor()
	s.Context.Executor = s.Executor
	return s
}

func newScenario(t *testing.T, dir string) *Scenario {
	t.Setenv("SMARTPUSH_TEST_NO_INTERACTIVE", "1")

	cfg := config.Default()
	cfg.Log.DiagnosticFile = ""
	cfg.Diagnose.GitHub = false

	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{Writer: out})
	require.NoError(t, err)

	prompter := testhelpers.NewScriptedPrompter()
	ctx := runtime.NewContext(context.Background(), cfg, splog, prompter, dir)
	ctx.Now = func() time.Time { return FixedTime }

	s := &Scenario{
		T:        t,
		Prompter: prompter,
		Output:   out,
		Context:  ctx,
	}
	if dir != "" {
		s.Scene = &testhelpers.Scene{Dir: dir, Repo: &testhelpers.GitRepo{Dir: dir}}
	}
	return s
}

// Say queues answers for text prompts such as the commit message.
func (s *Scenario) Say(answers ...string) *Scenario {
	s.Prompter.WithText(answers...)
	return s
}

// Answer queues menu answers (0-based) for the remediation prompts.
func (s *Scenario) Answer(choices ...int) *Scenario {
	s.Prompter.WithChoice(choices...)
	return s
}

// AuditPath returns the audit log the session writes to.
func (s *Scenario) AuditPath() string {
	return filepath.Join(s.Scene.Dir, s.Context.Config.Audit.File)
}

// Commands returns the command lines recorded in the audit log.
func (s *Scenario) Commands() []string {
	s.T.Helper()
	return testhelpers.AuditCommands(s.T, s.AuditPath())
}
