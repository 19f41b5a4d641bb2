// Package runtime provides the session context that is built once per
// invocation and threaded through the push flow, so no component relies on
// package-level state.
package runtime

import (
	"context"
	"os"
	"time"

	"smartpush.dev/smartpush/internal/audit"
	"smartpush.dev/smartpush/internal/config"
	"smartpush.dev/smartpush/internal/git"
	"smartpush.dev/smartpush/internal/github"
	"smartpush.dev/smartpush/internal/output"
	"smartpush.dev/smartpush/internal/remedy"
	"smartpush.dev/smartpush/internal/tui"
)

// Context holds everything a session needs
type Context struct {
	// Context cancels blocking work when the process is interrupted
	Context  context.Context
	Config   *config.Config
	Splog    *tui.Splog
	Prompter tui.Prompter
	// WorkDir is where the session was started
	WorkDir  string
	// RepoRoot is set by OpenRepo
	RepoRoot string
	Audit    *audit.Log
	Runner   git.Runner
	// Advisor is nil when GitHub diagnostics are disabled or no token is available
	Advisor  remedy.Advisor
	// Executor overrides process execution; nil runs git for real
	Executor git.Executor
	// Progress shows network commands while they run; nil disables it
	Progress output.ProgressUI
	// Now is the session clock
	Now      func() time.Time
}

// NewContext creates a context rooted at workDir. The audit log lives at the
// repository root so a run from a subdirectory writes one log; outside a
// repository it falls back to workDir.
func NewContext(ctx context.Context, cfg *config.Config, splog *tui.Splog, prompter tui.Prompter, workDir string) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	c := &Context{
		Context:  ctx,
		Config:   cfg,
		Splog:    splog,
		Prompter: prompter,
		WorkDir:  workDir,
		Now:      time.Now,
	}

	auditDir := workDir
	if root, err := git.FindRepoRoot(workDir); err == nil {
		auditDir = root
	}
	c.Audit = c.newAuditLog(auditDir)
	return c
}

// newAuditLog stamps entries with the session clock, read at write time so a
// clock replaced after construction still applies.
func (c *Context) newAuditLog(dir string) *audit.Log {
	return audit.NewWithClock(c.Config.AuditPath(dir), func() time.Time { return c.Now() })
}

// OpenRepo locates the repository containing WorkDir and wires the audit log,
// the command runner and the optional GitHub advisor to it.
func (c *Context) OpenRepo() error {
	root, err := git.FindRepoRoot(c.WorkDir)
	if err != nil {
		return err
	}
	c.RepoRoot = root
	c.Audit = c.newAuditLog(root)

	opts := []git.RunnerOption{
		git.WithBinary(c.Config.Git.Binary),
		git.WithWorkingDir(root),
		git.WithWarner(c.Splog),
		git.WithClock(c.Now),
	}
	if c.Executor != nil {
		opts = append(opts, git.WithExecutor(c.Executor))
	}
	c.Runner = git.NewCommandRunner(c.Audit, opts...)
	if c.Progress != nil {
		c.Runner = output.NewProgressRunner(c.Runner, c.Progress)
	}

	if c.Advisor == nil && c.Config.Diagnose.GitHub {
		c.Advisor = c.newAdvisor()
	}
	return nil
}

func (c *Context) newAdvisor() remedy.Advisor {
	token, err := github.TokenFromEnv()
	if err != nil {
		c.Splog.Debug("GitHub diagnostics disabled: %v", err)
		return nil
	}
	remoteURL, err := git.RemoteURL(c.RepoRoot, c.Config.Git.Remote)
	if err != nil {
		c.Splog.Debug("GitHub diagnostics disabled: %v", err)
		return nil
	}
	return &github.Advisor{
		Diagnoser: github.NewClient(token),
		RemoteURL: remoteURL,
		Debug:     c.Splog.Debug,
	}
}

// IsDebug returns true if DEBUG is set in the environment
func IsDebug() bool {
	return os.Getenv("DEBUG") != ""
}
