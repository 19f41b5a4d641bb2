package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"smartpush.dev/smartpush/internal/git"
)

// ProgressUI shows that a command is running
type ProgressUI interface {
	// Start shows label as in progress
	Start(label string)
	// Complete replaces the in-progress line with the final status
	Complete(succeeded bool)
}

// NewProgressUI creates an animated progress UI on a terminal and a
// line-by-line one otherwise
func NewProgressUI(out io.Writer, tty bool) ProgressUI {
	if tty {
		return NewTTYProgress(out)
	}
	return NewSimpleProgress(out)
}

// ProgressRunner wraps a Runner and shows progress while network commands run.
// Local commands pass straight through.
type ProgressRunner struct {
	runner git.Runner
	ui     ProgressUI
}

// NewProgressRunner creates a new ProgressRunner
func NewProgressRunner(runner git.Runner, ui ProgressUI) *ProgressRunner {
	return &ProgressRunner{runner: runner, ui: ui}
}

// Run implements git.Runner
func (r *ProgressRunner) Run(ctx context.Context, args ...string) git.CommandResult {
	if !IsNetworkCommand(args) {
		return r.runner.Run(ctx, args...)
	}
	r.ui.Start(strings.Join(args, " "))
	result := r.runner.Run(ctx, args...)
	r.ui.Complete(result.Succeeded)
	return result
}

// IsNetworkCommand reports whether a git subcommand talks to a remote
func IsNetworkCommand(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "push", "pull", "fetch":
		return true
	}
	return false
}

// SimpleProgress prints one line per command (non-TTY)
type SimpleProgress struct {
	out   io.Writer
	label string
}

// NewSimpleProgress creates a new simple progress UI
func NewSimpleProgress(out io.Writer) *SimpleProgress {
	return &SimpleProgress{out: out}
}

func (p *SimpleProgress) Start(label string) {
	p.label = label
	_, _ = fmt.Fprintf(p.out, "  ⋯ git %s...\n", label)
}

func (p *SimpleProgress) Complete(succeeded bool) {
	icon := "✓"
	if !succeeded {
		icon = "✗"
	}
	_, _ = fmt.Fprintf(p.out, "  %s git %s\n", icon, p.label)
}

// TTYProgress draws a spinner frame while a command runs and redraws the line
// in place once it finishes. Nothing animates in the background.
type TTYProgress struct {
	out   io.Writer
	model *progressModel
}

// NewTTYProgress creates a new TTY progress UI
func NewTTYProgress(out io.Writer) *TTYProgress {
	return &TTYProgress{out: out}
}

func (p *TTYProgress) Start(label string) {
	p.model = newProgressModel(label)
	_, _ = fmt.Fprint(p.out, p.model.View())
}

func (p *TTYProgress) Complete(succeeded bool) {
	if p.model == nil {
		return
	}
	p.model.finish(succeeded)
	_, _ = fmt.Fprint(p.out, "\r"+clearLine+p.model.View()+"\n")
	p.model = nil
}

const clearLine = "\x1b[2K"

type progressModel struct {
	label     string
	spinner   spinner.Model
	done      bool
	succeeded bool
	styles    progressStyles
}

type progressStyles struct {
	doneStyle  lipgloss.Style
	errorStyle lipgloss.Style
	labelStyle lipgloss.Style
}

func newProgressModel(label string) *progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &progressModel{
		label:   label,
		spinner: s,
		styles: progressStyles{
			doneStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

func (m *progressModel) finish(succeeded bool) {
	m.done = true
	m.succeeded = succeeded
}

// View renders a single line without a trailing newline
func (m *progressModel) View() string {
	label := m.styles.labelStyle.Render("git " + m.label)
	switch {
	case !m.done:
		return fmt.Sprintf("  %s %s", m.spinner.View(), label)
	case m.succeeded:
		return fmt.Sprintf("  %s %s", m.styles.doneStyle.Render("✓"), label)
	default:
		return fmt.Sprintf("  %s %s", m.styles.errorStyle.Render("✗"), label)
	}
}
