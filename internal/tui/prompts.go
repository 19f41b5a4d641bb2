package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	smartpusherrors "smartpush.dev/smartpush/internal/errors"
	"smartpush.dev/smartpush/internal/remedy"
	"smartpush.dev/smartpush/internal/tui/style"
)

// ErrCanceled is returned when the user cancels a prompt with Ctrl+C or Esc
var ErrCanceled = errors.New("canceled")

// Prompt modes accepted by NewPrompter
const (
	PromptModeAuto  = "auto"
	PromptModeNever = "never"
)

// Prompter asks the user for a commit message and for remediation choices
type Prompter interface {
	remedy.Prompter
	Text(prompt string) (string, error)
}

// NewPrompter returns a terminal prompter when mode is auto and a TTY is
// available, and a line prompter over in/out otherwise.
func NewPrompter(mode string, in io.Reader, out io.Writer) Prompter {
	if mode != PromptModeNever && IsTTY() {
		return &TerminalPrompter{out: out}
	}
	return NewLinePrompter(in, out)
}

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("SMARTPUSH_TEST_NO_INTERACTIVE") != "" {
		return smartpusherrors.ErrInteractiveDisabled
	}
	return nil
}

// LinePrompter reads answers one line at a time. Invalid menu answers are
// rejected and asked again until input ends.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Text prints prompt and returns the trimmed line typed by the user.
func (p *LinePrompter) Text(prompt string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s ", prompt)
	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Choose implements remedy.Prompter.
func (p *LinePrompter) Choose(choice remedy.Choice) (int, error) {
	_, _ = fmt.Fprint(p.out, style.RenderChoice(choice, true))
	for {
		_, _ = fmt.Fprint(p.out, "Choose a number: ")
		line, err := p.readLine()
		if err != nil {
			return 0, fmt.Errorf("failed to read selection: %w", err)
		}
		idx, err := remedy.ValidateSelection(line, len(choice.Options))
		if err == nil {
			return idx, nil
		}
		_, _ = fmt.Fprintln(p.out, "Invalid choice.")
	}
}

// TerminalPrompter uses survey for menus and a bubbletea text input for free text
type TerminalPrompter struct {
	out io.Writer
}

// Choose implements remedy.Prompter with an arrow-key menu.
func (p *TerminalPrompter) Choose(choice remedy.Choice) (int, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return 0, err
	}

	_, _ = fmt.Fprint(p.out, style.RenderChoice(choice, false))

	options := make([]string, len(choice.Options))
	for i, opt := range choice.Options {
		options[i] = fmt.Sprintf("%d. %s", i+1, opt)
	}

	var idx int
	prompt := &survey.Select{
		Message: "Choose an option:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &idx); err != nil {
		return 0, selectionError(err)
	}
	return idx, nil
}

// selectionError keeps ErrCanceled for Ctrl+C and wraps every other failure
func selectionError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCanceled
	}
	return fmt.Errorf("failed to read selection: %w", err)
}

// Text implements Prompter with a single-line text input.
func (p *TerminalPrompter) Text(prompt string) (string, error) {
	value, err := PromptTextInput(prompt, "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// textInputModel is a simple text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s\n%s\n\n(Press Enter to submit, Ctrl+C to cancel)", m.prompt, m.textInput.View()))
}

// PromptTextInput prompts the user for text input
func PromptTextInput(prompt, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	ti := textinput.New()
	ti.SetValue(defaultValue)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80

	m := textInputModel{
		textInput: ti,
		prompt:    prompt,
	}

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(textInputModel); ok {
		if finalModel.err != nil {
			return "", finalModel.err
		}
		return finalModel.textInput.Value(), nil
	}

	return "", fmt.Errorf("unexpected model type")
}
