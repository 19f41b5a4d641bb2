package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpush.dev/smartpush/internal/remedy"
)

var testChoice = remedy.Choice{
	Title:             "Remote has newer commits",
	Description:       "The remote branch contains commits you do not have locally.",
	RecommendedAction: "Rebase your commits onto the remote branch.",
	Options:           []string{"Pull with rebase and retry the push", "Abort"},
}

func TestLinePrompterChoose(t *testing.T) {
	t.Run("valid answer", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("2\n"), &out)

		idx, err := p.Choose(testChoice)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Contains(t, out.String(), "Remote has newer commits")
		assert.Contains(t, out.String(), "1. Pull with rebase and retry the push")
		assert.Contains(t, out.String(), "2. Abort")
		assert.NotContains(t, out.String(), "Invalid choice.")
	})

	t.Run("re-prompts until the answer is valid", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("\nx\n0\n3\n1\n"), &out)

		idx, err := p.Choose(testChoice)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
		assert.Equal(t, 4, strings.Count(out.String(), "Invalid choice."))
		assert.Equal(t, 5, strings.Count(out.String(), "Choose a number: "))
	})

	t.Run("last line without newline is accepted", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("1"), &bytes.Buffer{})

		idx, err := p.Choose(testChoice)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	})

	t.Run("end of input is an error", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("nope\n"), &bytes.Buffer{})

		_, err := p.Choose(testChoice)
		require.Error(t, err)
	})
}

func TestLinePrompterText(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("  fix bug  \r\nsecond\n"), &out)

	text, err := p.Text("Commit message:")
	require.NoError(t, err)
	assert.Equal(t, "fix bug", text)
	assert.Equal(t, "Commit message: ", out.String())

	text, err = p.Text("Again:")
	require.NoError(t, err)
	assert.Equal(t, "second", text)

	_, err = p.Text("More:")
	require.Error(t, err)
}

func TestNewPrompter(t *testing.T) {
	p := NewPrompter(PromptModeNever, strings.NewReader(""), &bytes.Buffer{})
	_, ok := p.(*LinePrompter)
	assert.True(t, ok)
}

func TestTerminalPrompterDisabled(t *testing.T) {
	t.Setenv("SMARTPUSH_TEST_NO_INTERACTIVE", "1")

	p := &TerminalPrompter{out: &bytes.Buffer{}}
	_, err := p.Choose(testChoice)
	require.Error(t, err)

	_, err = p.Text("Commit message:")
	require.Error(t, err)
}

func TestSelectionError(t *testing.T) {
	require.ErrorIs(t, selectionError(terminal.InterruptErr), ErrCanceled)

	readErr := errors.New("read /dev/tty: input/output error")
	err := selectionError(readErr)
	require.ErrorIs(t, err, readErr)
	require.NotErrorIs(t, err, ErrCanceled)
	require.Contains(t, err.Error(), "failed to read selection")
}
