package testhelpers

import (
	"errors"
	"sync"

	"smartpush.dev/smartpush/internal/remedy"
)

// ErrNoScriptedAnswer is returned when a ScriptedPrompter runs out of answers
var ErrNoScriptedAnswer = errors.New("no scripted answer left")

// ScriptedPrompter answers prompts from queues and records every Choice shown
type ScriptedPrompter struct {
	mu      sync.Mutex
	texts   []string
	choices []int
	shown   []remedy.Choice
	asked   []string
}

// NewScriptedPrompter creates a ScriptedPrompter with queued menu answers (0-based)
func NewScriptedPrompter(choices ...int) *ScriptedPrompter {
	return &ScriptedPrompter{choices: choices}
}

// WithText queues answers for Text prompts
func (p *ScriptedPrompter) WithText(answers ...string) *ScriptedPrompter {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.texts = append(p.texts, answers...)
	return p
}

// WithChoice queues menu answers (0-based)
func (p *ScriptedPrompter) WithChoice(choices ...int) *ScriptedPrompter {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.choices = append(p.choices, choices...)
	return p
}

// Choose implements remedy.Prompter.
func (p *ScriptedPrompter) Choose(choice remedy.Choice) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shown = append(p.shown, choice)
	if len(p.choices) == 0 {
		return 0, ErrNoScriptedAnswer
	}
	idx := p.choices[0]
	p.choices = p.choices[1:]
	return idx, nil
}

// Text implements tui.Prompter.
func (p *ScriptedPrompter) Text(prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.asked = append(p.asked, prompt)
	if len(p.texts) == 0 {
		return "", ErrNoScriptedAnswer
	}
	answer := p.texts[0]
	p.texts = p.texts[1:]
	return answer, nil
}

// Shown returns every Choice presented, in order
func (p *ScriptedPrompter) Shown() []remedy.Choice {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]remedy.Choice(nil), p.shown...)
}

// Asked returns every Text prompt, in order
func (p *ScriptedPrompter) Asked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.asked...)
}
