package app

import (
	"strings"

	"github.com/dshills/nodepat/internal/renderer"
	"github.com/dshills/nodepat/internal/renderer/backend"
)

// promptResult is the outcome of a key pressed while a prompt is open.
type promptResult uint8

const (
	promptPending promptResult = iota
	promptSubmitted
	promptCancelled
)

// prompt is a single-line input shown on the bottom line.
//
// A line prompt is answered with Enter. A key prompt is answered by the
// first character typed, for yes/no questions and numbered choices.
type prompt struct {
	label  string
	input  []rune
	cursor int

	keyAnswer bool
	submit    func(answer string) error
}

// newLinePrompt creates a prompt answered with Enter, starting with initial
// selected for editing at its end.
func newLinePrompt(label, initial string, submit func(string) error) *prompt {
	p := &prompt{
		label:  label,
		input:  []rune(initial),
		submit: submit,
	}
	p.cursor = len(p.input)
	return p
}

// newKeyPrompt creates a prompt answered by a single key.
func newKeyPrompt(label string, submit func(string) error) *prompt {
	return &prompt{
		label:     label,
		keyAnswer: true,
		submit:    submit,
	}
}

// Text returns the current input.
func (p *prompt) Text() string {
	return string(p.input)
}

// view returns the prompt as drawn by the renderer.
func (p *prompt) view() *renderer.Prompt {
	return &renderer.Prompt{Label: p.label, Input: p.Text(), Cursor: p.cursor}
}

// handleKey edits the input. It reports whether the prompt was submitted
// or cancelled.
func (p *prompt) handleKey(ev backend.Event) promptResult {
	if ev.Key == backend.KeyEscape || ev.Key == backend.KeyCtrlQ {
		return promptCancelled
	}

	if p.keyAnswer {
		if ev.Key == backend.KeyRune {
			p.input = []rune{ev.Rune}
			return promptSubmitted
		}
		return promptPending
	}

	switch ev.Key {
	case backend.KeyEnter:
		return promptSubmitted
	case backend.KeyRune:
		p.insert(string(ev.Rune))
	case backend.KeyBackspace:
		if p.cursor > 0 {
			p.input = append(p.input[:p.cursor-1], p.input[p.cursor:]...)
			p.cursor--
		}
	case backend.KeyDelete:
		if p.cursor < len(p.input) {
			p.input = append(p.input[:p.cursor], p.input[p.cursor+1:]...)
		}
	case backend.KeyLeft:
		p.cursor = max(p.cursor-1, 0)
	case backend.KeyRight:
		p.cursor = min(p.cursor+1, len(p.input))
	case backend.KeyHome:
		p.cursor = 0
	case backend.KeyEnd:
		p.cursor = len(p.input)
	case backend.KeyCtrlU:
		p.input = nil
		p.cursor = 0
	}
	return promptPending
}

// insert adds text at the cursor. Line breaks end the input, so only the
// first line of pasted text is kept.
func (p *prompt) insert(text string) {
	if p.keyAnswer {
		return
	}
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	r := []rune(text)
	rest := append(r, p.input[p.cursor:]...)
	p.input = append(p.input[:p.cursor], rest...)
	p.cursor += len(r)
}
