package app

import (
	"testing"

	"github.com/dshills/nodepat/internal/renderer/backend"
)

func keyEvent(key backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: key}
}

func runeEvent(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func TestLinePromptEditing(t *testing.T) {
	p := newLinePrompt("Find:", "héllo", nil)
	if p.cursor != 5 {
		t.Fatalf("cursor = %d, want 5", p.cursor)
	}

	steps := []struct {
		ev     backend.Event
		text   string
		cursor int
	}{
		{keyEvent(backend.KeyBackspace), "héll", 4},
		{keyEvent(backend.KeyHome), "héll", 0},
		{runeEvent('>'), ">héll", 1},
		{keyEvent(backend.KeyRight), ">héll", 2},
		{keyEvent(backend.KeyDelete), ">hll", 2},
		{keyEvent(backend.KeyLeft), ">hll", 1},
		{keyEvent(backend.KeyLeft), ">hll", 0},
		{keyEvent(backend.KeyLeft), ">hll", 0},
		{keyEvent(backend.KeyBackspace), ">hll", 0},
		{keyEvent(backend.KeyEnd), ">hll", 4},
		{keyEvent(backend.KeyDelete), ">hll", 4},
		{keyEvent(backend.KeyCtrlU), "", 0},
	}
	for i, step := range steps {
		if got := p.handleKey(step.ev); got != promptPending {
			t.Fatalf("step %d: result = %v, want pending", i, got)
		}
		if p.Text() != step.text || p.cursor != step.cursor {
			t.Errorf("step %d: text %q cursor %d, want %q %d", i, p.Text(), p.cursor, step.text, step.cursor)
		}
	}
}

func TestLinePromptSubmitAndCancel(t *testing.T) {
	p := newLinePrompt("Go to line:", "12", nil)
	if got := p.handleKey(keyEvent(backend.KeyEnter)); got != promptSubmitted {
		t.Errorf("Enter result = %v, want submitted", got)
	}
	if got := p.handleKey(keyEvent(backend.KeyEscape)); got != promptCancelled {
		t.Errorf("Escape result = %v, want cancelled", got)
	}
	if got := p.handleKey(keyEvent(backend.KeyCtrlQ)); got != promptCancelled {
		t.Errorf("Ctrl+Q result = %v, want cancelled", got)
	}
}

func TestKeyPrompt(t *testing.T) {
	p := newKeyPrompt("Discard? (y/n)", nil)

	if got := p.handleKey(keyEvent(backend.KeyEnter)); got != promptPending {
		t.Errorf("Enter result = %v, want pending", got)
	}
	if got := p.handleKey(runeEvent('y')); got != promptSubmitted {
		t.Errorf("rune result = %v, want submitted", got)
	}
	if p.Text() != "y" {
		t.Errorf("Text() = %q, want y", p.Text())
	}

	p.insert("pasted")
	if p.Text() != "y" {
		t.Errorf("paste into key prompt changed text to %q", p.Text())
	}
}

func TestPromptInsert(t *testing.T) {
	p := newLinePrompt("Open:", "/docs/", nil)
	p.cursor = 1
	p.insert("home/\r\nignored")
	if p.Text() != "/home/docs/" {
		t.Errorf("Text() = %q", p.Text())
	}
	if p.cursor != 6 {
		t.Errorf("cursor = %d, want 6", p.cursor)
	}
}

func TestPromptView(t *testing.T) {
	p := newLinePrompt("Find:", "abc", nil)
	p.handleKey(keyEvent(backend.KeyLeft))

	v := p.view()
	if v.Label != "Find:" || v.Input != "abc" || v.Cursor != 2 {
		t.Errorf("view() = %+v", v)
	}
}
