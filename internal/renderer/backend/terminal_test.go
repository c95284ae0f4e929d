package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/nodepat/internal/renderer/core"
)

func newTestTerminal(t *testing.T, width, height int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	term, sim := NewSimulation(width, height)
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(term.Shutdown)
	return term, sim
}

// pollType returns the next event of type want, skipping any others such
// as an initial resize.
func pollType(term *Terminal, want EventType) Event {
	for {
		if ev := term.PollEvent(); ev.Type == want || ev.Type == EventNone {
			return ev
		}
	}
}

func TestTerminalSize(t *testing.T) {
	term, _ := newTestTerminal(t, 40, 12)
	w, h := term.Size()
	if w != 40 || h != 12 {
		t.Errorf("Size() = %dx%d, want 40x12", w, h)
	}
}

func TestTerminalSetGetCell(t *testing.T) {
	term, _ := newTestTerminal(t, 10, 3)
	style := core.DefaultStyle().
		WithForeground(core.ColorFromRGB(255, 255, 255)).
		WithBackground(core.MustHex("#1e1e1e")).
		Bold()

	term.SetCell(2, 1, core.Cell{Grapheme: "x", Width: 1, Style: style})

	got := term.GetCell(2, 1)
	if got.Grapheme != "x" {
		t.Errorf("Grapheme = %q, want %q", got.Grapheme, "x")
	}
	if got.Style.Background != core.ColorFromRGB(30, 30, 30) {
		t.Errorf("Background = %v, want #1E1E1E", got.Style.Background)
	}
	if !got.Style.Attributes.Has(core.AttrBold) {
		t.Error("expected bold attribute")
	}
}

func TestTerminalCombiningGrapheme(t *testing.T) {
	term, _ := newTestTerminal(t, 10, 1)
	term.SetCell(0, 0, core.Cell{Grapheme: "é", Width: 1, Style: core.DefaultStyle()})

	if got := term.GetCell(0, 0).Grapheme; got != "é" {
		t.Errorf("Grapheme = %q, want e + combining acute", got)
	}
}

func TestTerminalFill(t *testing.T) {
	term, _ := newTestTerminal(t, 5, 3)
	term.Fill(core.ScreenRect{Top: -1, Left: 1, Bottom: 2, Right: 99}, core.Cell{Grapheme: "#", Width: 1})

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			want := " "
			if y < 2 && x >= 1 {
				want = "#"
			}
			if got := term.GetCell(x, y).Grapheme; got != want {
				t.Errorf("cell(%d,%d) = %q, want %q", x, y, got, want)
			}
		}
	}
}

func TestTerminalPollKey(t *testing.T) {
	term, sim := newTestTerminal(t, 10, 3)

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want Event
	}{
		{"rune", tcell.KeyRune, 'a', tcell.ModNone, Event{Type: EventKey, Key: KeyRune, Rune: 'a'}},
		{"ctrl+s", tcell.KeyCtrlS, 's', tcell.ModCtrl, Event{Type: EventKey, Key: KeyCtrlS, Rune: 's', Mod: ModCtrl}},
		{"ctrl+up", tcell.KeyUp, 0, tcell.ModCtrl, Event{Type: EventKey, Key: KeyUp, Mod: ModCtrl}},
		{"backspace2", tcell.KeyBackspace2, 0, tcell.ModNone, Event{Type: EventKey, Key: KeyBackspace}},
		{"f3", tcell.KeyF3, 0, tcell.ModNone, Event{Type: EventKey, Key: KeyF3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim.InjectKey(tt.key, tt.r, tt.mod)
			got := pollType(term, EventKey)
			if got.Type != tt.want.Type || got.Key != tt.want.Key || got.Mod != tt.want.Mod {
				t.Errorf("PollEvent() = %+v, want %+v", got, tt.want)
			}
			if tt.want.Key == KeyRune && got.Rune != tt.want.Rune {
				t.Errorf("Rune = %q, want %q", got.Rune, tt.want.Rune)
			}
		})
	}
}

func TestTerminalSkipsUnhandledKeys(t *testing.T) {
	term, sim := newTestTerminal(t, 10, 3)

	sim.InjectKey(tcell.KeyF12, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	if got := pollType(term, EventKey); got.Key != KeyEnter {
		t.Errorf("PollEvent() = %+v, want Enter", got)
	}
}

func TestTerminalPostInterrupt(t *testing.T) {
	term, _ := newTestTerminal(t, 10, 3)

	if err := term.PostInterrupt("changed"); err != nil {
		t.Fatalf("PostInterrupt() error = %v", err)
	}
	got := pollType(term, EventInterrupt)
	if got.Type != EventInterrupt || got.Data != "changed" {
		t.Errorf("PollEvent() = %+v, want interrupt carrying %q", got, "changed")
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("ModMask(%b).Has mismatch", m)
	}
}
