package renderer

import (
	"sync"
	"unicode/utf8"

	"github.com/dshills/nodepat/internal/renderer/backend"
	"github.com/dshills/nodepat/internal/renderer/core"
	"github.com/dshills/nodepat/internal/renderer/layout"
	"github.com/dshills/nodepat/internal/renderer/statusline"
	"github.com/dshills/nodepat/internal/renderer/viewport"
)

// Prompt is a single-line input shown on the bottom line.
type Prompt struct {
	Label string
	Input string
	// Cursor is the character offset of the cursor within Input.
	Cursor int
}

// Frame is a snapshot of everything drawn on one screen.
type Frame struct {
	Title string

	// Lines are the document lines without their newlines.
	Lines []string

	// Cursor position, 1-indexed; the column counts characters.
	CursorLine   int
	CursorColumn int

	ShowStatusBar bool
	StatusLeft    string
	StatusRight   string

	// Message is shown on the bottom line unless a prompt is active.
	Message statusline.Message
	Prompt  *Prompt

	Dark   bool
	Bold   bool
	Italic bool
}

// Renderer is the main rendering facade.
type Renderer struct {
	mu sync.Mutex

	backend  backend.Backend
	layout   *layout.Engine
	viewport *viewport.Viewport
}

// New creates a renderer drawing to b.
func New(b backend.Backend) *Renderer {
	width, height := b.Size()
	return &Renderer{
		backend:  b,
		layout:   layout.NewEngine(layout.DefaultTabWidth),
		viewport: viewport.NewViewport(width, height),
	}
}

// screenLayout is the row assignment for a screen height.
type screenLayout struct {
	titleRow   int // -1 when there is no room
	textTop    int
	textHeight int
	statusRow  int // -1 when hidden
	bottomRow  int // -1 when there is no room
}

func computeLayout(height int, showStatus bool) screenLayout {
	l := screenLayout{titleRow: -1, statusRow: -1, bottomRow: -1}
	if height <= 0 {
		return l
	}
	bottom := height
	if height >= 2 {
		l.bottomRow = height - 1
		bottom--
	}
	if height >= 3 {
		l.titleRow = 0
		l.textTop = 1
	}
	if showStatus && height >= 4 {
		l.statusRow = bottom - 1
		bottom--
	}
	l.textHeight = bottom - l.textTop
	return l
}

// TextHeight returns the number of document lines visible at once.
func (r *Renderer) TextHeight(showStatus bool) int {
	_, height := r.backend.Size()
	return max(computeLayout(height, showStatus).textHeight, 1)
}

// ResetScroll scrolls back to the start of the document.
func (r *Renderer) ResetScroll() {
	r.viewport.Reset()
}

// Render draws f and flushes it to the screen.
func (r *Renderer) Render(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}

	theme := ThemeFor(f.Dark)
	sl := computeLayout(height, f.ShowStatusBar)

	cursorX, cursorY := r.drawText(f, theme, width, sl)

	if sl.titleRow >= 0 {
		r.drawString(0, sl.titleRow, statusline.Center(f.Title, width), theme.BarStyle().Bold(), width)
	}
	if sl.statusRow >= 0 {
		r.drawString(0, sl.statusRow, statusline.Compose(f.StatusLeft, f.StatusRight, width), theme.BarStyle(), width)
	}
	if sl.bottomRow >= 0 {
		if px, ok := r.drawBottom(f, theme, width, sl.bottomRow); ok {
			cursorX, cursorY = px, sl.bottomRow
		}
	}

	if cursorX >= 0 && cursorX < width && cursorY >= 0 {
		r.backend.ShowCursor(cursorX, cursorY)
	} else {
		r.backend.HideCursor()
	}
	r.backend.Show()
}

// drawText draws the visible document lines and returns the screen
// position of the text cursor.
func (r *Renderer) drawText(f Frame, theme Theme, width int, sl screenLayout) (x, y int) {
	style := theme.TextStyle()
	if f.Bold {
		style = style.Bold()
	}
	if f.Italic {
		style = style.Italic()
	}

	r.viewport.Resize(width, sl.textHeight)

	lineIdx := min(max(f.CursorLine-1, 0), max(len(f.Lines)-1, 0))
	cursorCol := 0
	if lineIdx < len(f.Lines) {
		cursorCol = r.layout.Layout(f.Lines[lineIdx], style).VisualColumn(f.CursorColumn - 1)
	}
	r.viewport.ScrollToReveal(lineIdx, cursorCol)

	top := r.viewport.TopLine()
	left := r.viewport.LeftColumn()
	blank := core.EmptyCell(style)

	for row := 0; row < sl.textHeight; row++ {
		y := sl.textTop + row
		r.backend.Fill(core.ScreenRect{Top: y, Left: 0, Bottom: y + 1, Right: width}, blank)

		n := top + row
		if n >= len(f.Lines) {
			continue
		}
		cells := r.layout.Layout(f.Lines[n], style).Cells
		for x := 0; x < width && left+x < len(cells); x++ {
			r.backend.SetCell(x, y, cells[left+x])
		}
	}

	row, col := r.viewport.ScreenPosition(lineIdx, cursorCol)
	if sl.textHeight <= 0 {
		return -1, -1
	}
	return col, sl.textTop + row
}

// drawBottom draws the prompt or message line. It returns the prompt
// cursor column when a prompt is active.
func (r *Renderer) drawBottom(f Frame, theme Theme, width, y int) (int, bool) {
	base := theme.TextStyle()
	r.backend.Fill(core.ScreenRect{Top: y, Left: 0, Bottom: y + 1, Right: width}, core.EmptyCell(base))

	if p := f.Prompt; p != nil {
		label := p.Label + " "
		x := r.drawString(0, y, label, base.WithForeground(theme.Prompt).Bold(), width)

		input := []rune(p.Input)
		cur := min(max(p.Cursor, 0), len(input))
		before := core.StringWidth(string(input[:cur]))

		// Scroll long input so the cursor stays on screen.
		avail := width - x
		skip := 0
		if avail > 0 && before >= avail {
			skip = before - avail + 1
		}
		visible := string(input)
		for skip > 0 && visible != "" {
			_, size := utf8.DecodeRuneInString(visible)
			skip -= core.StringWidth(visible[:size])
			before -= core.StringWidth(visible[:size])
			visible = visible[size:]
		}
		r.drawString(x, y, visible, base, width-x)
		return x + before, true
	}

	style := base
	switch f.Message.Type {
	case statusline.MessageError:
		style = style.WithForeground(theme.Error)
	case statusline.MessageWarning:
		style = style.Bold()
	}
	r.drawString(0, y, f.Message.Text, style, width)
	return 0, false
}

// drawString draws s starting at column x, using at most width columns.
// It returns the column after the last cell drawn.
func (r *Renderer) drawString(x, y int, s string, style core.Style, width int) int {
	cells := core.CellsFromString(core.Truncate(s, max(width, 0)), style)
	for i, c := range cells {
		r.backend.SetCell(x+i, y, c)
	}
	return x + len(cells)
}
