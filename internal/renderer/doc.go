// Package renderer draws the editor screen.
//
// The screen is laid out top to bottom as:
//
//	┌─────────────────────────────────────────┐
//	│ title bar          name* - Nodepat      │
//	├─────────────────────────────────────────┤
//	│ text area                               │
//	│   (scrolls to keep the cursor visible)  │
//	├─────────────────────────────────────────┤
//	│ status bar  Ln 3, Col 7          UTF-8  │  optional
//	├─────────────────────────────────────────┤
//	│ message or prompt line                  │
//	└─────────────────────────────────────────┘
//
// Each call to Render draws one complete Frame: a snapshot of everything
// visible. The renderer keeps only the scroll position between frames.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	_ = term.Init()
//	r := renderer.New(term)
//	r.Render(frame)
package renderer
