package search

import "fmt"

// Direction is the direction FindNext scans in.
type Direction uint8

const (
	// Forward scans toward the end of the text.
	Forward Direction = iota
	// Backward scans toward the start of the text.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "down"
	case Backward:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// Match is a matched character range [Start, End).
type Match struct {
	Start int
	End   int
}

// Cursor is the persistent find/replace state of a session.
type Cursor struct {
	FindText      string
	ReplaceText   string
	CaseSensitive bool
	Direction     Direction

	// Position is the character offset the next FindNext starts from.
	Position int

	// Last is the most recent match found by FindNext.
	Last    Match
	HasLast bool
}

// Reset clears the resume position and the last match, keeping the
// pattern and options.
func (c *Cursor) Reset() {
	c.Position = 0
	c.Last = Match{}
	c.HasLast = false
}

func (c *Cursor) setMatch(m Match, position int) {
	c.Last = m
	c.HasLast = true
	c.Position = position
}
