// Package statusline composes the one-line bars drawn by the renderer.
package statusline

import (
	"strings"

	"github.com/dshills/nodepat/internal/renderer/core"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// Message is a transient notice shown on the bottom line.
type Message struct {
	Text string
	Type MessageType
}

// Compose lays out left and right in exactly width columns. The right part
// is right-aligned and wins when both do not fit.
func Compose(left, right string, width int) string {
	if width <= 0 {
		return ""
	}

	right = core.Truncate(right, width)
	rw := core.StringWidth(right)

	room := width - rw
	if rw > 0 && room > 0 {
		room-- // keep one column between the parts
	}
	left = core.Truncate(left, max(room, 0))
	lw := core.StringWidth(left)

	return left + strings.Repeat(" ", width-lw-rw) + right
}

// Center places text in the middle of width columns.
func Center(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = core.Truncate(text, width)
	pad := width - core.StringWidth(text)
	return strings.Repeat(" ", pad/2) + text + strings.Repeat(" ", pad-pad/2)
}
