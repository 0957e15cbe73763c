package snake

import "fmt"

// Heading is the direction the snake moves on each step.
// HeadingNone is the zero value and means "keep the current heading"
// wherever a heading is optional.
type Heading int

const (
	HeadingNone Heading = iota
	HeadingUp
	HeadingDown
	HeadingLeft
	HeadingRight
)

var opposites = [...]Heading{
	HeadingNone:  HeadingNone,
	HeadingUp:    HeadingDown,
	HeadingDown:  HeadingUp,
	HeadingLeft:  HeadingRight,
	HeadingRight: HeadingLeft,
}

// Opposite returns the reverse heading (Up/Down, Left/Right).
func (h Heading) Opposite() Heading {
	if !h.valid() {
		return HeadingNone
	}
	return opposites[h]
}

// Delta returns the unit offset of one step along h.
// Screen coordinates grow downward, so Up is -1 on the y axis.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (h Heading) valid() bool {
	return h >= HeadingNone && h <= HeadingRight
}

func (h Heading) String() string {
	switch h {
	case HeadingNone:
		return "none"
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseHeading converts a heading name back to a Heading.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "up":
		return HeadingUp, nil
	case "down":
		return HeadingDown, nil
	case "left":
		return HeadingLeft, nil
	case "right":
		return HeadingRight, nil
	case "", "none":
		return HeadingNone, nil
	}
	return HeadingNone, fmt.Errorf("parse heading %q: %w", s, ErrUnknownHeading)
}

// Cell is one grid position.
type Cell struct {
	X, Y int
}

// Move returns the neighbouring cell one step along h.
func (c Cell) Move(h Heading) Cell {
	dx, dy := h.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Adjacent reports whether c and o differ by one unit on exactly one axis.
func (c Cell) Adjacent(o Cell) bool {
	dx, dy := c.X-o.X, c.Y-o.Y
	return dx*dx+dy*dy == 1
}
