package snake

import (
	"errors"
	"fmt"
)

// Errors returned by Snake mutators. State is left unchanged when one is returned.
var (
	// ErrIllegalReversal is returned by Step when asked to turn straight back
	// into the neck.
	ErrIllegalReversal = errors.New("snake: illegal reversal")

	// ErrInvalidGrowth is returned by Grow when no vacated tail cell is pending,
	// i.e. before the first step or twice after the same step.
	ErrInvalidGrowth = errors.New("snake: no vacated tail to grow into")

	// ErrUnknownHeading is returned by Step for a value outside the Heading enum.
	ErrUnknownHeading = errors.New("snake: unknown heading")
)

// InitialLength is the number of cells a new snake has.
const InitialLength = 3

// Snake is the movement state of one snake: heading, body and the tail
// cell vacated by the most recent step.
// It is not safe for concurrent use.
type Snake struct {
	heading  Heading
	body     *cellRing
	lastTail Cell
	hasTail  bool
}

// NewSnake creates a snake heading right with its head at (x, y) and the rest of
// the body trailing along the negative x axis.
func NewSnake(x, y int) *Snake {
	body := newCellRing(8)
	for i := range InitialLength {
		body.pushBack(Cell{X: x - i, Y: y})
	}
	return &Snake{
		heading: HeadingRight,
		body:    body,
	}
}

// Head returns the position of the head.
func (s *Snake) Head() Cell {
	return s.body.at(0)
}

// Tail returns the position of the last body cell.
func (s *Snake) Tail() Cell {
	return s.body.at(s.body.len() - 1)
}

// Heading returns the current heading.
func (s *Snake) Heading() Heading {
	return s.heading
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return s.body.len()
}

// Body returns a read-only view of the body, head first.
func (s *Snake) Body() Body {
	return Body{r: s.body}
}

// LastTail returns the cell vacated by the last step, if growth may still
// reclaim it.
func (s *Snake) LastTail() (Cell, bool) {
	return s.lastTail, s.hasTail
}

// PeekNextHead returns where the head would be after a step along h, or
// along the current heading when h is HeadingNone. It does not check for
// reversals; use CanTurn for that.
func (s *Snake) PeekNextHead(h Heading) Cell {
	return s.Head().Move(s.resolve(h))
}

// CanTurn reports whether Step would accept h.
func (s *Snake) CanTurn(h Heading) bool {
	if !h.valid() {
		return false
	}
	if h == HeadingNone || s.body.len() == 1 {
		return true
	}
	return h != s.heading.Opposite()
}

// Step moves the snake one cell. A non-None h becomes the new heading first.
// The vacated tail cell is remembered for Grow, replacing any earlier one.
func (s *Snake) Step(h Heading) error {
	if !h.valid() {
		return fmt.Errorf("snake: step with heading %d: %w", int(h), ErrUnknownHeading)
	}
	if !s.CanTurn(h) {
		return fmt.Errorf("snake: step %s while heading %s: %w", h, s.heading, ErrIllegalReversal)
	}
	s.heading = s.resolve(h)

	s.body.pushFront(s.Head().Move(s.heading))
	s.lastTail, _ = s.body.popBack()
	s.hasTail = true
	return nil
}

// Grow re-appends the tail cell vacated by the last step, so the snake ends
// up one cell longer than it was before that step. The vacated cell is
// consumed: a second Grow before the next Step fails.
func (s *Snake) Grow() error {
	if !s.hasTail {
		return ErrInvalidGrowth
	}
	s.body.pushBack(s.lastTail)
	s.hasTail = false
	return nil
}

// Overlaps reports whether (x, y) hits the body, ignoring the tail cell.
// The tail is skipped because it moves away on the next step, so a head
// entering the current tail position is not a collision.
func (s *Snake) Overlaps(x, y int) bool {
	c := Cell{X: x, Y: y}
	for i := range s.body.len() - 1 {
		if s.body.at(i) == c {
			return true
		}
	}
	return false
}

// Occupies reports whether c is any body cell, tail included.
func (s *Snake) Occupies(c Cell) bool {
	return s.Body().Contains(c)
}

func (s *Snake) resolve(h Heading) Heading {
	if h == HeadingNone {
		return s.heading
	}
	return h
}
