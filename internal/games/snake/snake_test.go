package snake

import (
	"errors"
	"slices"
	"testing"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(5, 5)

	if s.Len() != InitialLength {
		t.Fatalf("Len() = %d, expected %d", s.Len(), InitialLength)
	}
	if s.Heading() != HeadingRight {
		t.Errorf("Heading() = %v, expected right", s.Heading())
	}
	if _, ok := s.LastTail(); ok {
		t.Error("New snake should have no pending tail")
	}

	expected := []Cell{{5, 5}, {4, 5}, {3, 5}}
	if got := s.Body().Cells(); !slices.Equal(got, expected) {
		t.Errorf("Body() = %v, expected %v", got, expected)
	}
	assertContiguous(t, s)
}

func TestStepStraight(t *testing.T) {
	tests := []struct {
		name    string
		heading Heading
		dx, dy  int
	}{
		{"right", HeadingRight, 1, 0},
		{"down", HeadingDown, 0, 1},
		{"up", HeadingUp, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(10, 10)
			if err := s.Step(tc.heading); err != nil {
				t.Fatalf("Step(%v) failed: %v", tc.heading, err)
			}

			for i := range 20 {
				before := s.Head()
				if err := s.Step(HeadingNone); err != nil {
					t.Fatalf("Step() #%d failed: %v", i, err)
				}
				after := s.Head()
				if after.X-before.X != tc.dx || after.Y-before.Y != tc.dy {
					t.Errorf("Step() moved head %v -> %v, expected offset (%d, %d)",
						before, after, tc.dx, tc.dy)
				}
				if s.Len() != InitialLength {
					t.Errorf("Len() = %d after step, expected %d", s.Len(), InitialLength)
				}
			}
			assertContiguous(t, s)
		})
	}
}

func TestStepGrowScenario(t *testing.T) {
	s := NewSnake(5, 5)

	if err := s.Step(HeadingNone); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	assertBody(t, s, []Cell{{6, 5}, {5, 5}, {4, 5}})
	if tail, ok := s.LastTail(); !ok || tail != (Cell{3, 5}) {
		t.Errorf("LastTail() = %v, %v, expected (3,5), true", tail, ok)
	}

	if err := s.Grow(); err != nil {
		t.Fatalf("Grow() failed: %v", err)
	}
	assertBody(t, s, []Cell{{6, 5}, {5, 5}, {4, 5}, {3, 5}})

	if err := s.Step(HeadingUp); err != nil {
		t.Fatalf("Step(up) failed: %v", err)
	}
	if s.Heading() != HeadingUp {
		t.Errorf("Heading() = %v, expected up", s.Heading())
	}
	assertBody(t, s, []Cell{{6, 4}, {6, 5}, {5, 5}, {4, 5}})
	if tail, ok := s.LastTail(); !ok || tail != (Cell{3, 5}) {
		t.Errorf("LastTail() = %v, %v, expected (3,5), true", tail, ok)
	}

	if !s.Overlaps(5, 5) {
		t.Error("Overlaps(5, 5) should be true for a non-tail cell")
	}
	if s.Overlaps(4, 5) {
		t.Error("Overlaps(4, 5) should be false for the tail cell")
	}
	assertContiguous(t, s)
}

func TestGrowAppendsVacatedCell(t *testing.T) {
	s := NewSnake(0, 0)
	mustStep(t, s, HeadingDown)
	mustStep(t, s, HeadingLeft)

	before := s.Len()
	vacated, _ := s.LastTail()
	if err := s.Grow(); err != nil {
		t.Fatalf("Grow() failed: %v", err)
	}
	if s.Len() != before+1 {
		t.Errorf("Len() = %d after grow, expected %d", s.Len(), before+1)
	}
	if s.Tail() != vacated {
		t.Errorf("Tail() = %v, expected vacated cell %v", s.Tail(), vacated)
	}
	assertContiguous(t, s)
}

func TestGrowWithoutStep(t *testing.T) {
	s := NewSnake(5, 5)

	err := s.Grow()
	if !errors.Is(err, ErrInvalidGrowth) {
		t.Fatalf("Grow() before any step = %v, expected ErrInvalidGrowth", err)
	}
	if s.Len() != InitialLength {
		t.Errorf("Len() = %d after failed grow, expected %d", s.Len(), InitialLength)
	}
}

func TestGrowTwiceAfterOneStep(t *testing.T) {
	s := NewSnake(5, 5)
	mustStep(t, s, HeadingNone)

	if err := s.Grow(); err != nil {
		t.Fatalf("first Grow() failed: %v", err)
	}
	err := s.Grow()
	if !errors.Is(err, ErrInvalidGrowth) {
		t.Fatalf("second Grow() = %v, expected ErrInvalidGrowth", err)
	}
	if s.Len() != InitialLength+1 {
		t.Errorf("Len() = %d, expected %d", s.Len(), InitialLength+1)
	}
	if _, ok := s.LastTail(); ok {
		t.Error("LastTail() should be cleared after growth")
	}

	// The next step makes a fresh tail available again.
	mustStep(t, s, HeadingNone)
	if err := s.Grow(); err != nil {
		t.Errorf("Grow() after a new step failed: %v", err)
	}
}

func TestStepRejectsReversal(t *testing.T) {
	tests := []struct {
		name     string
		setup    Heading
		reversal Heading
	}{
		{"right to left", HeadingNone, HeadingLeft},
		{"up to down", HeadingUp, HeadingDown},
		{"down to up", HeadingDown, HeadingUp},
		{"left to right", HeadingLeft, HeadingRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(20, 20)
			if tc.setup == HeadingLeft {
				// Left is a reversal from the start, so turn via up first.
				mustStep(t, s, HeadingUp)
			}
			if err := s.Step(tc.setup); err != nil {
				t.Fatalf("Step(%v) failed: %v", tc.setup, err)
			}

			before := s.Body().Cells()
			heading := s.Heading()
			lastTail, _ := s.LastTail()

			err := s.Step(tc.reversal)
			if !errors.Is(err, ErrIllegalReversal) {
				t.Fatalf("Step(%v) = %v, expected ErrIllegalReversal", tc.reversal, err)
			}
			if s.CanTurn(tc.reversal) {
				t.Errorf("CanTurn(%v) = true, expected false", tc.reversal)
			}
			if s.Heading() != heading {
				t.Errorf("Heading() changed to %v after rejected step", s.Heading())
			}
			if got, _ := s.LastTail(); got != lastTail {
				t.Errorf("LastTail() changed to %v after rejected step", got)
			}
			assertBody(t, s, before)
		})
	}
}

func TestStepUnknownHeading(t *testing.T) {
	s := NewSnake(1, 1)
	if err := s.Step(Heading(42)); !errors.Is(err, ErrUnknownHeading) {
		t.Errorf("Step(42) = %v, expected ErrUnknownHeading", err)
	}
	if s.Head() != (Cell{1, 1}) {
		t.Errorf("Head() = %v, expected unchanged (1,1)", s.Head())
	}
}

func TestPeekNextHead(t *testing.T) {
	s := NewSnake(5, 5)

	tests := []struct {
		heading  Heading
		expected Cell
	}{
		{HeadingNone, Cell{6, 5}},
		{HeadingRight, Cell{6, 5}},
		{HeadingUp, Cell{5, 4}},
		{HeadingDown, Cell{5, 6}},
		{HeadingLeft, Cell{4, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.heading.String(), func(t *testing.T) {
			if got := s.PeekNextHead(tc.heading); got != tc.expected {
				t.Errorf("PeekNextHead(%v) = %v, expected %v", tc.heading, got, tc.expected)
			}
		})
	}
}

func TestPeekNextHeadIsPure(t *testing.T) {
	s := NewSnake(5, 5)
	mustStep(t, s, HeadingDown)

	body := s.Body().Cells()
	heading := s.Heading()
	first := s.PeekNextHead(HeadingLeft)

	for range 10 {
		if got := s.PeekNextHead(HeadingLeft); got != first {
			t.Fatalf("PeekNextHead() = %v, expected stable %v", got, first)
		}
		s.PeekNextHead(HeadingNone)
	}

	if s.Heading() != heading {
		t.Errorf("Heading() = %v after peeking, expected %v", s.Heading(), heading)
	}
	assertBody(t, s, body)

	// The peeked cell is where the next step actually lands.
	mustStep(t, s, HeadingLeft)
	if s.Head() != first {
		t.Errorf("Head() = %v after step, expected peeked %v", s.Head(), first)
	}
}

func TestOverlaps(t *testing.T) {
	s := NewSnake(5, 5)

	// The cell the head moves into next is free, while the head itself is a
	// non-tail cell
	if next := s.PeekNextHead(HeadingNone); s.Overlaps(next.X, next.Y) {
		t.Errorf("Overlaps(%v) should be false for the next head after construction", next)
	}
	if !s.Overlaps(5, 5) {
		t.Error("Overlaps(5, 5) should be true for the head cell")
	}
	if !s.Overlaps(4, 5) {
		t.Error("Overlaps(4, 5) should be true for the middle cell")
	}
	if s.Overlaps(3, 5) {
		t.Error("Overlaps(3, 5) should be false for the tail cell")
	}
	if s.Overlaps(9, 9) {
		t.Error("Overlaps(9, 9) should be false for an empty cell")
	}
}

func TestOverlapsDetectsSelfCollision(t *testing.T) {
	// Build a snake of length 5 and curl it into a square.
	s := NewSnake(5, 5)
	for range 2 {
		mustStep(t, s, HeadingNone)
		mustGrow(t, s)
	}

	mustStep(t, s, HeadingDown)
	mustStep(t, s, HeadingLeft)

	next := s.PeekNextHead(HeadingUp)
	if !s.Overlaps(next.X, next.Y) {
		t.Errorf("Overlaps(%v) should detect the collision, body = %v", next, s.Body().Cells())
	}
}

func TestOverlapsNeverReportsTail(t *testing.T) {
	s := NewSnake(0, 0)
	headings := []Heading{HeadingDown, HeadingDown, HeadingLeft, HeadingUp, HeadingUp, HeadingLeft}

	for _, h := range headings {
		mustStep(t, s, h)
		mustGrow(t, s)

		tail := s.Tail()
		if s.Overlaps(tail.X, tail.Y) && countCell(s, tail) == 1 {
			t.Errorf("Overlaps(tail %v) = true, body = %v", tail, s.Body().Cells())
		}
		for i, c := range s.Body().All() {
			if i == s.Len()-1 {
				break
			}
			if !s.Overlaps(c.X, c.Y) {
				t.Errorf("Overlaps(%v) = false for body cell %d", c, i)
			}
		}
	}
}

func TestCanTurnSingleCell(t *testing.T) {
	s := &Snake{heading: HeadingRight, body: newCellRing(1)}
	s.body.pushBack(Cell{0, 0})

	if !s.CanTurn(HeadingLeft) {
		t.Error("A one-cell snake should be allowed to reverse")
	}
	if err := s.Step(HeadingLeft); err != nil {
		t.Errorf("Step(left) on one-cell snake failed: %v", err)
	}
	if s.Head() != (Cell{-1, 0}) {
		t.Errorf("Head() = %v, expected (-1,0)", s.Head())
	}
}

func TestBodyViewIsLive(t *testing.T) {
	s := NewSnake(5, 5)
	view := s.Body()

	mustStep(t, s, HeadingNone)
	if view.Front() != (Cell{6, 5}) {
		t.Errorf("Front() = %v, expected view to follow the snake", view.Front())
	}
	if view.Back() != (Cell{4, 5}) {
		t.Errorf("Back() = %v, expected (4,5)", view.Back())
	}

	cells := view.Cells()
	cells[0] = Cell{99, 99}
	if s.Head() == (Cell{99, 99}) {
		t.Error("Cells() must return a copy")
	}
}

func TestHeadingOpposite(t *testing.T) {
	tests := []struct {
		h, expected Heading
	}{
		{HeadingUp, HeadingDown},
		{HeadingDown, HeadingUp},
		{HeadingLeft, HeadingRight},
		{HeadingRight, HeadingLeft},
		{HeadingNone, HeadingNone},
	}

	for _, tc := range tests {
		if got := tc.h.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.h, got, tc.expected)
		}
		if got := tc.h.Opposite().Opposite(); got != tc.h {
			t.Errorf("%v.Opposite().Opposite() = %v", tc.h, got)
		}
	}
}

func TestParseHeading(t *testing.T) {
	for _, h := range []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight, HeadingNone} {
		got, err := ParseHeading(h.String())
		if err != nil || got != h {
			t.Errorf("ParseHeading(%q) = %v, %v", h.String(), got, err)
		}
	}
	if _, err := ParseHeading("sideways"); !errors.Is(err, ErrUnknownHeading) {
		t.Errorf("ParseHeading(sideways) error = %v, expected ErrUnknownHeading", err)
	}
}

func assertBody(t *testing.T, s *Snake, expected []Cell) {
	t.Helper()
	if got := s.Body().Cells(); !slices.Equal(got, expected) {
		t.Errorf("Body() = %v, expected %v", got, expected)
	}
}

func assertContiguous(t *testing.T, s *Snake) {
	t.Helper()
	cells := s.Body().Cells()
	for i := 1; i < len(cells); i++ {
		if !cells[i-1].Adjacent(cells[i]) {
			t.Errorf("cells %v and %v are not unit neighbours", cells[i-1], cells[i])
		}
	}
}

func countCell(s *Snake, c Cell) int {
	n := 0
	for _, seg := range s.Body().All() {
		if seg == c {
			n++
		}
	}
	return n
}

func mustStep(t *testing.T, s *Snake, h Heading) {
	t.Helper()
	if err := s.Step(h); err != nil {
		t.Fatalf("Step(%v) failed: %v", h, err)
	}
}

func mustGrow(t *testing.T, s *Snake) {
	t.Helper()
	if err := s.Grow(); err != nil {
		t.Fatalf("Grow() failed: %v", err)
	}
}
