package core

import "testing"

func TestGridToCoord(t *testing.T) {
	g := NewGrid(3, 2)

	tests := []struct {
		x, y   int
		sx, sy int
	}{
		{0, 0, 3, 2},
		{1, 0, 5, 2},
		{4, 3, 11, 5},
		{-1, -1, 1, 1},
	}

	for _, tc := range tests {
		sx, sy := g.ToCoord(tc.x, tc.y)
		if sx != tc.sx || sy != tc.sy {
			t.Errorf("ToCoord(%d, %d) = (%d, %d), expected (%d, %d)", tc.x, tc.y, sx, sy, tc.sx, tc.sy)
		}
	}
}

func TestGridDrawBlock(t *testing.T) {
	s := NewScreen(10, 4)
	g := NewGrid(0, 0)

	g.DrawBlock(s, ColorGreen, 2, 1)

	for _, x := range []int{4, 5} {
		cell := s.GetCell(x, 1)
		if cell.Rune != BlockRune || cell.Color != ColorGreen {
			t.Errorf("GetCell(%d, 1) = %+v, expected green block", x, cell)
		}
	}
	if s.Get(3, 1) != ' ' || s.Get(6, 1) != ' ' {
		t.Error("DrawBlock should only fill its own cell")
	}
}

func TestGridDrawRectangle(t *testing.T) {
	s := NewScreen(12, 6)
	g := Grid{OriginX: 1, OriginY: 1, BlockW: 1, BlockH: 1}

	g.DrawRectangle(s, ColorGray, 0, 0, 3, 2)

	filled := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == BlockRune {
				filled++
			}
		}
	}
	if filled != 6 {
		t.Errorf("DrawRectangle filled %d cells, expected 6", filled)
	}
	if s.Get(1, 1) != BlockRune || s.Get(3, 2) != BlockRune {
		t.Error("DrawRectangle should start at the grid origin")
	}
}

func TestGridClipsOffscreen(t *testing.T) {
	s := NewScreen(4, 2)
	g := NewGrid(0, 0)

	// Must not panic.
	g.DrawBlock(s, ColorRed, 10, 10)
	g.FillBlock(s, ColorRed, '*', -3, 0)
}
