package core

// Terminal cells are roughly twice as tall as they are wide, so one game
// block spans two columns and one row by default.
const (
	DefaultBlockWidth  = 2
	DefaultBlockHeight = 1
	BlockRune          = '█'
)

// Grid scales discrete game coordinates up to screen coordinates.
// Origin is the screen position of game cell (0, 0).
type Grid struct {
	OriginX, OriginY int
	BlockW, BlockH   int
}

// NewGrid creates a grid with the default block size.
func NewGrid(originX, originY int) Grid {
	return Grid{
		OriginX: originX,
		OriginY: originY,
		BlockW:  DefaultBlockWidth,
		BlockH:  DefaultBlockHeight,
	}
}

// ToCoord converts a game cell to the screen position of its top-left corner.
func (g Grid) ToCoord(x, y int) (int, int) {
	return g.OriginX + x*g.BlockW, g.OriginY + y*g.BlockH
}

// Size returns the screen size of a w x h area of game cells.
func (g Grid) Size(w, h int) (int, int) {
	return w * g.BlockW, h * g.BlockH
}

// DrawRectangle fills a w x h area of game cells starting at (x, y).
func (g Grid) DrawRectangle(dst *Screen, color Color, x, y, w, h int) {
	g.FillRectangle(dst, color, BlockRune, x, y, w, h)
}

// FillRectangle is DrawRectangle with a custom fill rune.
func (g Grid) FillRectangle(dst *Screen, color Color, fill rune, x, y, w, h int) {
	sx, sy := g.ToCoord(x, y)
	sw, sh := g.Size(w, h)
	for py := sy; py < sy+sh; py++ {
		for px := sx; px < sx+sw; px++ {
			dst.SetColored(px, py, fill, color)
		}
	}
}

// DrawBlock fills the single game cell (x, y).
func (g Grid) DrawBlock(dst *Screen, color Color, x, y int) {
	g.DrawRectangle(dst, color, x, y, 1, 1)
}

// FillBlock fills the single game cell (x, y) with a custom rune.
func (g Grid) FillBlock(dst *Screen, color Color, fill rune, x, y int) {
	g.FillRectangle(dst, color, fill, x, y, 1, 1)
}
