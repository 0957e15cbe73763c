package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	wallRune = '▒'
	foodRune = '●'
)

// Draw paints every body cell as a block through grid, head in headColor.
func (s *Snake) Draw(dst *core.Screen, grid core.Grid, bodyColor, headColor core.Color) {
	for i, c := range s.Body().All() {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		grid.DrawBlock(dst, color, c.X, c.Y)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.requiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.renderMap(dst)
	if g.hasFood {
		g.grid.FillBlock(dst, core.ColorRed, foodRune, g.food.X, g.food.Y)
	}
	g.snake.Draw(dst, g.grid, core.ColorGreen, core.ColorBrightGreen)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.levelIndex+1), g.level().Name)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) requiredSize() (int, int) {
	w, h := g.mapWidth*max(1, g.cfg.Board.BlockWidth), g.mapHeight
	return w, h + g.cfg.Board.HUDHeight
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" Snake (Endless) | Score: %d  Length: %d  Layout: %s",
			g.score, g.lengthOrZero(), g.level().Name)
	} else {
		hud = fmt.Sprintf(" Snake | Score: %d  Level: %d/%d  Food: %d/%d",
			g.score, g.levelIndex+1, len(g.levels), g.foodEaten, g.level().TargetFood)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)
	if g.cfg.Board.HUDHeight > 1 {
		dst.DrawHLine(0, 1, dst.Width(), '─')
	}
}

func (g *Game) lengthOrZero() int {
	if g.snake == nil {
		return 0
	}
	return g.snake.Len()
}

// renderMap draws the walls.
func (g *Game) renderMap(dst *core.Screen) {
	for c := range g.walls {
		g.grid.FillBlock(dst, core.ColorGray, wallRune, c.X, c.Y)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	boxH := 5
	cx, cy := dst.Bounds().Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)
	inner := box.Inset(1)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(inner.Y, line1)
	dst.DrawTextCentered(inner.Bottom()-1, line2)
}
