package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PlayerBody    = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// viewport maps playfield pixels onto the character grid. The last screen
// row is the ground; everything above it shows [Top, Bottom].
type viewport struct {
	p    Params
	cols int
	rows int
}

func (v viewport) col(x float64) int {
	return core.Scale(x, v.p.PlayfieldWidth, v.cols)
}

func (v viewport) row(y float64) int {
	return core.Scale(y-v.p.TopBoundary, v.p.PlayfieldHeight(), v.rows)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Height() < 2 || dst.Width() < 1 {
		return
	}

	v := viewport{p: g.params, cols: dst.Width(), rows: dst.Height() - 1}

	dst.DrawHLine(0, v.rows, dst.Width(), GroundChar, core.ColorOrange)

	for _, o := range g.state.Obstacles {
		drawObstacle(dst, v, o)
	}

	drawEntity(dst, v, g.state.Entity, g.state.Status == StatusGameOver)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.state.Score), core.ColorBrightYellow)

	switch {
	case g.state.Status == StatusReady:
		drawCenteredMessage(dst, "FLAPPY BIRD", "Press SPACE to flap")
	case g.state.Status == StatusGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawObstacle renders the solid parts above and below the gap.
func drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	left := v.col(o.X)
	right := v.col(o.X + v.p.ObstacleWidth)
	if right <= left {
		right = left + 1
	}
	gapTop := v.row(o.GapY - v.p.ObstacleGapHeight/2)
	gapBottom := v.row(o.GapY + v.p.ObstacleGapHeight/2)

	color := core.ColorGreen
	if o.Passed {
		color = core.ColorGray
	}

	for x := left; x < right; x++ {
		for y := 0; y < gapTop; y++ {
			dst.SetColored(x, y, PipeChar, color)
		}
		if gapTop > 0 {
			dst.SetColored(x, gapTop-1, PipeCapTop, core.ColorBrightGreen)
		}
		for y := gapBottom; y < v.rows; y++ {
			dst.SetColored(x, y, PipeChar, color)
		}
		if gapBottom < v.rows {
			dst.SetColored(x, gapBottom, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawEntity renders the entity as a body with a beak facing right.
func drawEntity(dst *core.Screen, v viewport, e Entity, crashed bool) {
	x := v.col(v.p.EntityX)
	y := core.Clamp(v.row(e.Y), 0, v.rows-1)

	color := core.ColorYellow
	if crashed {
		color = core.ColorRed
	}
	dst.SetColored(x, y, PlayerBody, color)
	dst.SetColored(x+1, y, PlayerChar, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorWhite)
}
