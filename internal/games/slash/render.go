package slash

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-slash/internal/core"
	"github.com/vovakirdan/tui-slash/internal/geom"
)

// Glyphs
const (
	EdgeChar    = '*'
	AnchorChar  = '◆'
	PreviewChar = '.'
	ExitChar    = 'x'
	PointerChar = '+'
	TrailChar   = '~'
	SlasherChar = '●'
	BallChar    = 'o'
	BorderHoriz = '─'
	DiscardChar = '░'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderDiscarded(dst)
	g.renderArea(dst)
	g.renderAim(dst)
	g.renderSlasher(dst)
	g.renderBalls(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, cut count, remaining area and ball count.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	pct := int(math.Round(g.world.AreaFraction() * 100))
	dst.DrawTextCentered(0, fmt.Sprintf("Cuts: %d  Area: %d%%", g.totalCuts, pct))

	right := fmt.Sprintf("Balls: %d", len(g.world.balls))
	if g.mode == ModeEndless {
		right = fmt.Sprintf("Round: %d  %s", g.round, right)
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	if g.message != "" && !g.ended() && g.state != StatePaused {
		dst.DrawTextColored(1, 1, g.message, core.ColorYellow)
		return
	}
	for x := range dst.Width() {
		dst.Set(x, 1, BorderHoriz)
	}
}

// renderDiscarded shades the corner of every discarded triangle.
func (g *Game) renderDiscarded(dst *core.Screen) {
	for _, tri := range g.world.history {
		c := tri.Centroid()
		if g.world.area.Contains(c) {
			continue
		}
		g.view.Plot(dst, c, DiscardChar, core.ColorGray)
	}
}

// renderArea outlines the current area and marks the anchor.
func (g *Game) renderArea(dst *core.Screen) {
	for i := range 4 {
		e := g.world.area.Edge(i)
		g.view.Line(dst, e.P, e.Q, EdgeChar, core.ColorCyan)
	}
	g.view.Plot(dst, g.world.area[g.world.anchor], AnchorChar, core.ColorYellow)
}

// renderAim draws the pointer and, if the cut is valid, its preview.
func (g *Game) renderAim(dst *core.Screen) {
	if g.state != StateAiming {
		return
	}
	p, ok := g.world.Pointer()
	if !ok {
		return
	}

	preview, ok := g.aimPreview()
	if !ok {
		g.view.Plot(dst, p, ExitChar, core.ColorRed)
		return
	}

	g.view.Line(dst, preview.P, preview.Q, PreviewChar, core.ColorGreen)
	g.view.Plot(dst, preview.Q, ExitChar, core.ColorBrightGreen)
	g.view.Plot(dst, preview.P, AnchorChar, core.ColorYellow)
	g.view.Plot(dst, p, PointerChar, core.ColorBrightWhite)
}

// renderSlasher draws the path behind the slasher and the slasher itself.
func (g *Game) renderSlasher(dst *core.Screen) {
	if g.slasher == nil {
		return
	}
	g.view.Line(dst, g.slasher.From, g.slasher.Pos, TrailChar, core.ColorWhite)
	g.view.Plot(dst, g.slasher.Pos, SlasherChar, core.ColorBrightWhite)
}

func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.world.balls {
		g.view.Plot(dst, b.Pos, BallChar, core.ColorBrightRed)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "AREA CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	tw := utf8.RuneCountInString(title)
	sw := utf8.RuneCountInString(subtitle)

	boxW := max(tw, sw) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-tw)/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-sw)/2, box.Y+3, subtitle)
}

// aimPreview returns the preview segment, if the current aim is a valid cut.
func (g *Game) aimPreview() (geom.Line, bool) {
	cut := g.world.Candidate()
	if !cut.Valid() {
		return geom.Line{}, false
	}
	return geom.NewLine(g.world.area[g.world.anchor], *cut.Exit), true
}
