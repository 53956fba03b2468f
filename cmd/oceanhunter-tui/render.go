package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"oceanhunter/internal/sim"
)

var (
	styleWater    = tcell.StyleDefault.Background(tcell.ColorNavy)
	stylePlayer   = styleWater.Foreground(tcell.ColorOrange).Bold(true)
	stylePrey     = styleWater.Foreground(tcell.ColorAqua)
	stylePredator = styleWater.Foreground(tcell.ColorRed).Bold(true)
	styleParticle = styleWater.Foreground(tcell.ColorYellow)
	styleBubble   = styleWater.Foreground(tcell.ColorSilver)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleToast    = styleHUD.Foreground(tcell.ColorGold)
)

type hudInfo struct {
	toast string
	muted bool
}

// viewport maps world coordinates onto the terminal below a one-line HUD.
type viewport struct {
	cols, rows int
	w, h       float64
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := int(x / v.w * float64(v.cols))
	cy := 1 + int(y/v.h*float64(v.rows-1))
	return clampInt(cx, 0, v.cols-1), clampInt(cy, 1, v.rows-1)
}

// span is how many columns and rows an entity of size covers, at least one.
func (v viewport) span(size float64) (int, int) {
	sx := int(math.Round(size / v.w * float64(v.cols)))
	sy := int(math.Round(size / v.h * float64(v.rows-1)))
	return max(sx, 1), max(sy, 1)
}

func draw(screen tcell.Screen, s sim.Snapshot, h hudInfo) {
	cols, rows := screen.Size()
	screen.Clear()
	if cols < 10 || rows < 4 {
		screen.Show()
		return
	}
	v := viewport{cols: cols, rows: rows, w: s.Width, h: s.Height}

	for y := 1; y < rows; y++ {
		for x := 0; x < cols; x++ {
			screen.SetContent(x, y, ' ', nil, styleWater)
		}
	}
	for _, p := range s.Particles {
		x, y := v.cell(p.X, p.Y)
		r, st := particleGlyph(p.Kind)
		screen.SetContent(x, y, r, nil, st)
	}
	for _, c := range s.Prey {
		drawEntity(screen, v, c, stylePrey)
	}
	for _, c := range s.Predators {
		drawEntity(screen, v, c, stylePredator)
	}
	drawEntity(screen, v, s.Player, stylePlayer)

	status := fmt.Sprintf(" Score %d  Level %d  Size %.0f  High %d ", s.Score, s.Level, s.Player.Size, s.Stats.HighScore)
	if h.muted {
		status += " [muted]"
	}
	drawText(screen, 0, 0, status, styleHUD)
	if h.toast != "" {
		drawText(screen, cols-len(h.toast)-1, 0, h.toast, styleToast)
	}

	switch s.State {
	case sim.StateMenu:
		drawCentered(screen, rows/2-1, "OCEAN HUNTER")
		drawCentered(screen, rows/2, "Eat smaller fish, flee bigger ones")
		drawCentered(screen, rows/2+1, "Arrows/WASD swim  Space start  P pause  M mute  Esc quit")
	case sim.StatePaused:
		drawCentered(screen, rows/2, "PAUSED - P to resume")
	case sim.StateGameOver:
		drawCentered(screen, rows/2-1, "GAME OVER")
		drawCentered(screen, rows/2, fmt.Sprintf("Score %d  Level %d  Eaten %d", s.Score, s.Level, s.Stats.CreaturesEaten))
		drawCentered(screen, rows/2+1, "Space to play again  Esc to quit")
	}
	screen.Show()
}

// drawEntity fills the entity's footprint; the facing cell gets the head.
func drawEntity(screen tcell.Screen, v viewport, e sim.EntityView, st tcell.Style) {
	cx, cy := v.cell(e.X, e.Y)
	sx, sy := v.span(e.Size)
	head := '<'
	if e.FacingRight {
		head = '>'
	}
	body := head
	if sx > 1 {
		body = '='
	}
	x0, y0 := cx-sx/2, cy-sy/2
	for y := y0; y < y0+sy; y++ {
		for x := x0; x < x0+sx; x++ {
			if x < 0 || x >= v.cols || y < 1 || y >= v.rows {
				continue
			}
			r := body
			if (e.FacingRight && x == x0+sx-1) || (!e.FacingRight && x == x0) {
				r = head
			}
			screen.SetContent(x, y, r, nil, st)
		}
	}
}

func particleGlyph(k sim.ParticleKind) (rune, tcell.Style) {
	switch k {
	case sim.ParticleBubble:
		return 'o', styleBubble
	case sim.ParticleStar:
		return '*', styleParticle
	case sim.ParticleSparkle:
		return '+', styleParticle
	}
	return '.', styleParticle
}

func drawCentered(screen tcell.Screen, y int, s string) {
	cols, _ := screen.Size()
	drawText(screen, (cols-len(s))/2, y, s, styleHUD)
}

func drawText(screen tcell.Screen, x, y int, s string, st tcell.Style) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, st)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
