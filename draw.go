package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"oceanhunter/internal/sim"
)

var (
	waterTop     = color.RGBA{10, 60, 110, 255}
	waterBottom  = color.RGBA{4, 22, 48, 255}
	seaweedColor = color.RGBA{30, 140, 80, 255}
	playerColor  = color.RGBA{255, 150, 40, 255}
	preyColor    = color.RGBA{90, 220, 180, 255}
	predColor    = color.RGBA{200, 50, 70, 255}
	eyeColor     = color.RGBA{250, 250, 250, 255}
	shadeColor   = color.RGBA{0, 0, 0, 150}
	textColor    = color.RGBA{235, 245, 255, 255}
	toastColor   = color.RGBA{255, 215, 0, 255}
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

const lineHeight = 18.0

func (a *App) Draw(screen *ebiten.Image) {
	s := a.game.Snapshot()
	a.drawWater(screen)
	a.drawSeaweed(screen, s)

	for _, p := range s.Particles {
		a.drawParticle(screen, p)
	}
	for _, c := range s.Prey {
		a.drawFish(screen, c, preyColor)
	}
	for _, c := range s.Predators {
		a.drawFish(screen, c, predColor)
	}
	a.drawFish(screen, s.Player, playerColor)

	switch s.State {
	case sim.StateMenu:
		a.drawPanel(screen, []string{
			"Ocean Hunter",
			"Eat fish smaller than you. Avoid the bigger ones.",
			"Arrows/WASD: Swim  P: Pause  M: Mute  F: Maximize  Esc: Restore",
			fmt.Sprintf("High Score: %d", s.Stats.HighScore),
			"Press Space to start",
		})
		return
	case sim.StatePaused:
		a.drawPanel(screen, []string{"Paused", "Press P to resume"})
	case sim.StateGameOver:
		a.drawPanel(screen, []string{
			"Game Over",
			fmt.Sprintf("Score: %d   Level: %d", s.Score, s.Level),
			fmt.Sprintf("High Score: %d", s.Stats.HighScore),
			fmt.Sprintf("Eaten: %d   Time: %.0fs", s.Stats.CreaturesEaten, s.Stats.TimePlayed),
			"Press Space to play again",
		})
	}
	a.drawHUD(screen, s)
}

func (a *App) drawWater(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	const bands = 16
	bh := float32(h) / bands
	for i := 0; i < bands; i++ {
		f := float64(i) / (bands - 1)
		c := color.RGBA{
			R: lerp8(waterTop.R, waterBottom.R, f),
			G: lerp8(waterTop.G, waterBottom.G, f),
			B: lerp8(waterTop.B, waterBottom.B, f),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(i)*bh, float32(w), bh+1, c, false)
	}
}

// drawSeaweed sways a few stalks along the sea floor.
func (a *App) drawSeaweed(screen *ebiten.Image, s sim.Snapshot) {
	const stalks, segments = 12, 6
	sc := a.scaleFactor
	for i := 0; i < stalks; i++ {
		x := (float64(i) + 0.5) * s.Width / stalks
		y := s.Height
		phase := float64(i) * 0.7
		for j := 0; j < segments; j++ {
			sway := math.Sin(float64(a.frame)*0.03+phase+float64(j)*0.5) * float64(j) * 1.5
			nx, ny := x+sway, y-14
			vector.StrokeLine(screen, float32(x*sc), float32(y*sc), float32(nx*sc), float32(ny*sc), float32(4*sc), seaweedColor, true)
			x, y = nx, ny
		}
	}
}

// drawFish draws a round body, a tail on the trailing side and one eye.
func (a *App) drawFish(screen *ebiten.Image, e sim.EntityView, c color.RGBA) {
	sc := a.scaleFactor
	cx, cy, r := e.X*sc, e.Y*sc, e.Size*sc/2
	dir := 1.0
	if !e.FacingRight {
		dir = -1
	}
	tx := cx - dir*r*1.6
	vector.StrokeLine(screen, float32(cx-dir*r*0.8), float32(cy), float32(tx), float32(cy-r*0.6), float32(r*0.4), c, true)
	vector.StrokeLine(screen, float32(cx-dir*r*0.8), float32(cy), float32(tx), float32(cy+r*0.6), float32(r*0.4), c, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), c, true)
	vector.DrawFilledCircle(screen, float32(cx+dir*r*0.45), float32(cy-r*0.25), float32(math.Max(1, r*0.15)), eyeColor, true)
}

func (a *App) drawParticle(screen *ebiten.Image, p sim.Particle) {
	sc := a.scaleFactor
	c := color.NRGBA{p.Col.R, p.Col.G, p.Col.B, uint8(p.Alpha * 255)}
	x := (p.X + math.Sin(p.Wobble)*2) * sc
	y := p.Y * sc
	r := p.Size * sc
	switch p.Kind {
	case sim.ParticleBubble:
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), float32(math.Max(1, sc)), c, true)
	case sim.ParticleStar, sim.ParticleSparkle:
		arms := 2
		if p.Kind == sim.ParticleStar {
			arms = 3
		}
		for i := 0; i < arms; i++ {
			ang := p.Angle + float64(i)*math.Pi/float64(arms)
			dx, dy := math.Cos(ang)*r, math.Sin(ang)*r
			vector.StrokeLine(screen, float32(x-dx), float32(y-dy), float32(x+dx), float32(y+dy), float32(math.Max(1, sc)), c, true)
		}
	default:
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r/2), c, true)
	}
}

func (a *App) drawHUD(screen *ebiten.Image, s sim.Snapshot) {
	lines := []string{
		fmt.Sprintf("Score: %d | Level: %d | Size: %.0f | High Score: %d", s.Score, s.Level, s.Player.Size, s.Stats.HighScore),
	}
	if a.music.Muted() {
		lines = append(lines, "Muted")
	}
	padding := 10.0 * a.scaleFactor
	for i, line := range lines {
		a.drawText(screen, line, padding, padding+float64(i)*lineHeight*a.scaleFactor, textColor)
	}
	for i, t := range a.toasts {
		msg := "Achievement: " + t.text
		w, _ := text.Measure(msg, hudFace, lineHeight)
		x := float64(screen.Bounds().Dx()) - w - padding
		a.drawText(screen, msg, x, padding+float64(i)*lineHeight*a.scaleFactor, toastColor)
	}
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  particles %d  misses %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), len(s.Particles), s.Stats.PlacementMisses), int(padding), screen.Bounds().Dy()-20)
	}
}

// drawPanel centers lines on a translucent backdrop.
func (a *App) drawPanel(screen *ebiten.Image, lines []string) {
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	lh := lineHeight * a.scaleFactor
	total := float64(len(lines)) * lh
	vector.DrawFilledRect(screen, 0, float32((sh-total)/2-lh), float32(sw), float32(total+2*lh), shadeColor, false)
	startY := (sh - total) / 2
	for i, line := range lines {
		w, _ := text.Measure(line, hudFace, lineHeight)
		a.drawText(screen, line, (sw-w)/2, startY+float64(i)*lh, textColor)
	}
}

func (a *App) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineHeight
	text.Draw(screen, s, hudFace, op)
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f)
}
