package app

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/avdeyev/bci-swarm/internal/config"
)

func (a *App) Draw(screen *ebiten.Image) {
	th := config.Themes[a.themeIdx]
	screen.Fill(th.Background)

	a.drawField(screen, th)
	a.drawStimuli(screen, th)
	a.drawPanel(screen, th)
	a.drawTimer(screen, th)

	// Open dropdown lists overlay everything.
	if a.openDrop != nil {
		mx, my := ebiten.CursorPosition()
		a.openDrop.drawList(screen, th, float64(mx), float64(my))
	}
}

func (a *App) drawField(screen *ebiten.Image, th *config.Theme) {
	cx, cy := a.field.Center()
	r := a.field.Bound()
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), th.FieldFill, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 2, th.FieldBorder, true)

	for _, d := range a.field.Dots() {
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.Radius), d.Color, true)
	}
}

func (a *App) drawStimuli(screen *ebiten.Image, th *config.Theme) {
	for _, t := range a.ctrl.Targets() {
		outline := th.StimulusIdle
		width := float32(config.StimulusNormalWidth)
		switch {
		case t.Neuro:
			outline = th.NeuroGlow
			width = config.StimulusGlowWidth
		case t.Active:
			outline = th.StimulusGlow
			width = config.StimulusGlowWidth
		}

		x, y := float32(t.X), float32(t.Y)
		vector.DrawFilledCircle(screen, x, y, config.StimulusRadius, th.PanelBG, true)
		vector.StrokeCircle(screen, x, y, config.StimulusRadius, width, outline, true)
		if t.Active || t.Neuro {
			vector.StrokeCircle(screen, x, y, config.StimulusRadius+6, 2, outline, true)
		}
		ebitenutil.DebugPrintAt(screen, strconv.Itoa(t.Index), int(t.X)-3, int(t.Y)-8)

		a.drawProgressBar(screen, th, t.X, t.Y, t.Progress)
	}
}

// drawProgressBar renders the vertical bar to the left of a stimulus,
// filling bottom-up.
func (a *App) drawProgressBar(screen *ebiten.Image, th *config.Theme, cx, cy, progress float64) {
	x := float32(cx - config.StimulusRadius - config.ProgressBarPadding - config.ProgressBarWidth)
	top := float32(cy - config.StimulusRadius)
	height := float32(2 * config.StimulusRadius)

	vector.DrawFilledRect(screen, x, top, config.ProgressBarWidth, height, th.ProgressBG, false)
	vector.StrokeRect(screen, x, top, config.ProgressBarWidth, height, 1, th.TextSecondary, false)
	if progress > 0 {
		fill := height * float32(progress)
		vector.DrawFilledRect(screen, x, top+height-fill, config.ProgressBarWidth, fill, th.ProgressFill, false)
	}
}

func (a *App) drawPanel(screen *ebiten.Image, th *config.Theme) {
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.PanelHeight, th.PanelBG, false)
	vector.StrokeLine(screen, 0, config.PanelHeight, config.WindowWidth, config.PanelHeight, 1, th.TextSecondary, false)

	for _, d := range a.dropdowns {
		d.draw(screen, th)
	}
	for _, b := range a.buttons {
		b.draw(screen, th)
	}

	a.drawCoherenceMeter(screen, th)

	status := a.status
	if a.ctrl.Calibrating() {
		status = fmt.Sprintf("%s | %s %.1fs", a.status, a.ctrl.SubPhase(), a.ctrl.PhaseRemaining().Seconds())
	}
	if a.lastErr != nil {
		status += " | Error: " + a.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 770, 34)
}

// drawCoherenceMeter shows the live coherence score, hue-shifted from red
// (scattered) to green (aligned).
func (a *App) drawCoherenceMeter(screen *ebiten.Image, th *config.Theme) {
	const x, y, w, h = config.WindowWidth - 190, 30.0, 170.0, 14.0

	ebitenutil.DebugPrintAt(screen, "Coherence", x, int(y)-17)
	vector.DrawFilledRect(screen, x, y, w, h, th.ProgressBG, false)
	vector.StrokeRect(screen, x, y, w, h, 1, th.TextSecondary, false)

	c := a.field.Coherence()
	if c > 0 {
		r, g, b := hsvToRgb(c*120, 0.85, 0.9)
		vector.DrawFilledRect(screen, x, y, float32(c)*w, h, rgba(r, g, b), false)
	}
}

// drawTimer shows elapsed calibration time, bottom-left, only while a run
// is active.
func (a *App) drawTimer(screen *ebiten.Image, th *config.Theme) {
	if !a.ctrl.Calibrating() {
		return
	}
	x := float32(15)
	y := float32(config.WindowHeight - config.TimerHeight - 15)

	vector.DrawFilledRect(screen, x, y, config.TimerWidth, config.TimerHeight, th.TimerBG, false)
	vector.StrokeRect(screen, x, y, config.TimerWidth, config.TimerHeight, 1, th.TextSecondary, false)
	ebitenutil.DebugPrintAt(screen, "Elapsed", int(x)+10, int(y)+6)
	ebitenutil.DebugPrintAt(screen, formatClock(a.ctrl.SessionElapsed()), int(x)+10, int(y)+26)
}
