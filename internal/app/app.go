// Package app wires the swarm field, the phase controller, the gaze sources
// and the session log into one ebiten game with an in-window control panel.
package app

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/avdeyev/bci-swarm/internal/config"
	"github.com/avdeyev/bci-swarm/internal/gaze"
	"github.com/avdeyev/bci-swarm/internal/phase"
	"github.com/avdeyev/bci-swarm/internal/session"
	"github.com/avdeyev/bci-swarm/internal/swarm"
)

type inputMode int

const (
	inputMouse inputMode = iota
	inputTracker
)

func (m inputMode) String() string {
	if m == inputTracker {
		return "Eye Tracker"
	}
	return "Mouse"
}

// App is the ebiten game. All state is mutated from the single Update tick.
type App struct {
	settings config.Settings
	themeIdx int

	field *swarm.Field
	ctrl  *phase.Controller

	sampler *gaze.Sampler
	mode    inputMode

	logger *session.Logger
	cues   *cues

	dropdowns []*dropdown
	openDrop  *dropdown
	buttons   []*button

	prevSub  phase.SubPhase
	prevDone bool

	status  string
	lastErr error
}

// New builds the application. Settings are clamped into their accepted
// ranges; a session logger that cannot be opened disables logging but does
// not prevent startup.
func New(s config.Settings) *App {
	s.Clamp()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	minDim := float64(min(config.WindowWidth, config.WindowHeight-config.PanelHeight))
	cx := float64(config.WindowWidth) / 2
	cy := float64(config.PanelHeight) + float64(config.WindowHeight-config.PanelHeight)/2
	bound := minDim * config.FieldRadiusRatio
	layout := minDim * config.StimulusLayoutRatio

	a := &App{
		settings: s,
		field:    swarm.New(cx, cy, bound, s.DotCount, rng),
		ctrl:     phase.New(cx, cy, bound, layout, s, rng),
		cues:     newCues(),
		status:   "Testing Phase - move cursor/gaze to test",
	}
	a.sampler = gaze.NewSampler(gaze.Mouse{}, gaze.Point{X: cx, Y: cy})

	if s.LogDir != "" {
		logger, err := session.New(s.LogDir)
		if err != nil {
			fmt.Printf("session logging disabled: %v\n", err)
		} else {
			a.logger = logger
		}
	}

	for i, th := range config.Themes {
		if strings.EqualFold(th.Name, s.Theme) {
			a.themeIdx = i
		}
	}

	a.buildPanel()

	if strings.EqualFold(s.Input, inputTracker.String()) || strings.EqualFold(s.Input, "tracker") {
		a.setInputMode(inputTracker)
	}
	return a
}

// Close releases the session log. Call after the game loop returns.
func (a *App) Close() {
	if a.logger != nil {
		a.logger.Close()
	}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.ctrl.NeuroTrigger()
		a.logEvent("neuro_trigger")
	}

	mx, my := ebiten.CursorPosition()
	a.updateWidgets(float64(mx), float64(my), inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))

	cursor := a.sampler.Next()
	a.ctrl.Update(cursor.X, cursor.Y)

	tx, ty, has := a.ctrl.PullTarget()
	dt := 1.0 / float64(a.settings.TPS)
	a.field.Step(tx, ty, has, dt)

	a.handleEdges()

	if a.logger != nil && a.settings.LogGaze {
		target := 0
		if t := a.ctrl.ActiveTarget(); t != nil {
			target = t.Index
		}
		snap := a.field.Snapshot()
		a.logger.Sample(time.Now(), cursor.X, cursor.Y, snap.Coherence, a.ctrl.Phase().String(), target)
	}
	return nil
}

// handleEdges fires audio cues, notifications and log events on sub-phase
// and completion transitions.
func (a *App) handleEdges() {
	sub := a.ctrl.SubPhase()
	if sub == phase.Focusing && a.prevSub != phase.Focusing {
		a.cues.focusOn()
		if t := a.ctrl.ActiveTarget(); t != nil {
			a.logEvent("stimulus_on target=%d", t.Index)
		}
		cur, total := a.ctrl.Round()
		a.status = fmt.Sprintf("Calibration: Round %d/%d", cur, total)
	}
	if sub != phase.Focusing && a.prevSub == phase.Focusing {
		a.logEvent("stimulus_off")
	}
	a.prevSub = sub

	done := a.ctrl.Done()
	if done && !a.prevDone {
		a.cues.complete()
		a.status = "Calibration Complete"
		a.logEvent("calibration_complete")
		if err := zenity.Notify("Calibration complete", zenity.Title("BCI Swarm")); err != nil {
			// Notifications are best effort; some desktops have none.
			fmt.Printf("notify failed: %v\n", err)
		}
	}
	a.prevDone = done
}

func (a *App) updateWidgets(mx, my float64, clicked bool) {
	for _, d := range a.dropdowns {
		d.hover = d.headerContains(mx, my)
	}
	for _, b := range a.buttons {
		b.hover = b.visible() && b.contains(mx, my)
	}
	if !clicked {
		return
	}

	// An open list claims the click: select an item or just close.
	if d := a.openDrop; d != nil {
		if i, ok := d.itemAt(mx, my); ok {
			d.onSelect(i)
		}
		d.open = false
		a.openDrop = nil
		return
	}
	for _, d := range a.dropdowns {
		if d.headerContains(mx, my) {
			d.open = true
			a.openDrop = d
			return
		}
	}
	for _, b := range a.buttons {
		if b.visible() && b.contains(mx, my) {
			b.onClick()
			return
		}
	}
}

func (a *App) setInputMode(m inputMode) {
	if m == a.mode {
		return
	}
	if m == inputTracker {
		tracker, err := gaze.NewTracker(config.WindowWidth, config.WindowHeight, nil)
		if err != nil {
			// Fall back to the mouse, per the original's behavior when the
			// vendor SDK finds no hardware.
			a.lastErr = err
			a.status = "Eye tracker unavailable - using mouse"
			a.logEvent("tracker_unavailable")
			if derr := zenity.Error("No eye tracker device was found.\nFalling back to mouse input.",
				zenity.Title("Eye Tracker")); derr != nil {
				fmt.Printf("error dialog failed: %v\n", derr)
			}
			return
		}
		a.sampler.SetSource(tracker)
		a.mode = inputTracker
		a.status = "Eye tracker active"
		a.logEvent("input_mode mode=tracker")
		return
	}
	a.sampler.SetSource(gaze.Mouse{})
	a.mode = inputMouse
	a.status = "Mouse input active"
	a.logEvent("input_mode mode=mouse")
}

func (a *App) setPhase(p phase.Phase) {
	if a.ctrl.Calibrating() {
		a.logEvent("calibration_abandoned")
	}
	a.ctrl.SetPhase(p)
	a.logEvent("phase phase=%q", p.String())
	switch p {
	case phase.Testing:
		a.status = "Testing Phase - move cursor/gaze to test"
	case phase.Calibration:
		a.status = "Calibration Phase - press Start to begin"
	case phase.Start:
		a.status = "Start Phase - system ready"
	}
}

func (a *App) toggleCalibration() {
	if a.ctrl.Calibrating() {
		a.ctrl.StopCalibration()
		a.status = "Calibration stopped"
		a.logEvent("calibration_stopped")
		return
	}
	a.ctrl.StartCalibration(a.settings.Focus, a.settings.Gap, a.settings.Rounds)
	a.status = "Calibration: Round 1/" + fmt.Sprint(a.settings.Rounds)
	a.logEvent("calibration_started focus=%s gap=%s rounds=%d",
		a.settings.Focus, a.settings.Gap, a.settings.Rounds)
}

func (a *App) logEvent(format string, args ...any) {
	if a.logger != nil {
		a.logger.Event(time.Now(), format, args...)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
