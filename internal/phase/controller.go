// Package phase drives which stimulus is active and for how long. It holds
// the Testing/Calibration/Start state machine, the eight stimulus targets
// laid out around the field, the randomized round scheduling used during
// calibration, and the testing-phase hover logic.
package phase

import (
	"math"
	"math/rand"
	"time"

	"github.com/avdeyev/bci-swarm/internal/config"
)

// Phase is the top-level mode selected in the control panel.
type Phase int

const (
	Testing Phase = iota
	Calibration
	Start
)

func (p Phase) String() string {
	switch p {
	case Testing:
		return "Testing Phase"
	case Calibration:
		return "Calibration Phase"
	case Start:
		return "Start Phase"
	}
	return "Unknown"
}

// SubPhase is the calibration sub-state. It is meaningful only while a
// calibration run is active.
type SubPhase int

const (
	Idle SubPhase = iota
	Focusing
	Gap
)

func (s SubPhase) String() string {
	switch s {
	case Focusing:
		return "Focusing"
	case Gap:
		return "Gap"
	}
	return "Idle"
}

// Target is one of the numbered stimulus circles. Progress is in [0,1] and
// resets to zero whenever the target deactivates.
type Target struct {
	Index    int // 1..StimulusCount
	X, Y     float64
	Progress float64
	Active   bool
	Neuro    bool
}

// Controller is the phase state machine. It is mutated exclusively from the
// single animation tick; no locking.
type Controller struct {
	cx, cy float64
	bound  float64

	targets []*Target

	phase  Phase
	focus  time.Duration
	gap    time.Duration
	rounds int

	calibrating  bool
	done         bool
	sub          SubPhase
	round        int // 0-based
	sequence     []int
	seqPos       int
	activeSlot   int // -1 when no target is active
	focusEntries int
	phaseStart   time.Time
	sessionStart time.Time

	// Testing-phase hover state.
	hoverSlot  int
	hoverStart time.Time
	locked     bool

	cursorX, cursorY float64
	pullX, pullY     float64
	hasPull          bool

	lastUpdate time.Time
	rng        *rand.Rand
	now        func() time.Time
}

// New builds a controller with stimulus targets evenly spaced around the
// field center at the given layout radius. Initial phase is Testing.
func New(cx, cy, bound, layoutRadius float64, s config.Settings, rng *rand.Rand) *Controller {
	c := &Controller{
		cx:         cx,
		cy:         cy,
		bound:      bound,
		phase:      Testing,
		focus:      config.ClampFocus(s.Focus),
		gap:        config.ClampGap(s.Gap),
		rounds:     config.ClampRounds(s.Rounds),
		activeSlot: -1,
		hoverSlot:  -1,
		rng:        rng,
		now:        time.Now,
	}
	for i := 0; i < config.StimulusCount; i++ {
		ang := float64(i) * 2 * math.Pi / config.StimulusCount
		c.targets = append(c.targets, &Target{
			Index: i + 1,
			X:     cx + layoutRadius*math.Cos(ang),
			Y:     cy + layoutRadius*math.Sin(ang),
		})
	}
	return c
}

// Update advances the state machine one tick. The cursor is the current
// gaze/pointer position in window pixels.
func (c *Controller) Update(cursorX, cursorY float64) {
	now := c.now()
	var dt float64
	if !c.lastUpdate.IsZero() {
		dt = now.Sub(c.lastUpdate).Seconds()
	}
	c.lastUpdate = now
	c.cursorX, c.cursorY = cursorX, cursorY
	c.hasPull = false

	switch {
	case c.calibrating:
		c.updateCalibration(now)
	case c.phase == Testing:
		c.updateHover(now, dt)
	default:
		c.clearHover()
		c.decayAll(dt)
	}
}

func (c *Controller) updateCalibration(now time.Time) {
	elapsed := now.Sub(c.phaseStart)

	switch c.sub {
	case Idle:
		c.beginFocus(now)

	case Focusing:
		t := c.targets[c.activeSlot]
		t.Progress = clamp01(elapsed.Seconds() / c.focus.Seconds())

		if elapsed >= moveTrigger(c.focus) {
			c.pullX, c.pullY = t.X, t.Y
			c.hasPull = true
		}
		if elapsed >= c.focus {
			t.Progress = 0
			t.Active = false
			c.activeSlot = -1
			c.sub = Gap
			c.phaseStart = now
			c.hasPull = false
		}

	case Gap:
		if elapsed >= c.gap {
			c.seqPos++
			if c.seqPos >= len(c.sequence) {
				c.round++
				if c.round >= c.rounds {
					c.calibrating = false
					c.done = true
					c.sub = Idle
					return
				}
				c.sequence = c.rng.Perm(len(c.targets))
				c.seqPos = 0
			}
			c.beginFocus(now)
		}
	}
}

func (c *Controller) beginFocus(now time.Time) {
	slot := c.sequence[c.seqPos]
	t := c.targets[slot]
	t.Active = true
	t.Progress = 0
	c.activeSlot = slot
	c.sub = Focusing
	c.phaseStart = now
	c.focusEntries++
}

// updateHover implements the testing-phase behavior: outside the neutral
// zone the nearest stimulus is hovered and charges toward lock; inside it
// everything decays and the swarm rests.
func (c *Controller) updateHover(now time.Time, dt float64) {
	nearest := -1
	if math.Hypot(c.cursorX-c.cx, c.cursorY-c.cy) > c.bound*config.NeutralZoneRatio {
		nearest = c.nearestSlot(c.cursorX, c.cursorY)
	}

	if nearest != c.hoverSlot {
		c.hoverSlot = nearest
		c.hoverStart = now
		c.locked = false
	} else if nearest >= 0 && !c.locked && now.Sub(c.hoverStart) >= c.focus {
		c.locked = true
	}

	for i, t := range c.targets {
		if i == c.hoverSlot {
			t.Active = true
			t.Progress = clamp01(t.Progress + dt/c.focus.Seconds())
		} else {
			t.Active = false
			t.Progress = math.Max(0, t.Progress-config.ProgressDecay*dt)
		}
	}

	if c.locked {
		c.pullX, c.pullY = c.cursorX, c.cursorY
		c.hasPull = true
	}
}

func (c *Controller) nearestSlot(x, y float64) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, t := range c.targets {
		if d := math.Hypot(x-t.X, y-t.Y); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func (c *Controller) clearHover() {
	c.hoverSlot = -1
	c.locked = false
	for _, t := range c.targets {
		t.Active = false
	}
}

func (c *Controller) decayAll(dt float64) {
	for _, t := range c.targets {
		t.Progress = math.Max(0, t.Progress-config.ProgressDecay*dt)
	}
}

// SetPhase switches the top-level mode. Any running calibration is abandoned
// with no resume; targets and hover state are cleared.
func (c *Controller) SetPhase(p Phase) {
	c.calibrating = false
	c.done = false
	c.sub = Idle
	c.activeSlot = -1
	c.hasPull = false
	c.clearHover()
	for _, t := range c.targets {
		t.Progress = 0
		t.Neuro = false
	}
	c.phase = p
}

// StartCalibration begins a calibration run with the given timing. Values
// outside the accepted ranges are clamped. Calling this while a run is
// already active performs a hard reset back to round zero.
func (c *Controller) StartCalibration(focus, gap time.Duration, rounds int) {
	now := c.now()
	c.phase = Calibration
	c.focus = config.ClampFocus(focus)
	c.gap = config.ClampGap(gap)
	c.rounds = config.ClampRounds(rounds)

	c.clearHover()
	for _, t := range c.targets {
		t.Progress = 0
		t.Neuro = false
	}

	c.calibrating = true
	c.done = false
	c.round = 0
	c.sequence = c.rng.Perm(len(c.targets))
	c.seqPos = 0
	c.activeSlot = -1
	c.focusEntries = 0
	c.sub = Idle
	c.sessionStart = now
	c.phaseStart = now
	c.hasPull = false
}

// StopCalibration abandons the current run. Calling it when no run is active
// is a no-op.
func (c *Controller) StopCalibration() {
	if !c.calibrating {
		return
	}
	c.calibrating = false
	c.sub = Idle
	if c.activeSlot >= 0 {
		c.targets[c.activeSlot].Progress = 0
		c.targets[c.activeSlot].Active = false
		c.activeSlot = -1
	}
	c.hasPull = false
}

// NeuroTrigger marks the stimulus nearest the cursor with the neuro-feedback
// outline. It latches until the next trigger or phase change; triggering in
// the neutral zone clears the mark.
func (c *Controller) NeuroTrigger() {
	if c.phase != Testing || c.calibrating {
		return
	}
	slot := -1
	if math.Hypot(c.cursorX-c.cx, c.cursorY-c.cy) > c.bound*config.NeutralZoneRatio {
		slot = c.nearestSlot(c.cursorX, c.cursorY)
	}
	for i, t := range c.targets {
		t.Neuro = i == slot
	}
}

// SetFocus updates the focus duration, clamped. Takes effect immediately.
func (c *Controller) SetFocus(d time.Duration) { c.focus = config.ClampFocus(d) }

// SetGap updates the gap duration, clamped. Takes effect immediately.
func (c *Controller) SetGap(d time.Duration) { c.gap = config.ClampGap(d) }

// SetRounds updates the round count, clamped. Takes effect immediately.
func (c *Controller) SetRounds(n int) { c.rounds = config.ClampRounds(n) }

// PullTarget returns the point the swarm should be drawn toward this tick,
// or ok=false when the swarm should rest at the field center.
func (c *Controller) PullTarget() (x, y float64, ok bool) {
	return c.pullX, c.pullY, c.hasPull
}

// Phase returns the current top-level mode.
func (c *Controller) Phase() Phase { return c.phase }

// SubPhase returns the calibration sub-state.
func (c *Controller) SubPhase() SubPhase {
	if !c.calibrating {
		return Idle
	}
	return c.sub
}

// Calibrating reports whether a calibration run is active.
func (c *Controller) Calibrating() bool { return c.calibrating }

// Done reports whether the last calibration run completed all rounds. It is
// reset by StartCalibration and SetPhase.
func (c *Controller) Done() bool { return c.done }

// Round returns the 1-based round for display and the configured total.
func (c *Controller) Round() (current, total int) {
	cur := c.round + 1
	if cur > c.rounds {
		cur = c.rounds
	}
	return cur, c.rounds
}

// Targets exposes the stimulus targets for rendering.
func (c *Controller) Targets() []*Target { return c.targets }

// ActiveTarget returns the glowing calibration stimulus, or nil.
func (c *Controller) ActiveTarget() *Target {
	if c.activeSlot < 0 {
		return nil
	}
	return c.targets[c.activeSlot]
}

// SessionElapsed returns time since calibration started, for the timer
// widget. Zero when no run is active.
func (c *Controller) SessionElapsed() time.Duration {
	if !c.calibrating {
		return 0
	}
	return c.now().Sub(c.sessionStart)
}

// PhaseRemaining returns time left in the current calibration sub-phase.
func (c *Controller) PhaseRemaining() time.Duration {
	if !c.calibrating {
		return 0
	}
	total := c.focus
	if c.sub == Gap {
		total = c.gap
	}
	if rem := total - c.now().Sub(c.phaseStart); rem > 0 {
		return rem
	}
	return 0
}

// Focus returns the configured focus duration.
func (c *Controller) Focus() time.Duration { return c.focus }

// Gap returns the configured gap duration.
func (c *Controller) Gap() time.Duration { return c.gap }

func moveTrigger(focus time.Duration) time.Duration {
	return time.Duration(float64(focus) * config.MoveTriggerRatio)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
