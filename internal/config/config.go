package config

import "time"

const (
	WindowWidth  = 1200
	WindowHeight = 800

	// Control panel across the top of the window.
	PanelHeight  = 60
	PanelPadding = 15

	// Center field sizing relative to min(width, height-panel).
	FieldRadiusRatio    = 0.25
	StimulusLayoutRatio = 0.45

	// Stimulus circles around the field.
	StimulusCount       = 8
	StimulusRadius      = 30.0
	StimulusGlowWidth   = 4.0
	StimulusNormalWidth = 2.0

	// Vertical progress bar next to each stimulus.
	ProgressBarWidth   = 8.0
	ProgressBarPadding = 14.0

	// Dot appearance.
	DotRadius = 3.0

	// Dot physics. Damping is a per-tick velocity factor, max speed is px/s.
	SpringStrength = 8.0
	Damping        = 0.85
	MaxSpeed       = 300.0

	// Soft boundary containment. Dots beyond the field radius are pulled
	// back; BoundSlack is the hard ceiling on overshoot.
	BoundarySpring = 40.0
	BoundSlack     = 12.0

	// Idle wander noise (perlin), px/s^2.
	WanderStrength = 350.0
	WanderSpeed    = 0.6

	// Gust applied while driven, px/s^2. Shared by all dots, so a settled
	// swarm keeps a common heading instead of stalling on the target.
	GustStrength = 200.0

	// Cursor inside this fraction of the field radius counts as resting.
	NeutralZoneRatio = 0.7
	RestRadius       = 6.0

	// Dots start moving toward the stimulus at this fraction of focus time.
	MoveTriggerRatio = 0.83

	// Testing-phase progress decay, fraction per second.
	ProgressDecay = 0.30

	// Timer widget (bottom-left, calibration only).
	TimerWidth  = 120.0
	TimerHeight = 50.0
)

// Dot count and option bounds. The original offers fixed dropdown choices;
// out-of-range requests are clamped, never rejected.
const (
	DefaultDotCount = 50
	MinDotCount     = 10
	MaxDotCount     = 120

	DefaultFocus = 3 * time.Second
	MinFocus     = 1 * time.Second
	MaxFocus     = 5 * time.Second

	DefaultGap = 2 * time.Second
	MinGap     = 500 * time.Millisecond
	MaxGap     = 3 * time.Second

	DefaultRounds = 5
	MinRounds     = 1
	MaxRounds     = 50
)

// Dropdown choices, mirroring the control panel.
var (
	FocusOptions  = []time.Duration{1 * time.Second, 1500 * time.Millisecond, 2 * time.Second, 2500 * time.Millisecond, 3 * time.Second, 3500 * time.Millisecond, 4 * time.Second, 5 * time.Second}
	GapOptions    = []time.Duration{500 * time.Millisecond, 1 * time.Second, 1500 * time.Millisecond, 2 * time.Second, 2500 * time.Millisecond, 3 * time.Second}
	RoundsOptions = []int{5, 10, 15, 20, 25, 30, 35, 40, 45, 50}
)

// Settings carries the runtime-tunable values chosen on the CLI or in the
// control panel.
type Settings struct {
	DotCount int
	Focus    time.Duration
	Gap      time.Duration
	Rounds   int
	Theme    string
	Input    string
	LogDir   string
	LogGaze  bool
	TPS      int
}

// Default returns the settings the application starts with.
func Default() Settings {
	return Settings{
		DotCount: DefaultDotCount,
		Focus:    DefaultFocus,
		Gap:      DefaultGap,
		Rounds:   DefaultRounds,
		Theme:    "light",
		Input:    "mouse",
		LogDir:   "logs",
		LogGaze:  true,
		TPS:      60,
	}
}

// Clamp forces every field into its accepted range.
func (s *Settings) Clamp() {
	s.DotCount = clampInt(s.DotCount, MinDotCount, MaxDotCount)
	s.Focus = ClampFocus(s.Focus)
	s.Gap = ClampGap(s.Gap)
	s.Rounds = ClampRounds(s.Rounds)
	s.TPS = clampInt(s.TPS, 30, 120)
}

// ClampFocus bounds a focus duration to the accepted range.
func ClampFocus(d time.Duration) time.Duration {
	return clampDuration(d, MinFocus, MaxFocus)
}

// ClampGap bounds a gap duration to the accepted range.
func ClampGap(d time.Duration) time.Duration {
	return clampDuration(d, MinGap, MaxGap)
}

// ClampRounds bounds a round count to the accepted range.
func ClampRounds(n int) int {
	return clampInt(n, MinRounds, MaxRounds)
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
