// Package swarm implements the animated dot field at the center of the
// display. Dots are point masses pulled toward a target with a spring force,
// damped, speed-limited and softly contained in a circular bound. The field
// publishes a per-tick coherence score describing how aligned the dots'
// headings currently are.
package swarm

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/avdeyev/bci-swarm/internal/config"
)

const (
	// Perlin noise shape for the idle wander field.
	noiseAlpha = 2.0
	noiseBeta  = 2.0
	noiseIter  = 3

	// Noise-space distance between dots, large enough that their wander
	// channels are uncorrelated.
	noiseSpread = 17.3

	// Noise channel for the shared gust, outside every per-dot channel.
	gustChannel = -noiseSpread

	// Dots slower than this have no meaningful heading and are left out of
	// the coherence average.
	minHeadingSpeed = 1e-6
)

// Dot is a single point mass. Position and velocity are in window pixels and
// pixels per second.
type Dot struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.RGBA

	noise float64 // per-dot offset into the wander noise field
}

// Field owns a fixed-size collection of dots confined to a circular region.
type Field struct {
	cx, cy float64
	bound  float64

	dots      []Dot
	coherence float64
	resting   bool

	wander *perlin.Perlin
	t      float64
}

// New creates a field of n dots scattered inside the bound with small random
// initial velocities. The rng drives both placement and the wander noise seed.
func New(cx, cy, bound float64, n int, rng *rand.Rand) *Field {
	f := &Field{
		cx:     cx,
		cy:     cy,
		bound:  bound,
		dots:   make([]Dot, n),
		wander: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseIter, rng.Int63()),
	}
	for i := range f.dots {
		// Rejection-free placement: random angle, sqrt-distributed radius.
		ang := rng.Float64() * 2 * math.Pi
		r := bound * 0.9 * math.Sqrt(rng.Float64())
		f.dots[i] = Dot{
			X:      cx + r*math.Cos(ang),
			Y:      cy + r*math.Sin(ang),
			VX:     (rng.Float64()*2 - 1) * 40,
			VY:     (rng.Float64()*2 - 1) * 40,
			Radius: config.DotRadius,
			Color:  config.DotColors[i%len(config.DotColors)],
			noise:  float64(i) * noiseSpread,
		}
	}
	return f
}

// Step advances every dot by dt seconds toward the pull target and returns
// the coherence score for this tick. With hasTarget false, or a target at the
// field center, the field is resting and dots mill about the center.
func (f *Field) Step(targetX, targetY float64, hasTarget bool, dt float64) float64 {
	tx, ty := targetX, targetY
	if !hasTarget {
		tx, ty = f.cx, f.cy
	}
	f.resting = math.Hypot(tx-f.cx, ty-f.cy) < config.RestRadius
	if f.resting {
		tx, ty = f.cx, f.cy
	}

	f.t += config.WanderSpeed * dt

	// One gust per tick, shared by every dot while driven: a unit vector
	// whose direction drifts with the noise field.
	gustAng := 2 * math.Pi * f.wander.Noise2D(gustChannel, f.t)
	gustX, gustY := math.Cos(gustAng), math.Sin(gustAng)

	var sumX, sumY float64
	moving := 0
	for i := range f.dots {
		d := &f.dots[i]

		// Spring toward the pull target.
		d.VX += (tx - d.X) * config.SpringStrength * dt
		d.VY += (ty - d.Y) * config.SpringStrength * dt

		// Resting dots wander on their own noise channels, so idle
		// headings stay uncorrelated. Driven dots ride the shared gust,
		// which keeps a settled swarm moving with a common heading.
		if f.resting {
			d.VX += f.wander.Noise2D(d.noise, f.t) * config.WanderStrength * dt
			d.VY += f.wander.Noise2D(d.noise+noiseSpread/2, f.t+31.7) * config.WanderStrength * dt
		} else {
			d.VX += gustX * config.GustStrength * dt
			d.VY += gustY * config.GustStrength * dt
		}

		// Damping, then speed limit.
		d.VX *= config.Damping
		d.VY *= config.Damping
		if speed := math.Hypot(d.VX, d.VY); speed > config.MaxSpeed {
			scale := config.MaxSpeed / speed
			d.VX *= scale
			d.VY *= scale
		}

		d.X += d.VX * dt
		d.Y += d.VY * dt

		f.contain(d, dt)

		// Headings come from the contained velocity. The projection in
		// contain scales both components, so a pinned dot keeps its
		// direction and still counts at full weight.
		if speed := math.Hypot(d.VX, d.VY); speed > minHeadingSpeed {
			sumX += d.VX / speed
			sumY += d.VY / speed
			moving++
		}
	}

	if moving == 0 {
		f.coherence = 0
	} else {
		f.coherence = clamp01(math.Hypot(sumX, sumY) / float64(moving))
	}
	return f.coherence
}

// contain applies the soft boundary. Overshoot past the bound radius adds a
// corrective pull toward the center; overshoot past the slack ceiling is
// projected back so the distance invariant holds on every tick.
func (f *Field) contain(d *Dot, dt float64) {
	dx := d.X - f.cx
	dy := d.Y - f.cy
	dist := math.Hypot(dx, dy)
	if dist <= f.bound || dist == 0 {
		return
	}

	over := dist - f.bound
	d.VX -= dx / dist * over * config.BoundarySpring * dt
	d.VY -= dy / dist * over * config.BoundarySpring * dt

	if limit := f.bound + config.BoundSlack; dist > limit {
		scale := limit / dist
		d.X = f.cx + dx*scale
		d.Y = f.cy + dy*scale
		d.VX *= 0.7
		d.VY *= 0.7
	}
}

// Snapshot is the per-tick state worth logging.
type Snapshot struct {
	Coherence float64
	Resting   bool
}

// Snapshot returns the loggable state computed by the last Step.
func (f *Field) Snapshot() Snapshot {
	return Snapshot{Coherence: f.coherence, Resting: f.resting}
}

// Dots exposes the dot slice for rendering. Callers must not mutate it.
func (f *Field) Dots() []Dot { return f.dots }

// Coherence returns the score computed by the last Step, in [0,1].
func (f *Field) Coherence() float64 { return f.coherence }

// Resting reports whether the last Step pulled toward the field center.
func (f *Field) Resting() bool { return f.resting }

// Center returns the field center.
func (f *Field) Center() (x, y float64) { return f.cx, f.cy }

// Bound returns the containment radius.
func (f *Field) Bound() float64 { return f.bound }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
