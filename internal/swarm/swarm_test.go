package swarm

import (
	"math"
	"math/rand"
	"testing"

	"github.com/avdeyev/bci-swarm/internal/config"
)

const testDT = 1.0 / 60.0

func newTestField(seed int64) *Field {
	return New(600, 400, 150, config.DefaultDotCount, rand.New(rand.NewSource(seed)))
}

func TestFieldCardinalityFixed(t *testing.T) {
	f := newTestField(1)
	if got := len(f.Dots()); got != config.DefaultDotCount {
		t.Fatalf("expected %d dots, got %d", config.DefaultDotCount, got)
	}
	for i := 0; i < 500; i++ {
		f.Step(0, 0, false, testDT)
	}
	if got := len(f.Dots()); got != config.DefaultDotCount {
		t.Errorf("dot count changed to %d after stepping", got)
	}
}

func TestDotsSpawnInsideBound(t *testing.T) {
	f := newTestField(2)
	cx, cy := f.Center()
	for i, d := range f.Dots() {
		if dist := math.Hypot(d.X-cx, d.Y-cy); dist > f.Bound() {
			t.Errorf("dot %d spawned outside bound: dist=%.1f", i, dist)
		}
	}
}

// Idling with the pull target at the field center should leave the dots
// milling about with uncorrelated headings.
func TestIdleCoherenceSettlesLow(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		f := newTestField(seed)
		for i := 0; i < 200; i++ {
			f.Step(0, 0, false, testDT)
		}
		var sum float64
		const samples = 200
		for i := 0; i < samples; i++ {
			sum += f.Step(0, 0, false, testDT)
		}
		if avg := sum / samples; avg >= 0.3 {
			t.Errorf("seed %d: idle coherence averaged %.3f, want < 0.3", seed, avg)
		}
	}
}

// A sustained off-center target must align the swarm, whether the target
// sits inside the bound, at the rim, or far beyond it (stimulus layout
// distance and past the hard ceiling included).
func TestSustainedTargetRaisesCoherence(t *testing.T) {
	offsets := []float64{80, 140, 200, 333, 450}

	for _, off := range offsets {
		f := newTestField(3)
		cx, cy := f.Center()
		tx, ty := cx+off, cy

		var c float64
		for i := 0; i < 300; i++ {
			c = f.Step(tx, ty, true, testDT)
		}
		if c <= 0.8 {
			t.Errorf("offset %.0f: coherence after 300 ticks = %.3f, want > 0.8", off, c)
		}
		// Alignment holds while the target is sustained.
		var sum float64
		for i := 0; i < 100; i++ {
			sum += f.Step(tx, ty, true, testDT)
		}
		if avg := sum / 100; avg <= 0.8 {
			t.Errorf("offset %.0f: coherence averaged %.3f while target still active", off, avg)
		}
	}
}

// Containment invariant: no dot ever ends a tick farther than bound+slack
// from the center, even under target jitter.
func TestBoundInvariantUnderJitter(t *testing.T) {
	f := newTestField(4)
	rng := rand.New(rand.NewSource(99))
	cx, cy := f.Center()
	limit := f.Bound() + config.BoundSlack + 1e-9

	for i := 0; i < 10000; i++ {
		tx := rng.Float64() * 1200
		ty := rng.Float64() * 800
		f.Step(tx, ty, true, testDT)
		for j, d := range f.Dots() {
			if dist := math.Hypot(d.X-cx, d.Y-cy); dist > limit {
				t.Fatalf("tick %d: dot %d at dist %.3f exceeds bound+slack %.3f", i, j, dist, limit)
			}
		}
	}
}

func TestCoherenceAlwaysInRange(t *testing.T) {
	f := newTestField(5)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		has := rng.Intn(3) > 0
		c := f.Step(rng.Float64()*1200, rng.Float64()*800, has, testDT)
		if c < 0 || c > 1 {
			t.Fatalf("tick %d: coherence %.4f out of [0,1]", i, c)
		}
	}
}

func TestSnapshotReflectsLastStep(t *testing.T) {
	f := newTestField(8)
	cx, cy := f.Center()

	c := f.Step(cx+300, cy, true, testDT)
	snap := f.Snapshot()
	if snap.Coherence != c {
		t.Errorf("snapshot coherence %.4f != step result %.4f", snap.Coherence, c)
	}
	if snap.Resting {
		t.Error("driven field reported as resting in snapshot")
	}

	c = f.Step(0, 0, false, testDT)
	snap = f.Snapshot()
	if snap.Coherence != c || !snap.Resting {
		t.Errorf("idle snapshot = %+v, want coherence %.4f and resting", snap, c)
	}
}

// A target within the rest radius of the center is treated as idling.
func TestRestingDetection(t *testing.T) {
	f := newTestField(6)
	cx, cy := f.Center()

	f.Step(cx+config.RestRadius/2, cy, true, testDT)
	if !f.Resting() {
		t.Error("target near center should leave the field resting")
	}
	f.Step(cx+200, cy, true, testDT)
	if f.Resting() {
		t.Error("off-center target should not be resting")
	}
	f.Step(0, 0, false, testDT)
	if !f.Resting() {
		t.Error("no target should leave the field resting")
	}
}
