package gaze

import (
	"errors"
	"testing"
)

type scriptedSource struct {
	samples []Point
	avail   []bool
	i       int
}

func (s *scriptedSource) Sample() (Point, bool) {
	p, ok := s.samples[s.i], s.avail[s.i]
	if s.i < len(s.samples)-1 {
		s.i++
	}
	return p, ok
}

func TestSamplerFreezesOnDropout(t *testing.T) {
	src := &scriptedSource{
		samples: []Point{{100, 200}, {}, {}, {300, 400}},
		avail:   []bool{true, false, false, true},
	}
	s := NewSampler(src, Point{600, 400})

	if p := s.Next(); p != (Point{100, 200}) {
		t.Errorf("first sample = %v, want {100 200}", p)
	}
	// Dropouts reuse the last good sample rather than jumping to origin.
	if p := s.Next(); p != (Point{100, 200}) {
		t.Errorf("dropout sample = %v, want frozen {100 200}", p)
	}
	if p := s.Next(); p != (Point{100, 200}) {
		t.Errorf("second dropout sample = %v, want frozen {100 200}", p)
	}
	if p := s.Next(); p != (Point{300, 400}) {
		t.Errorf("recovered sample = %v, want {300 400}", p)
	}
}

func TestSamplerStartsAtInitialPoint(t *testing.T) {
	src := &scriptedSource{samples: []Point{{}}, avail: []bool{false}}
	s := NewSampler(src, Point{600, 400})
	if p := s.Next(); p != (Point{600, 400}) {
		t.Errorf("sample before any data = %v, want initial {600 400}", p)
	}
}

type fakeDevice struct {
	left, right Point
	ok          bool
}

func (d *fakeDevice) Model() string { return "fake tracker" }
func (d *fakeDevice) Gaze() (Point, Point, bool) {
	return d.left, d.right, d.ok
}

func TestTrackerAveragesEyesAndConverts(t *testing.T) {
	dev := &fakeDevice{left: Point{0.4, 0.2}, right: Point{0.6, 0.4}, ok: true}
	tr, err := NewTracker(1200, 800, func() (Device, error) { return dev, nil })
	if err != nil {
		t.Fatalf("discovery failed: %v", err)
	}

	p, ok := tr.Sample()
	if !ok {
		t.Fatal("expected a sample")
	}
	if p.X != 600 || p.Y != 240 {
		t.Errorf("sample = %v, want {600 240}", p)
	}

	dev.ok = false
	if _, ok := tr.Sample(); ok {
		t.Error("tracking loss should yield no sample")
	}
}

func TestTrackerDiscoveryFailure(t *testing.T) {
	_, err := NewTracker(1200, 800, nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}
