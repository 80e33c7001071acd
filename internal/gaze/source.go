// Package gaze abstracts where the cursor position comes from: the mouse, or
// a vendor eye tracker with automatic fallback when no device is present.
package gaze

// Point is a position in window pixels.
type Point struct {
	X, Y float64
}

// Source supplies one position per tick. ok=false means no sample could be
// produced this tick; callers should reuse the previous one.
type Source interface {
	Sample() (p Point, ok bool)
}

// Sampler wraps a Source and freezes on the last good sample, so a dropout
// never snaps the cursor to the origin.
type Sampler struct {
	src  Source
	last Point
}

// NewSampler starts at the given initial point, typically the field center.
func NewSampler(src Source, initial Point) *Sampler {
	return &Sampler{src: src, last: initial}
}

// SetSource swaps the underlying source, keeping the last sample.
func (s *Sampler) SetSource(src Source) { s.src = src }

// Next returns this tick's position. When the source has nothing, the
// previous position is returned unchanged.
func (s *Sampler) Next() Point {
	if p, ok := s.src.Sample(); ok {
		s.last = p
	}
	return s.last
}
