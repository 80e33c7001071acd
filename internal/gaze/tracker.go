package gaze

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when no eye tracker hardware can be found. The
// control surface is expected to fall back to the mouse.
var ErrUnavailable = errors.New("gaze: no eye tracker device found")

// Device is a connected eye tracker. Gaze points are normalized display
// coordinates in [0,1] per eye; ok=false means the device has no fresh
// sample (blink, tracking loss).
type Device interface {
	Model() string
	Gaze() (left, right Point, ok bool)
}

// DiscoverFunc locates an eye tracker. The default build has no vendor SDK
// linked in and never finds one; integrations plug a real discovery in here.
type DiscoverFunc func() (Device, error)

// DefaultDiscover is the stock discovery used when none is supplied.
func DefaultDiscover() (Device, error) {
	return nil, ErrUnavailable
}

// Tracker adapts a Device to a per-tick Source. It averages both eyes and
// converts normalized coordinates to window pixels, the one place in the
// program where that conversion happens.
type Tracker struct {
	dev           Device
	width, height float64
}

// NewTracker discovers a device and wires it to the given window size. It
// returns ErrUnavailable (wrapped) when discovery fails.
func NewTracker(width, height float64, discover DiscoverFunc) (*Tracker, error) {
	if discover == nil {
		discover = DefaultDiscover
	}
	dev, err := discover()
	if err != nil {
		return nil, fmt.Errorf("gaze: tracker discovery: %w", err)
	}
	fmt.Printf("connected to eye tracker: %s\n", dev.Model())
	return &Tracker{dev: dev, width: width, height: height}, nil
}

func (t *Tracker) Sample() (Point, bool) {
	left, right, ok := t.dev.Gaze()
	if !ok {
		return Point{}, false
	}
	return Point{
		X: (left.X + right.X) / 2 * t.width,
		Y: (left.Y + right.Y) / 2 * t.height,
	}, true
}
