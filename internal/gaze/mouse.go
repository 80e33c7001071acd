package gaze

import "github.com/hajimehoshi/ebiten/v2"

// Mouse reads the window cursor. It always has a sample.
type Mouse struct{}

func (Mouse) Sample() (Point, bool) {
	x, y := ebiten.CursorPosition()
	return Point{X: float64(x), Y: float64(y)}, true
}
