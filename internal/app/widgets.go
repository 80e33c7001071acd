package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/avdeyev/bci-swarm/internal/config"
)

// dropdown is a click-to-open selector drawn on the control panel. The
// header shows current(); the option list overlays the scene while open.
type dropdown struct {
	label      string
	x, y, w, h float64
	options    []string
	current    func() string
	onSelect   func(i int)
	open       bool
	hover      bool
}

func (d *dropdown) headerContains(mx, my float64) bool {
	return mx >= d.x && mx <= d.x+d.w && my >= d.y && my <= d.y+d.h
}

// itemAt returns the option index under the cursor while the list is open.
func (d *dropdown) itemAt(mx, my float64) (int, bool) {
	for i := range d.options {
		x, y, w, h := d.itemRect(i)
		if mx >= x && mx <= x+w && my >= y && my <= y+h {
			return i, true
		}
	}
	return 0, false
}

func (d *dropdown) itemRect(i int) (x, y, w, h float64) {
	return d.x, d.y + d.h + float64(i)*d.h, d.w, d.h
}

func (d *dropdown) draw(dst *ebiten.Image, th *config.Theme) {
	bg := th.DropdownBG
	if d.hover || d.open {
		bg = th.DropdownHover
	}
	vector.DrawFilledRect(dst, float32(d.x), float32(d.y), float32(d.w), float32(d.h), bg, false)
	vector.StrokeRect(dst, float32(d.x), float32(d.y), float32(d.w), float32(d.h), 1, th.TextSecondary, false)
	ebitenutil.DebugPrintAt(dst, d.label, int(d.x), int(d.y)-14)
	ebitenutil.DebugPrintAt(dst, d.current(), int(d.x)+6, int(d.y)+4)
}

// drawList renders the open option list. Called after the scene so the list
// overlays whatever is underneath.
func (d *dropdown) drawList(dst *ebiten.Image, th *config.Theme, mx, my float64) {
	for i, opt := range d.options {
		x, y, w, h := d.itemRect(i)
		bg := th.DropdownBG
		if mx >= x && mx <= x+w && my >= y && my <= y+h {
			bg = th.DropdownHover
		}
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), bg, false)
		vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, th.TextSecondary, false)
		ebitenutil.DebugPrintAt(dst, opt, int(x)+6, int(y)+4)
	}
}

// button is a flat rectangular panel button.
type button struct {
	x, y, w, h float64
	label      func() string
	visible    func() bool
	onClick    func()
	bg         color.RGBA
	hover      bool
}

func (b *button) contains(mx, my float64) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

func (b *button) draw(dst *ebiten.Image, th *config.Theme) {
	if !b.visible() {
		return
	}
	bg := b.bg
	if b.hover {
		bg = color.RGBA{
			R: bg.R + (255-bg.R)/4,
			G: bg.G + (255-bg.G)/4,
			B: bg.B + (255-bg.B)/4,
			A: 255,
		}
	}
	vector.DrawFilledRect(dst, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(dst, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, th.TextSecondary, false)

	text := b.label()
	tx := int(b.x) + (int(b.w)-len(text)*6)/2
	ty := int(b.y) + (int(b.h)-14)/2
	ebitenutil.DebugPrintAt(dst, text, tx, ty)
}
