package config

import "image/color"

// Theme is one of the three color palettes from the control panel.
type Theme struct {
	Name string

	Background    color.RGBA
	FieldFill     color.RGBA
	FieldBorder   color.RGBA
	StimulusIdle  color.RGBA
	StimulusGlow  color.RGBA
	NeuroGlow     color.RGBA
	ProgressBG    color.RGBA
	ProgressFill  color.RGBA
	PanelBG       color.RGBA
	TextPrimary   color.RGBA
	TextSecondary color.RGBA
	DropdownBG    color.RGBA
	DropdownHover color.RGBA
	TimerBG       color.RGBA
	TimerText     color.RGBA
}

// DotColors is the fixed per-dot palette; dots keep their color for life.
var DotColors = []color.RGBA{
	{0xFF, 0x6B, 0x6B, 0xFF},
	{0x4E, 0xCD, 0xC4, 0xFF},
	{0x45, 0xB7, 0xD1, 0xFF},
	{0xFF, 0xA0, 0x7A, 0xFF},
	{0x98, 0xD8, 0xC8, 0xFF},
	{0xF7, 0xDC, 0x6F, 0xFF},
}

var Light = Theme{
	Name:          "Light",
	Background:    color.RGBA{0xE8, 0xEA, 0xF0, 0xFF},
	FieldFill:     color.RGBA{0xB8, 0xC5, 0xA0, 0xFF},
	FieldBorder:   color.RGBA{0x7A, 0x8F, 0x6E, 0xFF},
	StimulusIdle:  color.RGBA{0x2D, 0x31, 0x42, 0xFF},
	StimulusGlow:  color.RGBA{0xFF, 0xD7, 0x00, 0xFF},
	NeuroGlow:     color.RGBA{0x94, 0x00, 0xD3, 0xFF},
	ProgressBG:    color.RGBA{0x1A, 0x1A, 0x1A, 0xFF},
	ProgressFill:  color.RGBA{0x00, 0xD9, 0xFF, 0xFF},
	PanelBG:       color.RGBA{0xF5, 0xF7, 0xFA, 0xFF},
	TextPrimary:   color.RGBA{0x2D, 0x31, 0x42, 0xFF},
	TextSecondary: color.RGBA{0x6B, 0x72, 0x80, 0xFF},
	DropdownBG:    color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	DropdownHover: color.RGBA{0xF0, 0xF4, 0xF8, 0xFF},
	TimerBG:       color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	TimerText:     color.RGBA{0x2D, 0x31, 0x42, 0xFF},
}

var Dark = Theme{
	Name:          "Dark",
	Background:    color.RGBA{0x1A, 0x1A, 0x2E, 0xFF},
	FieldFill:     color.RGBA{0x2D, 0x31, 0x42, 0xFF},
	FieldBorder:   color.RGBA{0x4F, 0x5B, 0x66, 0xFF},
	StimulusIdle:  color.RGBA{0x3E, 0x45, 0x54, 0xFF},
	StimulusGlow:  color.RGBA{0xFF, 0xA5, 0x00, 0xFF},
	NeuroGlow:     color.RGBA{0xA8, 0x55, 0xF7, 0xFF},
	ProgressBG:    color.RGBA{0x10, 0x10, 0x1A, 0xFF},
	ProgressFill:  color.RGBA{0x00, 0xD9, 0xFF, 0xFF},
	PanelBG:       color.RGBA{0x0F, 0x14, 0x19, 0xFF},
	TextPrimary:   color.RGBA{0xE2, 0xE8, 0xF0, 0xFF},
	TextSecondary: color.RGBA{0xA0, 0xAE, 0xC0, 0xFF},
	DropdownBG:    color.RGBA{0x2D, 0x37, 0x48, 0xFF},
	DropdownHover: color.RGBA{0x4A, 0x55, 0x68, 0xFF},
	TimerBG:       color.RGBA{0x2D, 0x31, 0x42, 0xFF},
	TimerText:     color.RGBA{0xE2, 0xE8, 0xF0, 0xFF},
}

// Colorblind swaps the red dot and yellow glow for deuteranopia-safe picks.
var Colorblind = Theme{
	Name:          "Colorblind",
	Background:    color.RGBA{0xF0, 0xF0, 0xF0, 0xFF},
	FieldFill:     color.RGBA{0xA0, 0xB0, 0xC0, 0xFF},
	FieldBorder:   color.RGBA{0x60, 0x70, 0x80, 0xFF},
	StimulusIdle:  color.RGBA{0x2D, 0x31, 0x42, 0xFF},
	StimulusGlow:  color.RGBA{0xFF, 0x88, 0x00, 0xFF},
	NeuroGlow:     color.RGBA{0x00, 0x66, 0xCC, 0xFF},
	ProgressBG:    color.RGBA{0x1A, 0x1A, 0x1A, 0xFF},
	ProgressFill:  color.RGBA{0x00, 0x99, 0xFF, 0xFF},
	PanelBG:       color.RGBA{0xE8, 0xE8, 0xE8, 0xFF},
	TextPrimary:   color.RGBA{0x1A, 0x1A, 0x1A, 0xFF},
	TextSecondary: color.RGBA{0x4A, 0x4A, 0x4A, 0xFF},
	DropdownBG:    color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	DropdownHover: color.RGBA{0xE0, 0xE0, 0xE0, 0xFF},
	TimerBG:       color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	TimerText:     color.RGBA{0x1A, 0x1A, 0x1A, 0xFF},
}

// Themes in panel-cycle order.
var Themes = []*Theme{&Light, &Dark, &Colorblind}
