package app

import (
	"image/color"
	"strconv"

	"github.com/avdeyev/bci-swarm/internal/config"
	"github.com/avdeyev/bci-swarm/internal/phase"
)

// buildPanel lays the control widgets out along the top panel, left to
// right: theme, input mode, phase, timing dropdowns, start/stop.
func (a *App) buildPanel() {
	const y, h = 28.0, 24.0

	themeBtn := &button{
		x: 15, y: y, w: 80, h: h,
		bg:      color.RGBA{100, 120, 160, 255},
		label:   func() string { return config.Themes[a.themeIdx].Name },
		visible: func() bool { return true },
		onClick: func() { a.themeIdx = (a.themeIdx + 1) % len(config.Themes) },
	}

	inputDrop := &dropdown{
		label: "Input:", x: 110, y: y, w: 130, h: h,
		options: []string{inputMouse.String(), inputTracker.String()},
		current: func() string { return a.mode.String() },
	}
	inputDrop.onSelect = func(i int) { a.setInputMode(inputMode(i)) }

	phaseDrop := &dropdown{
		label: "Phase:", x: 255, y: y, w: 150, h: h,
		options: []string{phase.Testing.String(), phase.Calibration.String(), phase.Start.String()},
		current: func() string { return a.ctrl.Phase().String() },
	}
	phaseDrop.onSelect = func(i int) { a.setPhase(phase.Phase(i)) }

	focusDrop := &dropdown{
		label: "Focus:", x: 420, y: y, w: 65, h: h,
		current: func() string { return fmtDur(a.settings.Focus) },
	}
	for _, d := range config.FocusOptions {
		focusDrop.options = append(focusDrop.options, fmtDur(d))
	}
	focusDrop.onSelect = func(i int) {
		a.settings.Focus = config.FocusOptions[i]
		a.ctrl.SetFocus(a.settings.Focus)
	}

	gapDrop := &dropdown{
		label: "Gap:", x: 500, y: y, w: 65, h: h,
		current: func() string { return fmtDur(a.settings.Gap) },
	}
	for _, d := range config.GapOptions {
		gapDrop.options = append(gapDrop.options, fmtDur(d))
	}
	gapDrop.onSelect = func(i int) {
		a.settings.Gap = config.GapOptions[i]
		a.ctrl.SetGap(a.settings.Gap)
	}

	roundsDrop := &dropdown{
		label: "Rounds:", x: 580, y: y, w: 65, h: h,
		current: func() string { return strconv.Itoa(a.settings.Rounds) },
	}
	for _, n := range config.RoundsOptions {
		roundsDrop.options = append(roundsDrop.options, strconv.Itoa(n))
	}
	roundsDrop.onSelect = func(i int) {
		a.settings.Rounds = config.RoundsOptions[i]
		a.ctrl.SetRounds(a.settings.Rounds)
	}

	startBtn := &button{
		x: 665, y: y, w: 90, h: h,
		bg:      color.RGBA{0x4C, 0xAF, 0x50, 0xFF},
		visible: func() bool { return a.ctrl.Phase() == phase.Calibration },
		label: func() string {
			if a.ctrl.Calibrating() {
				return "Stop"
			}
			return "Start"
		},
		onClick: a.toggleCalibration,
	}

	a.dropdowns = []*dropdown{inputDrop, phaseDrop, focusDrop, gapDrop, roundsDrop}
	a.buttons = []*button{themeBtn, startBtn}
}
