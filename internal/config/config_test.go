package config

import (
	"testing"
	"time"
)

func TestClampForcesRanges(t *testing.T) {
	s := Settings{
		DotCount: 5000,
		Focus:    50 * time.Millisecond,
		Gap:      time.Minute,
		Rounds:   -3,
		TPS:      1000,
	}
	s.Clamp()

	if s.DotCount != MaxDotCount {
		t.Errorf("DotCount = %d, want %d", s.DotCount, MaxDotCount)
	}
	if s.Focus != MinFocus {
		t.Errorf("Focus = %s, want %s", s.Focus, MinFocus)
	}
	if s.Gap != MaxGap {
		t.Errorf("Gap = %s, want %s", s.Gap, MaxGap)
	}
	if s.Rounds != MinRounds {
		t.Errorf("Rounds = %d, want %d", s.Rounds, MinRounds)
	}
	if s.TPS != 120 {
		t.Errorf("TPS = %d, want 120", s.TPS)
	}
}

func TestClampKeepsValidValues(t *testing.T) {
	s := Default()
	before := s
	s.Clamp()
	if s != before {
		t.Errorf("Clamp changed defaults: %+v -> %+v", before, s)
	}
}

func TestOptionListsWithinBounds(t *testing.T) {
	for _, d := range FocusOptions {
		if d < MinFocus || d > MaxFocus {
			t.Errorf("focus option %s outside [%s, %s]", d, MinFocus, MaxFocus)
		}
	}
	for _, d := range GapOptions {
		if d < MinGap || d > MaxGap {
			t.Errorf("gap option %s outside [%s, %s]", d, MinGap, MaxGap)
		}
	}
	for _, n := range RoundsOptions {
		if n < MinRounds || n > MaxRounds {
			t.Errorf("rounds option %d outside [%d, %d]", n, MinRounds, MaxRounds)
		}
	}
}
