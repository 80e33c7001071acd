package session

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoggerWritesFlatLines(t *testing.T) {
	dir := t.TempDir()
	l, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ts := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	l.Event(ts, "calibration_started focus=3s gap=2s rounds=5")
	l.Sample(ts.Add(16*time.Millisecond), 612.4, 388.0, 0.127, "Calibration Phase", 3)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "# bci-swarm session log\n") {
		t.Errorf("missing header, got %q", text)
	}
	if !strings.Contains(text, "event calibration_started focus=3s gap=2s rounds=5") {
		t.Errorf("event line missing from:\n%s", text)
	}
	if !strings.Contains(text, `sample x=612.4 y=388.0 coherence=0.127 phase="Calibration Phase" target=3`) {
		t.Errorf("sample line missing from:\n%s", text)
	}

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for _, line := range lines[2:] {
		if !strings.HasPrefix(line, "2026-03-01T") {
			t.Errorf("line not timestamped: %q", line)
		}
	}
}

func TestLoggerCloseTwice(t *testing.T) {
	l, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
