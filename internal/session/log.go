// Package session writes an append-only flat-line record of gaze samples and
// calibration events, one file per run.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const timeFormat = "2006-01-02T15:04:05.000"

// Logger appends to a timestamped log file. Methods never fail the caller;
// a write error is remembered and the logger goes quiet.
type Logger struct {
	f    *os.File
	path string
	err  error
}

// New creates the log directory if needed and opens a fresh session file.
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("session: create log dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("session_%s.log", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("session: create log file: %w", err)
	}
	l := &Logger{f: f, path: path}
	fmt.Fprintf(f, "# bci-swarm session log\n# started %s\n", time.Now().Format(timeFormat))
	fmt.Printf("logging session to %s\n", path)
	return l, nil
}

// Path returns the log file location.
func (l *Logger) Path() string { return l.path }

// Sample records one tick of input and swarm state. target is 0 when no
// stimulus is active.
func (l *Logger) Sample(t time.Time, x, y, coherence float64, phase string, target int) {
	l.writef("%s sample x=%.1f y=%.1f coherence=%.3f phase=%q target=%d\n",
		t.Format(timeFormat), x, y, coherence, phase, target)
}

// Event records a discrete control action or phase transition.
func (l *Logger) Event(t time.Time, format string, args ...any) {
	l.writef("%s event %s\n", t.Format(timeFormat), fmt.Sprintf(format, args...))
}

func (l *Logger) writef(format string, args ...any) {
	if l.err != nil {
		return
	}
	if _, err := fmt.Fprintf(l.f, format, args...); err != nil {
		l.err = err
		fmt.Printf("session log write failed, logging disabled: %v\n", err)
	}
}

// Close flushes and closes the file.
func (l *Logger) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
