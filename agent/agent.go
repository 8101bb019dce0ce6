// Package agent drives a running App through a simulation backend.
// It enables scripted interactions and end-to-end tests by exposing
// key presses and screen queries instead of raw terminal I/O.
package agent

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/fluxstore/backend"
	"github.com/odvcencio/fluxstore/backend/sim"
	"github.com/odvcencio/fluxstore/runtime"
)

// Common errors returned by Agent methods.
var (
	ErrTimeout  = errors.New("operation timed out")
	ErrNoApp    = errors.New("no app running")
	ErrNotFound = errors.New("text not found")
)

// Agent controls an App running against a simulation backend.
type Agent struct {
	mu       sync.Mutex
	sim      *sim.Backend
	tickRate time.Duration
	timeout  time.Duration
	done     chan error
}

// Config configures an Agent.
type Config struct {
	// Sim is the simulation backend. If nil, one will be created.
	Sim *sim.Backend

	// Width and Height set the terminal dimensions (default 80x24).
	Width, Height int

	// TickRate is the polling interval used while waiting. Default is 5ms.
	TickRate time.Duration

	// Timeout bounds WaitForText and Wait. Default is 2s.
	Timeout time.Duration
}

// New creates a new Agent with the given configuration.
func New(cfg Config) *Agent {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	s := cfg.Sim
	if s == nil {
		s = sim.New(width, height)
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 5 * time.Millisecond
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	return &Agent{
		sim:      s,
		tickRate: tickRate,
		timeout:  timeout,
	}
}

// Backend returns the underlying simulation backend.
// Pass it as the App backend before calling Start.
func (a *Agent) Backend() *sim.Backend {
	if a == nil {
		return nil
	}
	return a.sim
}

// Start runs app.Run on its own goroutine.
func (a *Agent) Start(ctx context.Context, app *runtime.App) {
	if a == nil || app == nil {
		return
	}
	done := make(chan error, 1)
	a.mu.Lock()
	a.done = done
	a.mu.Unlock()
	go func() {
		done <- app.Run(ctx)
	}()
}

// Wait blocks until the app started by Start returns.
func (a *Agent) Wait() error {
	if a == nil {
		return ErrNoApp
	}
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()
	if done == nil {
		return ErrNoApp
	}
	select {
	case err := <-done:
		return err
	case <-time.After(a.timeout):
		return ErrTimeout
	}
}

// Press sends a key event.
func (a *Agent) Press(key backend.Key) {
	if a == nil {
		return
	}
	a.sim.Inject(backend.KeyEvent{Key: key})
}

// Type sends one rune event per character of text.
func (a *Agent) Type(text string) {
	if a == nil {
		return
	}
	for _, r := range text {
		a.sim.Inject(backend.KeyEvent{Key: backend.KeyRune, Rune: r})
	}
}

// Resize changes the simulated terminal size.
func (a *Agent) Resize(width, height int) {
	if a == nil {
		return
	}
	a.sim.Inject(backend.ResizeEvent{Width: width, Height: height})
}

// Tick waits one polling interval.
func (a *Agent) Tick() {
	if a == nil {
		return
	}
	time.Sleep(a.tickRate)
}

// WaitForText polls the screen until text appears.
func (a *Agent) WaitForText(text string) error {
	return a.WaitFor(func(s Snapshot) bool {
		return s.Contains(text)
	})
}

// WaitFor polls the screen until cond holds for a snapshot.
func (a *Agent) WaitFor(cond func(Snapshot) bool) error {
	if a == nil || cond == nil {
		return ErrNoApp
	}
	deadline := time.Now().Add(a.timeout)
	for time.Now().Before(deadline) {
		if cond(a.Snapshot()) {
			return nil
		}
		a.Tick()
	}
	return ErrTimeout
}

// Snapshot returns the last committed frame.
func (a *Agent) Snapshot() Snapshot {
	if a == nil || a.sim == nil {
		return Snapshot{}
	}
	snap := Snapshot{
		Timestamp: time.Now(),
		Lines:     a.sim.LastFrame(),
		Frames:    len(a.sim.Frames()),
	}
	snap.Width, snap.Height = a.sim.Size()
	return snap
}

// ContainsText checks if the given text appears on screen.
func (a *Agent) ContainsText(text string) bool {
	return a.Snapshot().Contains(text)
}

// FindText returns the cell position of text on screen, or (-1, -1) if not
// found.
func (a *Agent) FindText(text string) (x, y int) {
	return a.Snapshot().Find(text)
}

// CaptureText returns the screen as newline-joined rows.
func (a *Agent) CaptureText() string {
	return a.Snapshot().Text()
}

// Line returns row y of the screen.
func (a *Agent) Line(y int) (string, error) {
	lines := a.Snapshot().Lines
	if y < 0 || y >= len(lines) {
		return "", ErrNotFound
	}
	return lines[y], nil
}

// Contains reports whether text appears on any row.
func (s Snapshot) Contains(text string) bool {
	_, y := s.Find(text)
	return y >= 0
}

// Find returns the cell column and row of text, or (-1, -1).
func (s Snapshot) Find(text string) (x, y int) {
	for row, line := range s.Lines {
		if idx := strings.Index(line, text); idx >= 0 {
			return runewidth.StringWidth(line[:idx]), row
		}
	}
	return -1, -1
}

// Text returns the rows joined by newlines.
func (s Snapshot) Text() string {
	return strings.Join(s.Lines, "\n")
}
