// Package sim provides an in-memory backend for tests.
package sim

import (
	"errors"
	"sync"

	"github.com/odvcencio/fluxstore/backend"
)

// ErrInit is returned by Init when the backend was built with FailInit.
var ErrInit = errors.New("sim: init failed")

// Backend records frames and replays injected events.
type Backend struct {
	mu       sync.Mutex
	width    int
	height   int
	events   chan backend.Event
	done     chan struct{}
	finiOnce sync.Once
	frames   [][]string
	current  []string
	rows     int
	shown    int
	failInit bool
}

// New creates a backend with the given size.
func New(width, height int) *Backend {
	return &Backend{
		width:  width,
		height: height,
		events: make(chan backend.Event, 64),
		done:   make(chan struct{}),
	}
}

// FailInit makes the next Init return ErrInit.
func (b *Backend) FailInit() *Backend {
	b.failInit = true
	return b
}

// Init prepares the backend.
func (b *Backend) Init() error {
	if b.failInit {
		return ErrInit
	}
	return nil
}

// Fini stops event delivery. Pending PollEvent calls return nil.
func (b *Backend) Fini() {
	b.finiOnce.Do(func() {
		close(b.done)
	})
}

// Size returns the configured dimensions.
func (b *Backend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// Inject queues an event for PollEvent. Resize events also update Size.
func (b *Backend) Inject(ev backend.Event) {
	if resize, ok := ev.(backend.ResizeEvent); ok {
		b.mu.Lock()
		b.width, b.height = resize.Width, resize.Height
		b.mu.Unlock()
	}
	select {
	case b.events <- ev:
	case <-b.done:
	}
}

// PollEvent returns the next injected event.
func (b *Backend) PollEvent() backend.Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.done:
		return nil
	}
}

// Draw replaces the current frame.
func (b *Backend) Draw(lines []string) {
	b.mu.Lock()
	b.current = append([]string(nil), lines...)
	b.mu.Unlock()
}

// SetRow rewrites a single row of the current frame.
func (b *Backend) SetRow(y int, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.current) <= y {
		b.current = append(b.current, "")
	}
	b.current[y] = text
	b.rows++
}

// Show commits the current frame.
func (b *Backend) Show() {
	b.mu.Lock()
	b.frames = append(b.frames, append([]string(nil), b.current...))
	b.shown++
	b.mu.Unlock()
}

// Frames returns every committed frame.
func (b *Backend) Frames() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([][]string, len(b.frames))
	copy(out, b.frames)
	return out
}

// LastFrame returns the most recently committed frame.
func (b *Backend) LastFrame() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.frames) == 0 {
		return nil
	}
	return b.frames[len(b.frames)-1]
}

// RowWrites returns the number of SetRow calls.
func (b *Backend) RowWrites() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rows
}

var (
	_ backend.Backend   = (*Backend)(nil)
	_ backend.RowWriter = (*Backend)(nil)
)
