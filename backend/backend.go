// Package backend defines the terminal surface the runtime draws to.
package backend

// Key identifies a non-printable key. Printable input arrives as KeyRune.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyEscape
	KeyUp
	KeyDown
	KeyBackspace
	KeyCtrlC
)

// Event is input produced by a backend.
type Event interface {
	isEvent()
}

// KeyEvent is a keyboard press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Ctrl bool
}

func (KeyEvent) isEvent() {}

// ResizeEvent reports new terminal dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// Backend is a line-oriented terminal.
type Backend interface {
	Init() error
	Fini()
	Size() (width, height int)
	// PollEvent blocks until input arrives. It returns nil once the
	// backend has been finalized.
	PollEvent() Event
	// Draw replaces the whole frame with lines, one per row.
	Draw(lines []string)
	Show()
}
