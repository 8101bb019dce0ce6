// Package tcell implements backend.Backend on a tcell screen.
package tcell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/fluxstore/backend"
)

// Backend draws lines onto a tcell screen.
type Backend struct {
	screen tcell.Screen
	style  tcell.Style
}

// New allocates a screen for the current terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an existing screen, such as tcell.NewSimulationScreen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Init initializes the terminal and hides the cursor.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	b.screen.HideCursor()
	b.screen.Clear()
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the screen dimensions.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// PollEvent translates tcell events, skipping the ones the runtime ignores.
func (b *Backend) PollEvent() backend.Event {
	for {
		switch ev := b.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if key, ok := translateKey(ev); ok {
				return key
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			return backend.ResizeEvent{Width: w, Height: h}
		}
	}
}

// Draw clears the screen and writes lines.
func (b *Backend) Draw(lines []string) {
	b.screen.Clear()
	for y, line := range lines {
		b.putLine(y, line)
	}
}

// SetRow rewrites one row, blanking the rest of it.
func (b *Backend) SetRow(y int, text string) {
	w, _ := b.screen.Size()
	x := b.putLine(y, text)
	for ; x < w; x++ {
		b.screen.SetContent(x, y, ' ', nil, b.style)
	}
}

// Show flushes pending changes to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

func (b *Backend) putLine(y int, line string) int {
	x := 0
	for _, r := range line {
		b.screen.SetContent(x, y, r, nil, b.style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// translateKey maps the keys the runtime understands. Other special keys
// are reported as not ok.
func translateKey(ev *tcell.EventKey) (backend.KeyEvent, bool) {
	key := backend.KeyEvent{Ctrl: ev.Modifiers()&tcell.ModCtrl != 0}
	switch ev.Key() {
	case tcell.KeyRune:
		key.Key = backend.KeyRune
		key.Rune = ev.Rune()
	case tcell.KeyEnter:
		key.Key = backend.KeyEnter
	case tcell.KeyEscape:
		key.Key = backend.KeyEscape
	case tcell.KeyUp:
		key.Key = backend.KeyUp
	case tcell.KeyDown:
		key.Key = backend.KeyDown
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		key.Key = backend.KeyBackspace
	case tcell.KeyCtrlC:
		key.Key = backend.KeyCtrlC
	default:
		return backend.KeyEvent{}, false
	}
	return key, true
}

var (
	_ backend.Backend   = (*Backend)(nil)
	_ backend.RowWriter = (*Backend)(nil)
)
