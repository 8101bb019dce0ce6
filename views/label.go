package views

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/fluxstore/runtime"
	"github.com/odvcencio/fluxstore/state"
)

// Alignment controls horizontal placement of label text.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// StoreLabel is a one-line label bound to a readable string. When bound to
// an app its listener runs inline and requests a redraw, so the text never
// waits for a queue flush.
type StoreLabel struct {
	Component
	source    state.Readable[string]
	text      string
	alignment Alignment
	mounted   bool
}

// NewStoreLabel creates a label that shows source.
func NewStoreLabel(source state.Readable[string]) *StoreLabel {
	return &StoreLabel{source: source}
}

// Text returns the current label text.
func (s *StoreLabel) Text() string {
	return s.text
}

// SetAlignment sets text alignment.
func (s *StoreLabel) SetAlignment(align Alignment) {
	s.alignment = align
}

// Bind attaches app services and routes the listener through the
// invalidate scheduler.
func (s *StoreLabel) Bind(services runtime.Services) {
	s.Component.Bind(services)
	s.Subs.SetScheduler(services.InvalidateScheduler())
}

// Mount snapshots the source and listens for replacements.
func (s *StoreLabel) Mount() {
	s.mounted = true
	s.Subs.Clear()
	if s.source == nil {
		s.text = ""
		return
	}
	s.text = s.source.State()
	state.Listen(&s.Subs, s.source, s.onText)
}

// Unmount releases the listener.
func (s *StoreLabel) Unmount() {
	s.mounted = false
	s.Subs.Clear()
}

// View renders the text on one line.
func (s *StoreLabel) View(width, height int) []string {
	if !s.mounted || height <= 0 || width <= 0 {
		return nil
	}
	text := fit(s.text, width)
	pad := width - runewidth.StringWidth(text)
	switch s.alignment {
	case AlignCenter:
		text = strings.Repeat(" ", pad/2) + text
	case AlignRight:
		text = strings.Repeat(" ", pad) + text
	}
	return []string{text}
}

func (s *StoreLabel) onText(text string) {
	if !s.mounted {
		return
	}
	s.text = text
}
