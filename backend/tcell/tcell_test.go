package tcell

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/fluxstore/backend"
)

func newSimBackend(t *testing.T, width, height int) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	b := NewWithScreen(screen)
	if err := b.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(b.Fini)
	return b, screen
}

func rowText(screen tcell.Screen, y, width int) string {
	out := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestBackend_Draw(t *testing.T) {
	b, screen := newSimBackend(t, 6, 2)

	b.Draw([]string{"ab", "cd"})
	b.Show()

	if got := rowText(screen, 0, 6); got != "ab    " {
		t.Fatalf("row 0 = %q", got)
	}
	if got := rowText(screen, 1, 6); got != "cd    " {
		t.Fatalf("row 1 = %q", got)
	}
	if w, h := b.Size(); w != 6 || h != 2 {
		t.Fatalf("Size() = %dx%d, want 6x2", w, h)
	}
}

func TestBackend_SetRowBlanksRest(t *testing.T) {
	b, screen := newSimBackend(t, 6, 1)

	b.Draw([]string{"hello!"})
	b.SetRow(0, "hi")
	b.Show()

	if got := rowText(screen, 0, 6); got != "hi    " {
		t.Fatalf("row after SetRow = %q", got)
	}
}

func TestBackend_WideRunesAdvanceTwoCells(t *testing.T) {
	b, screen := newSimBackend(t, 6, 1)

	b.Draw([]string{"日x"})
	b.Show()

	if r, _, _, _ := screen.GetContent(0, 0); r != '日' {
		t.Fatalf("cell 0 = %q, want 日", r)
	}
	if r, _, _, _ := screen.GetContent(2, 0); r != 'x' {
		t.Fatalf("cell 2 = %q, want x", r)
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want backend.KeyEvent
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), backend.KeyEvent{Key: backend.KeyUp}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), backend.KeyEvent{Key: backend.KeyDown}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), backend.KeyEvent{Key: backend.KeyEnter}},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), backend.KeyEvent{Key: backend.KeyRune, Rune: 'n'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.ev)
			if !ok || got != tt.want {
				t.Fatalf("translateKey() = %+v, %v, want %+v", got, ok, tt.want)
			}
		})
	}

	got, ok := translateKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if !ok || got.Key != backend.KeyCtrlC {
		t.Fatalf("ctrl+c = %+v, %v", got, ok)
	}

	for _, key := range []tcell.Key{tcell.KeyLeft, tcell.KeyTab, tcell.KeyF1} {
		if got, ok := translateKey(tcell.NewEventKey(key, 0, tcell.ModNone)); ok {
			t.Errorf("key %v should be dropped, got %+v", key, got)
		}
	}
}

func TestBackend_PollEventSkipsUnmappedKeys(t *testing.T) {
	b, screen := newSimBackend(t, 4, 1)

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent() = %v", err)
	}
	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent() = %v", err)
	}

	for {
		ev := b.PollEvent()
		if _, resize := ev.(backend.ResizeEvent); resize {
			continue
		}
		key, ok := ev.(backend.KeyEvent)
		if !ok || key.Key != backend.KeyRune || key.Rune != 'q' {
			t.Fatalf("PollEvent() = %#v, want rune q", ev)
		}
		return
	}
}
