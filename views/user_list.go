package views

import (
	"fmt"

	"github.com/odvcencio/fluxstore/backend"
	"github.com/odvcencio/fluxstore/runtime"
	"github.com/odvcencio/fluxstore/scroll"
	"github.com/odvcencio/fluxstore/state"
	"github.com/odvcencio/fluxstore/stores"
)

// UserList shows the users and writes the highlighted user's id into the
// selection store.
type UserList struct {
	Component
	users     *stores.UserStore
	selection *state.Store[int]
	snapshot  []stores.User
	selected  int
	mounted   bool
	viewport  *scroll.Viewport
}

// NewUserList creates a user list.
func NewUserList(users *stores.UserStore, selection *state.Store[int]) *UserList {
	return &UserList{users: users, selection: selection, viewport: scroll.NewViewport()}
}

// Mount snapshots the users and starts listening.
func (l *UserList) Mount() {
	l.mounted = true
	l.Subs.Clear()
	l.snapshot = l.users.State()
	l.selected = l.selection.State()
	state.Listen[[]stores.User](&l.Subs, l.users, l.onUsers)
	state.Listen[int](&l.Subs, l.selection, l.onSelection)
	l.ensureSelection()
}

// Unmount releases the listeners.
func (l *UserList) Unmount() {
	l.mounted = false
	l.Subs.Clear()
}

// Users returns the current snapshot.
func (l *UserList) Users() []stores.User {
	return l.snapshot
}

// HandleMessage moves the selection with the arrow keys.
func (l *UserList) HandleMessage(msg runtime.Message) runtime.HandleResult {
	key, ok := msg.(runtime.KeyMsg)
	if !ok || len(l.snapshot) == 0 {
		return runtime.Unhandled()
	}
	switch key.Key {
	case backend.KeyUp:
		l.move(-1)
		return runtime.Handled()
	case backend.KeyDown:
		l.move(1)
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

// View renders the list with the selected user marked, scrolled so the
// selection stays visible.
func (l *UserList) View(width, height int) []string {
	if !l.mounted {
		return nil
	}
	header := fmt.Sprintf("Users (%d)", len(l.snapshot))
	if len(l.snapshot) == 0 {
		return fitLines([]string{header, "  loading…"}, width, height)
	}
	rows := make([]string, len(l.snapshot))
	for i, u := range l.snapshot {
		marker := "  "
		if u.ID == l.selected {
			marker = "> "
		}
		rows[i] = fmt.Sprintf("%s#%d %s", marker, u.ID, u.DisplayName())
	}

	l.viewport.SetViewHeight(max(height-1, 0))
	l.viewport.SetContentHeight(len(rows))
	if i := l.indexOf(l.selected); i >= 0 {
		l.viewport.EnsureVisible(i, 1)
	}
	lines := append([]string{header}, scroll.Window(l.viewport, rows)...)
	return fitLines(lines, width, height)
}

func (l *UserList) onUsers(users []stores.User) {
	if !l.mounted {
		return
	}
	l.snapshot = users
	l.ensureSelection()
	l.Invalidate()
}

func (l *UserList) onSelection(id int) {
	if !l.mounted {
		return
	}
	l.selected = id
	l.Invalidate()
}

// ensureSelection keeps the selection pointing at an existing user.
func (l *UserList) ensureSelection() {
	if l.indexOf(l.selected) >= 0 {
		return
	}
	next := stores.NoSelection
	if len(l.snapshot) > 0 {
		next = l.snapshot[0].ID
	}
	l.selected = next
	l.selection.SetState(next)
}

func (l *UserList) move(delta int) {
	idx := l.indexOf(l.selected) + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(l.snapshot) {
		idx = len(l.snapshot) - 1
	}
	l.selected = l.snapshot[idx].ID
	l.Services.Logger().Debug("selection moved", "user", l.selected)
	l.selection.SetState(l.selected)
}

func (l *UserList) indexOf(id int) int {
	for i, u := range l.snapshot {
		if u.ID == id {
			return i
		}
	}
	return -1
}
