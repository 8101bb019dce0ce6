package views

import (
	"fmt"

	"github.com/odvcencio/fluxstore/stores"
)

// UserProfile shows the selected user and how many posts they wrote.
// While the user is absent from the store it shows a loading line.
type UserProfile struct {
	Component
	stores  *stores.Stores
	user    stores.User
	found   bool
	posts   int
	mounted bool
}

// NewUserProfile creates a profile view over the application stores.
func NewUserProfile(s *stores.Stores) *UserProfile {
	return &UserProfile{stores: s}
}

// Mount snapshots and listens to users, selection, and feed.
func (p *UserProfile) Mount() {
	p.mounted = true
	p.Subs.Clear()
	p.refresh()
	p.Observe(p.stores.Users, p.onChange)
	p.Observe(p.stores.Selection, p.onChange)
	p.Observe(p.stores.Feed, p.onChange)
}

// Unmount releases the listeners.
func (p *UserProfile) Unmount() {
	p.mounted = false
	p.Subs.Clear()
}

// View renders the profile.
func (p *UserProfile) View(width, height int) []string {
	if !p.mounted {
		return nil
	}
	if !p.found {
		return fitLines([]string{"Profile", "  loading…"}, width, height)
	}
	lines := []string{
		"Profile",
		fmt.Sprintf("  %s (#%d)", p.user.DisplayName(), p.user.ID),
		fmt.Sprintf("  posts: %d", p.posts),
	}
	return fitLines(lines, width, height)
}

func (p *UserProfile) onChange() {
	if !p.mounted {
		return
	}
	p.refresh()
	p.Invalidate()
}

func (p *UserProfile) refresh() {
	id := p.stores.Selection.State()
	p.user, p.found = p.stores.Users.ByID(id)
	p.posts = len(p.stores.Feed.ByAuthor(id))
}
