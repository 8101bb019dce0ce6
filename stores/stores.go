// Package stores holds the application's stores: one explicitly constructed
// instance per domain, owned by a Stores value and passed to whatever needs
// it.
package stores

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/odvcencio/fluxstore/config"
	"github.com/odvcencio/fluxstore/state"
)

// NoSelection is the Selection value when no user is selected.
const NoSelection = 0

// Stores is the application context.
type Stores struct {
	Users     *UserStore
	Feed      *FeedStore
	Selection *state.Store[int]

	// Notice is a transient one-line message; empty means none.
	Notice *state.Store[string]

	// Status describes the current selection. It follows Users and
	// Selection until Close.
	Status *state.Computed[string]
}

// New builds the stores. Users start empty so consumers observe the
// not-yet-loaded state; call Users.SetState(SeedUsers(seed)) to load them.
func New(seed config.Seed, logger *slog.Logger) *Stores {
	if logger == nil {
		logger = slog.Default()
	}
	selection := state.NewStore(NoSelection, state.WithName("selection"), state.WithLogger(logger))
	selection.SetEqualFunc(state.EqualComparable[int])
	s := &Stores{
		Users:     NewUserStore(nil, state.WithName("users"), state.WithLogger(logger)),
		Feed:      NewFeedStore(SeedFeed(seed), state.WithName("feed"), state.WithLogger(logger)),
		Selection: selection,
		Notice:    state.NewStore("", state.WithName("notice"), state.WithLogger(logger)),
	}
	s.Status = state.NewComputed(s.status, s.Users, s.Selection)
	s.Status.SetEqualFunc(state.EqualComparable[string])
	return s
}

// Close stops derived values.
func (s *Stores) Close() {
	if s == nil {
		return
	}
	s.Status.Stop()
}

func (s *Stores) status() string {
	if len(s.Users.State()) == 0 {
		return "loading users…"
	}
	user, ok := s.Users.ByID(s.Selection.State())
	if !ok {
		return "no user selected"
	}
	return fmt.Sprintf("selected: %s", user.DisplayName())
}

// SeedUsers converts user fixtures into records.
func SeedUsers(seed config.Seed) []User {
	users := make([]User, 0, len(seed.Users))
	for _, u := range seed.Users {
		users = append(users, User{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName})
	}
	return users
}

// SeedFeed converts feed fixtures into items, generating missing ids.
// Fixtures are expected to have passed config validation.
func SeedFeed(seed config.Seed) []FeedItem {
	items := make([]FeedItem, 0, len(seed.Feed))
	for _, f := range seed.Feed {
		id := uuid.New()
		if f.ID != "" {
			if parsed, err := uuid.Parse(f.ID); err == nil {
				id = parsed
			}
		}
		items = append(items, FeedItem{
			ID:       id,
			AuthorID: f.AuthorID,
			Title:    f.Title,
			Body:     f.Body,
			PostedAt: f.PostedAt,
		})
	}
	return items
}
