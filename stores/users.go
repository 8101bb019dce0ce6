package stores

import (
	"github.com/odvcencio/fluxstore/state"
)

// User is a user record.
type User struct {
	ID        int
	FirstName string
	LastName  string
}

// DisplayName joins the first and last name.
func (u User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserStore holds the ordered list of known users. An empty list means the
// users have not been loaded yet.
type UserStore struct {
	*state.Store[[]User]
}

// NewUserStore creates a user store.
func NewUserStore(initial []User, opts ...state.Option) *UserStore {
	return &UserStore{Store: state.NewStore(initial, opts...)}
}

// ByID looks a user up in the current state.
func (s *UserStore) ByID(id int) (User, bool) {
	for _, u := range s.State() {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Names returns the display names in state order.
func (s *UserStore) Names() []string {
	users := s.State()
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.DisplayName()
	}
	return names
}

// Upsert publishes a new list with u replacing the user of the same id, or
// appended when the id is new. The previous list is left untouched.
func (s *UserStore) Upsert(u User) {
	current := s.State()
	next := make([]User, 0, len(current)+1)
	replaced := false
	for _, existing := range current {
		if existing.ID == u.ID {
			next = append(next, u)
			replaced = true
			continue
		}
		next = append(next, existing)
	}
	if !replaced {
		next = append(next, u)
	}
	s.SetState(next)
}

// Remove publishes a new list without the user of the given id. It reports
// false, and publishes nothing, when no such user exists.
func (s *UserStore) Remove(id int) bool {
	current := s.State()
	next := make([]User, 0, len(current))
	for _, existing := range current {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	if len(next) == len(current) {
		return false
	}
	s.SetState(next)
	return true
}

// NextID returns one more than the largest id in state.
func (s *UserStore) NextID() int {
	maxID := 0
	for _, u := range s.State() {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}
