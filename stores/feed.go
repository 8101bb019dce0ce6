package stores

import (
	"time"

	"github.com/google/uuid"

	"github.com/odvcencio/fluxstore/state"
)

// FeedItem is a post in the feed. Body is markdown.
type FeedItem struct {
	ID       uuid.UUID
	AuthorID int
	Title    string
	Body     string
	PostedAt time.Time
}

// FeedStore holds the feed, newest last.
type FeedStore struct {
	*state.Store[[]FeedItem]
	now func() time.Time
}

// NewFeedStore creates a feed store.
func NewFeedStore(initial []FeedItem, opts ...state.Option) *FeedStore {
	return &FeedStore{
		Store: state.NewStore(initial, opts...),
		now:   time.Now,
	}
}

// ByID looks an item up in the current state.
func (s *FeedStore) ByID(id uuid.UUID) (FeedItem, bool) {
	for _, item := range s.State() {
		if item.ID == id {
			return item, true
		}
	}
	return FeedItem{}, false
}

// ByAuthor returns the items written by authorID in state order.
func (s *FeedStore) ByAuthor(authorID int) []FeedItem {
	var items []FeedItem
	for _, item := range s.State() {
		if item.AuthorID == authorID {
			items = append(items, item)
		}
	}
	return items
}

// Post appends a new item and publishes the new feed.
func (s *FeedStore) Post(authorID int, title, body string) FeedItem {
	item := FeedItem{
		ID:       uuid.New(),
		AuthorID: authorID,
		Title:    title,
		Body:     body,
		PostedAt: s.now(),
	}
	current := s.State()
	next := make([]FeedItem, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, item)
	s.SetState(next)
	return item
}
