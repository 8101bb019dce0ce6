package views

import (
	"github.com/odvcencio/fluxstore/state"
	"github.com/odvcencio/fluxstore/stores"
)

const excerptWidth = 60

type feedLine struct {
	title   string
	excerpt string
}

// FeedList shows feed titles with a plain-text excerpt of each body.
type FeedList struct {
	Component
	feed    *stores.FeedStore
	lines   []feedLine
	mounted bool
}

// NewFeedList creates a feed view.
func NewFeedList(feed *stores.FeedStore) *FeedList {
	return &FeedList{feed: feed}
}

// Mount snapshots the feed and starts listening.
func (f *FeedList) Mount() {
	f.mounted = true
	f.Subs.Clear()
	f.apply(f.feed.State())
	state.Listen[[]stores.FeedItem](&f.Subs, f.feed, func(items []stores.FeedItem) {
		if !f.mounted {
			return
		}
		f.apply(items)
		f.Invalidate()
	})
}

// Unmount releases the listener.
func (f *FeedList) Unmount() {
	f.mounted = false
	f.Subs.Clear()
}

// View renders newest items first.
func (f *FeedList) View(width, height int) []string {
	if !f.mounted {
		return nil
	}
	lines := []string{"Feed"}
	if len(f.lines) == 0 {
		lines = append(lines, "  nothing yet")
	}
	for i := len(f.lines) - 1; i >= 0; i-- {
		lines = append(lines, "* "+f.lines[i].title)
		if f.lines[i].excerpt != "" {
			lines = append(lines, "    "+f.lines[i].excerpt)
		}
	}
	return fitLines(lines, width, height)
}

func (f *FeedList) apply(items []stores.FeedItem) {
	lines := make([]feedLine, len(items))
	for i, item := range items {
		lines[i] = feedLine{title: item.Title, excerpt: stores.Excerpt(item.Body, excerptWidth)}
	}
	f.lines = lines
}
