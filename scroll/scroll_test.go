package scroll

import (
	"reflect"
	"testing"
)

func TestViewportClampOffset(t *testing.T) {
	v := NewViewport()
	v.SetViewHeight(5)
	v.SetContentHeight(20)

	v.SetOffset(100)
	if got := v.Offset(); got != 15 {
		t.Fatalf("offset clamp = %d, want 15", got)
	}

	v.SetOffset(-7)
	if got := v.Offset(); got != 0 {
		t.Fatalf("offset clamp negative = %d, want 0", got)
	}
}

func TestViewportShrinkingContentClamps(t *testing.T) {
	v := NewViewport()
	v.SetViewHeight(5)
	v.SetContentHeight(20)
	v.SetOffset(10)

	v.SetContentHeight(8)
	if got := v.Offset(); got != 3 {
		t.Fatalf("offset after shrink = %d, want 3", got)
	}
	v.SetContentHeight(4)
	if got := v.MaxOffset(); got != 0 {
		t.Fatalf("max offset = %d, want 0", got)
	}
}

func TestViewportEnsureVisible(t *testing.T) {
	v := NewViewport()
	v.SetViewHeight(3)
	v.SetContentHeight(10)

	v.EnsureVisible(4, 1)
	if got := v.Offset(); got != 2 {
		t.Fatalf("offset after scrolling down = %d, want 2", got)
	}
	v.EnsureVisible(3, 1)
	if got := v.Offset(); got != 2 {
		t.Fatalf("visible row should not scroll, got %d", got)
	}
	v.EnsureVisible(0, 1)
	if got := v.Offset(); got != 0 {
		t.Fatalf("offset after scrolling up = %d, want 0", got)
	}
}

func TestViewportZeroHeightShowsNothing(t *testing.T) {
	v := NewViewport()
	v.SetContentHeight(3)
	if got := Window(v, []int{1, 2, 3}); len(got) != 0 {
		t.Fatalf("Window() with zero view height = %v", got)
	}
	v.EnsureVisible(2, 1)
	if v.Offset() != 0 {
		t.Fatalf("expected no scrolling without a view, got %d", v.Offset())
	}
}

func TestWindow(t *testing.T) {
	rows := []string{"a", "b", "c", "d", "e"}
	v := NewViewport()
	v.SetViewHeight(2)
	v.SetContentHeight(len(rows))
	v.SetOffset(2)

	if got := Window(v, rows); !reflect.DeepEqual(got, []string{"c", "d"}) {
		t.Fatalf("Window() = %v", got)
	}
	if got := Window[string](nil, rows); len(got) != len(rows) {
		t.Fatalf("nil viewport should show all rows, got %v", got)
	}
}
