// Package scroll provides a vertical viewport over line-based content.
package scroll

// Viewport tracks the visible window of a list of rows.
type Viewport struct {
	offset        int
	contentHeight int
	viewHeight    int
}

// NewViewport creates a viewport.
func NewViewport() *Viewport {
	return &Viewport{}
}

// SetContentHeight updates the content height and clamps the offset.
func (v *Viewport) SetContentHeight(height int) {
	if v == nil {
		return
	}
	v.contentHeight = height
	v.SetOffset(v.offset)
}

// SetViewHeight updates the view height and clamps the offset.
func (v *Viewport) SetViewHeight(height int) {
	if v == nil {
		return
	}
	v.viewHeight = height
	v.SetOffset(v.offset)
}

// Offset returns the first visible row.
func (v *Viewport) Offset() int {
	if v == nil {
		return 0
	}
	return v.offset
}

// SetOffset sets the scroll offset, clamped to [0, MaxOffset].
func (v *Viewport) SetOffset(offset int) {
	if v == nil {
		return
	}
	v.offset = clamp(offset, 0, v.MaxOffset())
}

// MaxOffset returns the maximum scrollable offset.
func (v *Viewport) MaxOffset() int {
	if v == nil {
		return 0
	}
	return max(v.contentHeight-v.viewHeight, 0)
}

// EnsureVisible scrolls the least distance that shows rows [top, top+height).
func (v *Viewport) EnsureVisible(top, height int) {
	if v == nil || v.viewHeight <= 0 {
		return
	}
	if top < v.offset {
		v.SetOffset(top)
		return
	}
	if bottom := top + height; bottom > v.offset+v.viewHeight {
		v.SetOffset(bottom - v.viewHeight)
	}
}

// Window returns the visible slice of rows.
func Window[T any](v *Viewport, rows []T) []T {
	if v == nil {
		return rows
	}
	start := clamp(v.offset, 0, len(rows))
	end := min(start+max(v.viewHeight, 0), len(rows))
	return rows[start:end]
}

func clamp(value, lo, hi int) int {
	return min(max(value, lo), hi)
}
