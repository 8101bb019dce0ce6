package runtime

import "sync/atomic"

// Invalidator posts InvalidateMsg, coalescing requests until the loop
// handles the pending one.
type Invalidator struct {
	post    PostFunc
	pending atomic.Bool
}

// NewInvalidator creates an invalidator wired to a post function.
func NewInvalidator(post PostFunc) *Invalidator {
	return &Invalidator{post: post}
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i == nil || i.post == nil {
		return
	}
	if i.pending.CompareAndSwap(false, true) && !i.post(InvalidateMsg{}) {
		i.pending.Store(false)
	}
}

// Schedule runs fn inline and requests a render pass. As a state.Scheduler
// it turns every store notification into a redraw.
func (i *Invalidator) Schedule(fn func()) {
	if fn == nil {
		return
	}
	fn()
	i.Invalidate()
}

func (i *Invalidator) resetPending() {
	if i == nil {
		return
	}
	i.pending.Store(false)
}
