package runtime

import (
	"sync/atomic"

	"github.com/odvcencio/fluxstore/state"
)

// QueueScheduler defers store listeners onto the app loop. Callbacks are
// queued and a single QueueFlushMsg is posted until the loop flushes.
type QueueScheduler struct {
	queue   *state.Queue
	post    PostFunc
	pending atomic.Bool
}

// NewQueueScheduler wires a queue to a post function.
func NewQueueScheduler(queue *state.Queue, post PostFunc) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{
		queue: queue,
		post:  post,
	}
}

// Schedule enqueues fn and wakes the loop if no flush is pending.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	if s.post == nil {
		return
	}
	if s.pending.CompareAndSwap(false, true) && !s.post(QueueFlushMsg{}) {
		s.pending.Store(false)
	}
}

func (s *QueueScheduler) resetPending() {
	if s == nil {
		return
	}
	s.pending.Store(false)
}
