package state

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// Subscription is one listener registration on a Store.
// Its identity is the record itself; two registrations of the same function
// are distinct subscriptions.
type Subscription[T any] struct {
	id        ulid.ULID
	store     *Store[T]
	fn        Listener[T]
	scheduler Scheduler
	once      sync.Once
}

func newSubscription[T any](store *Store[T], fn Listener[T], scheduler Scheduler) *Subscription[T] {
	return &Subscription[T]{
		id:        ulid.Make(),
		store:     store,
		fn:        fn,
		scheduler: scheduler,
	}
}

// ID returns the subscription identity.
func (s *Subscription[T]) ID() ulid.ULID {
	if s == nil {
		return ulid.ULID{}
	}
	return s.id
}

// Remove deregisters the subscription. Calling it again has no effect.
func (s *Subscription[T]) Remove() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.store.remove(s)
	})
}

func (s *Subscription[T]) deliver(value T) {
	if s.scheduler == nil {
		s.fn(value)
		return
	}
	fn := s.fn
	s.scheduler.Schedule(func() {
		fn(value)
	})
}
