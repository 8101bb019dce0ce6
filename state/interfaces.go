package state

// Subscribable emits change notifications.
type Subscribable interface {
	Subscribe(fn func()) func()
}

// Readable exposes read-only shared state.
type Readable[T any] interface {
	Subscribable
	State() T
	AddListener(fn Listener[T]) func()
	ListenWithScheduler(scheduler Scheduler, fn Listener[T]) *Subscription[T]
}

// Writable exposes read/write shared state.
type Writable[T any] interface {
	Readable[T]
	SetState(value T) bool
	Update(fn func(T) T) bool
}

var (
	_ Writable[int] = (*Store[int])(nil)
	_ Readable[int] = (*Computed[int])(nil)
)
