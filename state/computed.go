package state

import "sync"

// Computed is a read-only value derived from other sources. It recomputes
// whenever a dependency notifies and republishes through its own store.
type Computed[T any] struct {
	store     *Store[T]
	compute   func() T
	mu        sync.Mutex
	unsubs    []func()
	scheduler Scheduler
}

// NewComputed creates a derived value from dependencies.
func NewComputed[T any](compute func() T, deps ...Subscribable) *Computed[T] {
	return NewComputedWithScheduler(nil, compute, deps...)
}

// NewComputedWithScheduler creates a derived value and schedules recomputes.
func NewComputedWithScheduler[T any](scheduler Scheduler, compute func() T, deps ...Subscribable) *Computed[T] {
	if compute == nil {
		compute = func() T {
			var zero T
			return zero
		}
	}
	c := &Computed[T]{
		store:     NewStore(compute()),
		compute:   compute,
		scheduler: scheduler,
	}
	for _, dep := range deps {
		if dep == nil {
			continue
		}
		if unsub := dep.Subscribe(c.enqueueRecompute); unsub != nil {
			c.unsubs = append(c.unsubs, unsub)
		}
	}
	return c
}

// Select derives a value from a single source with a pure function of its
// state, such as a lookup by key.
func Select[S, T any](src Readable[S], fn func(S) T) *Computed[T] {
	if src == nil || fn == nil {
		return NewComputed[T](nil)
	}
	return NewComputed(func() T {
		return fn(src.State())
	}, src)
}

// SetEqualFunc suppresses republishing when the recomputed value is unchanged.
func (c *Computed[T]) SetEqualFunc(fn EqualFunc[T]) {
	if c == nil {
		return
	}
	c.store.SetEqualFunc(fn)
}

// State returns the current derived value.
func (c *Computed[T]) State() T {
	if c == nil {
		var zero T
		return zero
	}
	return c.store.State()
}

// AddListener registers fn for derived value changes.
func (c *Computed[T]) AddListener(fn Listener[T]) func() {
	if c == nil {
		return func() {}
	}
	return c.store.AddListener(fn)
}

// ListenWithScheduler registers fn using a scheduler.
func (c *Computed[T]) ListenWithScheduler(scheduler Scheduler, fn Listener[T]) *Subscription[T] {
	if c == nil {
		return nil
	}
	return c.store.ListenWithScheduler(scheduler, fn)
}

// Subscribe registers a value-less change callback.
func (c *Computed[T]) Subscribe(fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.store.Subscribe(fn)
}

// SubscribeWithScheduler registers a value-less change callback using a scheduler.
func (c *Computed[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.store.SubscribeWithScheduler(scheduler, fn)
}

// Stop releases the dependency registrations. The last value is kept.
func (c *Computed[T]) Stop() {
	if c == nil {
		return
	}
	c.mu.Lock()
	unsubs := c.unsubs
	c.unsubs = nil
	c.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}

func (c *Computed[T]) recompute() {
	c.store.SetState(c.compute())
}

func (c *Computed[T]) enqueueRecompute() {
	if c.scheduler == nil {
		c.recompute()
		return
	}
	c.scheduler.Schedule(c.recompute)
}
