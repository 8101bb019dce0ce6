// Package state provides a publish/subscribe state container for sharing
// state between UI components.
//
// A [Store] holds one value that is always replaced wholesale. Listeners are
// kept in registration order and are notified synchronously by every
// [Store.SetState]. Registration returns a removal handle that the caller owns.
//
// Value and registry access are safe from any goroutine. Notification passes
// are ordered only for writes made from one goroutine; writers on other
// goroutines should post a message to the owning loop instead of calling
// SetState directly.
package state

import (
	"log/slog"
	"sync"
)

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// Listener receives the new state after each replacement.
type Listener[T any] func(T)

// Option configures a Store.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

// WithName labels the store in log output.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger used for registry and notification events.
// If not set, [slog.Default] is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Store holds a state value and notifies listeners when it is replaced.
//
// Each SetState takes a snapshot of the registry before notifying, so a
// listener removed during a pass still receives that pass and a listener
// added during a pass waits for the next one. The lock is never held while
// listeners run.
type Store[T any] struct {
	mu     sync.Mutex
	value  T
	subs   []*Subscription[T]
	equal  EqualFunc[T]
	name   string
	logger *slog.Logger
}

// NewStore creates a store with an initial value.
func NewStore[T any](initial T, opts ...Option) *Store[T] {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return &Store[T]{
		value:  initial,
		name:   cfg.name,
		logger: cfg.logger,
	}
}

// Name returns the store label.
func (s *Store[T]) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// SetEqualFunc enables an equality check that suppresses notification when
// the new value equals the current one. A nil fn restores the default of
// always notifying.
func (s *Store[T]) SetEqualFunc(fn EqualFunc[T]) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.equal = fn
	s.mu.Unlock()
}

// State returns the current value.
func (s *Store[T]) State() T {
	if s == nil {
		var zero T
		return zero
	}
	s.mu.Lock()
	value := s.value
	s.mu.Unlock()
	return value
}

// SetState replaces the value and notifies every registered listener in
// registration order before returning. It reports false only when an equal
// func is configured and matched. Passes started concurrently from different
// goroutines may interleave.
func (s *Store[T]) SetState(value T) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	if s.equal != nil && s.equal(s.value, value) {
		s.mu.Unlock()
		return false
	}
	s.value = value
	subs := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("state replaced", "store", s.name, "listeners", len(subs))
	for _, sub := range subs {
		sub.deliver(value)
	}
	return true
}

// Update replaces the value with fn applied to the current one.
// fn runs outside the store lock; Update is not atomic across goroutines.
func (s *Store[T]) Update(fn func(T) T) bool {
	if s == nil || fn == nil {
		return false
	}
	return s.SetState(fn(s.State()))
}

// AddListener registers fn for every later SetState and returns the handle
// that removes this registration. fn is not called with the current value;
// read it with State.
func (s *Store[T]) AddListener(fn Listener[T]) func() {
	sub := s.Listen(fn)
	if sub == nil {
		return func() {}
	}
	return sub.Remove
}

// Listen registers fn and returns its subscription record.
func (s *Store[T]) Listen(fn Listener[T]) *Subscription[T] {
	return s.ListenWithScheduler(nil, fn)
}

// ListenWithScheduler registers fn with a scheduler.
// If scheduler is nil, fn runs synchronously inside SetState.
func (s *Store[T]) ListenWithScheduler(scheduler Scheduler, fn Listener[T]) *Subscription[T] {
	if s == nil || fn == nil {
		return nil
	}
	sub := newSubscription(s, fn, scheduler)
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	count := len(s.subs)
	s.mu.Unlock()

	s.logger.Debug("listener added", "store", s.name, "id", sub.id.String(), "listeners", count)
	return sub
}

// Subscribe registers a value-less change callback.
func (s *Store[T]) Subscribe(fn func()) func() {
	return s.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a value-less change callback using a scheduler.
func (s *Store[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if fn == nil {
		return func() {}
	}
	sub := s.ListenWithScheduler(scheduler, func(T) { fn() })
	if sub == nil {
		return func() {}
	}
	return sub.Remove
}

// Len returns the number of registered listeners.
func (s *Store[T]) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Store[T]) remove(target *Subscription[T]) {
	s.mu.Lock()
	idx := -1
	for i, sub := range s.subs {
		if sub == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	next := make([]*Subscription[T], 0, len(s.subs)-1)
	next = append(next, s.subs[:idx]...)
	next = append(next, s.subs[idx+1:]...)
	s.subs = next
	count := len(next)
	s.mu.Unlock()

	s.logger.Debug("listener removed", "store", s.name, "id", target.id.String(), "listeners", count)
}

func (s *Store[T]) snapshotLocked() []*Subscription[T] {
	if len(s.subs) == 0 {
		return nil
	}
	subs := make([]*Subscription[T], len(s.subs))
	copy(subs, s.subs)
	return subs
}
