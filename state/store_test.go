package state

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

type user struct {
	ID        int
	FirstName string
}

func TestStore_UserScenario(t *testing.T) {
	store := NewStore([]user{})
	var log [][]user

	remove := store.AddListener(func(users []user) {
		log = append(log, users)
	})

	first := []user{{ID: 1, FirstName: "Konrad"}}
	store.SetState(first)

	if len(log) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(log))
	}
	if !reflect.DeepEqual(log[0], first) {
		t.Fatalf("expected listener to receive %v, got %v", first, log[0])
	}
	if got := store.State(); &got[0] != &first[0] {
		t.Fatalf("expected State to return the value passed to SetState")
	}

	remove()
	second := []user{{ID: 2, FirstName: "Ada"}}
	store.SetState(second)

	if len(log) != 1 {
		t.Fatalf("expected log to stay at 1 entry after removal, got %d", len(log))
	}
	if got := store.State(); !reflect.DeepEqual(got, second) {
		t.Fatalf("expected state %v, got %v", second, got)
	}
}

func TestStore_NotifiesInRegistrationOrder(t *testing.T) {
	store := NewStore(0)
	var calls []string

	for _, name := range []string{"a", "b", "c"} {
		store.AddListener(func(v int) {
			calls = append(calls, fmt.Sprintf("%s=%d", name, v))
		})
	}

	store.SetState(7)
	want := []string{"a=7", "b=7", "c=7"}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
}

func TestStore_AddListenerDoesNotReplay(t *testing.T) {
	store := NewStore("initial")
	calls := 0

	store.AddListener(func(string) { calls++ })
	if calls != 0 {
		t.Fatalf("expected no calls during registration, got %d", calls)
	}
	if store.State() != "initial" {
		t.Fatalf("expected initial snapshot, got %q", store.State())
	}
}

func TestStore_SetStateWithoutListeners(t *testing.T) {
	store := NewStore(1)
	if !store.SetState(2) {
		t.Fatalf("expected SetState to report a replacement")
	}
	if store.State() != 2 {
		t.Fatalf("expected state 2, got %d", store.State())
	}
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	store := NewStore(0)
	aCalls, bCalls := 0, 0

	removeA := store.AddListener(func(int) { aCalls++ })
	store.AddListener(func(int) { bCalls++ })

	removeA()
	removeA()
	store.SetState(1)

	if aCalls != 0 {
		t.Fatalf("expected removed listener not to run, got %d", aCalls)
	}
	if bCalls != 1 {
		t.Fatalf("expected other listener to run once, got %d", bCalls)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 listener left, got %d", store.Len())
	}
}

func TestStore_DuplicateRegistrationsAreIndependent(t *testing.T) {
	store := NewStore(0)
	calls := 0
	listener := func(int) { calls++ }

	removeFirst := store.AddListener(listener)
	store.AddListener(listener)

	store.SetState(1)
	if calls != 2 {
		t.Fatalf("expected 2 calls for 2 registrations, got %d", calls)
	}

	removeFirst()
	store.SetState(2)
	if calls != 3 {
		t.Fatalf("expected remaining registration to run, got %d calls", calls)
	}
}

func TestStore_RemovalDuringPassUsesSnapshot(t *testing.T) {
	store := NewStore(0)
	var calls []string
	var removeLater func()

	store.AddListener(func(int) {
		calls = append(calls, "first")
		removeLater()
	})
	removeLater = store.AddListener(func(int) {
		calls = append(calls, "later")
	})

	store.SetState(1)
	if want := []string{"first", "later"}; !reflect.DeepEqual(calls, want) {
		t.Fatalf("expected removed listener to finish the current pass, got %v", calls)
	}

	calls = nil
	store.SetState(2)
	if want := []string{"first"}; !reflect.DeepEqual(calls, want) {
		t.Fatalf("expected removed listener to be skipped next pass, got %v", calls)
	}
}

func TestStore_AddDuringPassWaitsForNextPass(t *testing.T) {
	store := NewStore(0)
	added := 0
	registered := false

	store.AddListener(func(int) {
		if registered {
			return
		}
		registered = true
		store.AddListener(func(int) { added++ })
	})

	store.SetState(1)
	if added != 0 {
		t.Fatalf("expected listener added mid-pass to wait, got %d calls", added)
	}
	store.SetState(2)
	if added != 1 {
		t.Fatalf("expected listener to run on next pass, got %d calls", added)
	}
}

func TestStore_ReentrantSetStateCompletesNestedPass(t *testing.T) {
	store := NewStore(0)
	var calls []string

	store.AddListener(func(v int) {
		calls = append(calls, fmt.Sprintf("a%d", v))
		if v == 1 {
			store.SetState(2)
		}
	})
	store.AddListener(func(v int) {
		calls = append(calls, fmt.Sprintf("b%d", v))
	})

	store.SetState(1)
	want := []string{"a1", "a2", "b2", "b1"}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
	if store.State() != 2 {
		t.Fatalf("expected final state 2, got %d", store.State())
	}
}

func TestStore_AlwaysNotifiesByDefault(t *testing.T) {
	store := NewStore(5)
	calls := 0
	store.AddListener(func(int) { calls++ })

	if !store.SetState(5) {
		t.Fatalf("expected equal value to be published by default")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestStore_SetEqualFunc(t *testing.T) {
	store := NewStore(5)
	store.SetEqualFunc(EqualComparable[int])
	calls := 0
	store.AddListener(func(int) { calls++ })

	if store.SetState(5) {
		t.Fatalf("expected equal value to be suppressed")
	}
	if !store.SetState(6) {
		t.Fatalf("expected new value to be published")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}

	store.SetEqualFunc(nil)
	store.SetState(6)
	if calls != 2 {
		t.Fatalf("expected notification after clearing equal func, got %d", calls)
	}
}

func TestStore_Update(t *testing.T) {
	store := NewStore(1)
	store.SetEqualFunc(EqualComparable[int])

	if !store.Update(func(v int) int { return v + 1 }) {
		t.Fatalf("expected update to report change")
	}
	if store.State() != 2 {
		t.Fatalf("expected updated value 2, got %d", store.State())
	}
	if store.Update(func(v int) int { return v }) {
		t.Fatalf("expected update of equal value to report no change")
	}
	if store.Update(nil) {
		t.Fatalf("expected nil update to report no change")
	}
}

func TestStore_ListenWithScheduler(t *testing.T) {
	store := NewStore(1)
	queue := NewQueue()
	var got []int

	store.ListenWithScheduler(queue, func(v int) {
		got = append(got, v)
	})

	store.SetState(2)
	store.SetState(3)
	if len(got) != 0 {
		t.Fatalf("expected callbacks to be queued, got %v", got)
	}
	if flushed := queue.Flush(); flushed != 2 {
		t.Fatalf("expected 2 callbacks flushed, got %d", flushed)
	}
	if want := []int{2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected queued values %v, got %v", want, got)
	}
}

func TestStore_SubscriptionIdentity(t *testing.T) {
	store := NewStore(0)
	fn := func(int) {}

	a := store.Listen(fn)
	b := store.Listen(fn)
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct subscription ids, got %s twice", a.ID())
	}

	a.Remove()
	if store.Len() != 1 {
		t.Fatalf("expected 1 listener after removing a, got %d", store.Len())
	}
	b.Remove()
	b.Remove()
	if store.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", store.Len())
	}
}

func TestStore_SubscribeAdaptsValuelessCallbacks(t *testing.T) {
	store := NewStore("a")
	calls := 0

	unsub := store.Subscribe(func() { calls++ })
	store.SetState("b")
	unsub()
	store.SetState("c")

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestStore_NilListener(t *testing.T) {
	store := NewStore(0)
	remove := store.AddListener(nil)
	remove()
	if store.Len() != 0 {
		t.Fatalf("expected nil listener not to register, got %d", store.Len())
	}
}

func TestStore_NilReceiver(t *testing.T) {
	var store *Store[int]

	if store.State() != 0 {
		t.Fatalf("expected zero value from nil store")
	}
	if store.SetState(1) {
		t.Fatalf("expected nil store to ignore SetState")
	}
	store.AddListener(func(int) {})()
	if store.Len() != 0 {
		t.Fatalf("expected nil store to report no listeners")
	}
}

func TestStore_ConcurrentRegistryAccess(t *testing.T) {
	store := NewStore(0, WithName("counter"))
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				remove := store.AddListener(func(int) {})
				store.SetState(i*100 + j)
				_ = store.State()
				remove()
			}
		}(i)
	}
	wg.Wait()

	if store.Len() != 0 {
		t.Fatalf("expected all listeners removed, got %d", store.Len())
	}
}
