package runtime

import (
	"testing"

	"github.com/odvcencio/fluxstore/state"
)

type postLog struct {
	accept bool
	msgs   []Message
}

func (p *postLog) post(msg Message) bool {
	p.msgs = append(p.msgs, msg)
	return p.accept
}

func TestInvalidator_StoreListenerRunsInlineAndRequestsRedraw(t *testing.T) {
	posts := &postLog{accept: true}
	invalidator := NewInvalidator(posts.post)
	status := state.NewStore("loading")
	got := ""
	status.ListenWithScheduler(invalidator, func(v string) { got = v })

	status.SetState("ready")
	if got != "ready" {
		t.Fatalf("expected inline delivery, got %q", got)
	}
	if len(posts.msgs) != 1 {
		t.Fatalf("expected one post, got %d", len(posts.msgs))
	}
	if _, ok := posts.msgs[0].(InvalidateMsg); !ok {
		t.Fatalf("expected InvalidateMsg, got %T", posts.msgs[0])
	}
}

func TestInvalidator_CoalescesUntilLoopHandlesRedraw(t *testing.T) {
	posts := &postLog{accept: true}
	invalidator := NewInvalidator(posts.post)
	count := state.NewStore(0)
	count.ListenWithScheduler(invalidator, func(int) {})

	count.SetState(1)
	count.SetState(2)
	count.SetState(3)
	if len(posts.msgs) != 1 {
		t.Fatalf("expected writes before the redraw to share one post, got %d", len(posts.msgs))
	}

	invalidator.resetPending()
	count.SetState(4)
	if len(posts.msgs) != 2 {
		t.Fatalf("expected a new post after the loop handled the first, got %d", len(posts.msgs))
	}
}

func TestInvalidator_FullBufferRetriesOnNextWrite(t *testing.T) {
	posts := &postLog{}
	invalidator := NewInvalidator(posts.post)
	count := state.NewStore(0)
	count.ListenWithScheduler(invalidator, func(int) {})

	count.SetState(1)
	count.SetState(2)
	if len(posts.msgs) != 2 {
		t.Fatalf("expected a retry per write after a dropped post, got %d", len(posts.msgs))
	}
}

func TestInvalidator_NilIsInert(t *testing.T) {
	var invalidator *Invalidator
	invalidator.Invalidate()
	NewInvalidator(nil).Invalidate()

	ran := false
	NewInvalidator(nil).Schedule(func() { ran = true })
	if !ran {
		t.Fatal("expected Schedule to run the callback without a post func")
	}
}
