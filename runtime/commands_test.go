package runtime

import (
	"context"
	"testing"
)

func TestSend(t *testing.T) {
	msg := ResizeMsg{Width: 10, Height: 5}
	cmd := Send(msg)
	sendMsg, ok := cmd.(SendMsg)
	if !ok {
		t.Fatalf("expected Send to return SendMsg, got %T", cmd)
	}
	if sendMsg.Message != msg {
		t.Fatalf("SendMsg.Message mismatch")
	}
}

func TestCommands_ImplementInterface(t *testing.T) {
	commands := []Command{
		Quit{},
		Refresh{},
		SendMsg{Message: InvalidateMsg{}},
		Effect{Run: func(ctx context.Context, post PostFunc) {}},
	}
	for i, cmd := range commands {
		if cmd == nil {
			t.Errorf("command %d is nil", i)
		}
	}
}

func TestHandleResult(t *testing.T) {
	if Unhandled().Handled {
		t.Fatalf("expected Unhandled to report false")
	}
	if !Handled().Handled {
		t.Fatalf("expected Handled to report true")
	}
	result := WithCommand(Quit{}, Refresh{})
	if !result.Handled || len(result.Commands) != 2 {
		t.Fatalf("unexpected result %#v", result)
	}
}
