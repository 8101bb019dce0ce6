package runtime

import "context"

// Command is an intent emitted by a component for the app to carry out.
type Command interface {
	Command()
}

// PostFunc sends a message into the app.
// It returns false when the message queue is full.
type PostFunc func(Message) bool

// Quit stops the app loop.
type Quit struct{}

func (Quit) Command() {}

// Refresh forces a full redraw.
type Refresh struct{}

func (Refresh) Command() {}

// SendMsg posts a message into the app loop.
type SendMsg struct {
	Message Message
}

func (SendMsg) Command() {}

// Send wraps a message in a SendMsg command.
func Send(msg Message) Command {
	return SendMsg{Message: msg}
}

// Effect runs work in a background goroutine.
// Run must not touch stores directly; it reports results through post so
// that state changes happen on the loop.
type Effect struct {
	Name string
	Run  func(ctx context.Context, post PostFunc)
}

func (Effect) Command() {}
