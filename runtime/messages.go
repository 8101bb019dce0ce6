package runtime

import (
	"time"

	"github.com/odvcencio/fluxstore/backend"
)

// Message is an event delivered to the app loop.
// Messages come from terminal input, timers, or effects reporting back.
type Message interface {
	isMessage()
}

// KeyMsg is a keyboard press.
type KeyMsg struct {
	Key  backend.Key
	Rune rune
	Ctrl bool
}

func (KeyMsg) isMessage() {}

// ResizeMsg indicates the terminal size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// TickMsg is sent on each tick when AppConfig.TickRate is set.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// QueueFlushMsg triggers a state queue flush in the update loop.
type QueueFlushMsg struct{}

func (QueueFlushMsg) isMessage() {}

// InvalidateMsg requests a render pass.
type InvalidateMsg struct{}

func (InvalidateMsg) isMessage() {}

// CustomMsg carries application payloads, such as the result of a load.
type CustomMsg struct {
	Kind    string
	Payload any
}

func (CustomMsg) isMessage() {}
