// Package views provides components that consume shared stores.
//
// Each component takes a snapshot of the stores it reads when mounted,
// registers listeners to keep that snapshot current, and releases every
// listener when unmounted.
package views

import (
	"github.com/odvcencio/fluxstore/runtime"
	"github.com/odvcencio/fluxstore/state"
)

// Component is a base with bound services and tracked subscriptions.
type Component struct {
	Services runtime.Services
	Subs     state.Subscriptions
}

// Bind attaches app services to the component.
func (c *Component) Bind(services runtime.Services) {
	c.Services = services
	c.Subs.SetScheduler(services.Scheduler())
}

// Unbind releases app services and subscriptions.
func (c *Component) Unbind() {
	c.Subs.Clear()
	c.Services = runtime.Services{}
}

// Invalidate requests a render pass.
func (c *Component) Invalidate() {
	c.Services.Invalidate()
}

// Observe registers a change callback using the default scheduler.
func (c *Component) Observe(sub state.Subscribable, fn func()) {
	c.Subs.Observe(sub, fn)
}

// HandleMessage ignores all messages.
func (c *Component) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}
