package runtime

// HandleResult reports whether a component consumed a message and which
// commands it emitted.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled marks a message as consumed.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// Unhandled lets a message continue to the next component.
func Unhandled() HandleResult {
	return HandleResult{}
}

// WithCommand marks a message as consumed and emits cmds.
func WithCommand(cmds ...Command) HandleResult {
	return HandleResult{Handled: true, Commands: cmds}
}

// Component is a node in the view tree.
type Component interface {
	HandleMessage(msg Message) HandleResult
	// View renders the component into at most height lines of at most
	// width cells.
	View(width, height int) []string
}

// ChildProvider exposes child components for tree walks.
type ChildProvider interface {
	Children() []Component
}

// Lifecycle is implemented by components that subscribe on mount and
// release their subscriptions on unmount.
type Lifecycle interface {
	Mount()
	Unmount()
}

// Bindable components receive app services before they are mounted.
type Bindable interface {
	Bind(services Services)
}

// Unbindable components release app services after they are unmounted.
type Unbindable interface {
	Unbind()
}

// BindTree calls Bind on every Bindable component, parents first.
func BindTree(root Component, services Services) {
	if services.isZero() {
		return
	}
	walkDown(root, func(c Component) {
		if b, ok := c.(Bindable); ok {
			b.Bind(services)
		}
	})
}

// UnbindTree calls Unbind on every Unbindable component, children first.
func UnbindTree(root Component) {
	walkUp(root, func(c Component) {
		if u, ok := c.(Unbindable); ok {
			u.Unbind()
		}
	})
}

// MountTree calls Mount on every Lifecycle component, parents first.
func MountTree(root Component) {
	walkDown(root, func(c Component) {
		if m, ok := c.(Lifecycle); ok {
			m.Mount()
		}
	})
}

// UnmountTree calls Unmount on every Lifecycle component, children first.
func UnmountTree(root Component) {
	walkUp(root, func(c Component) {
		if m, ok := c.(Lifecycle); ok {
			m.Unmount()
		}
	})
}

func walkDown(c Component, visit func(Component)) {
	if c == nil {
		return
	}
	visit(c)
	if parent, ok := c.(ChildProvider); ok {
		for _, child := range parent.Children() {
			walkDown(child, visit)
		}
	}
}

func walkUp(c Component, visit func(Component)) {
	if c == nil {
		return
	}
	if parent, ok := c.(ChildProvider); ok {
		for _, child := range parent.Children() {
			walkUp(child, visit)
		}
	}
	visit(c)
}
