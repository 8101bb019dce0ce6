package views

import "github.com/odvcencio/fluxstore/runtime"

// Stack lays children out top to bottom with a blank line between them.
// Messages go to each child in order until one handles them.
type Stack struct {
	children []runtime.Component
}

// NewStack creates a stack.
func NewStack(children ...runtime.Component) *Stack {
	return &Stack{children: children}
}

// Children returns the stacked components.
func (s *Stack) Children() []runtime.Component {
	return s.children
}

// HandleMessage forwards msg to children.
func (s *Stack) HandleMessage(msg runtime.Message) runtime.HandleResult {
	for _, child := range s.children {
		if result := child.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return runtime.Unhandled()
}

// View renders children in order until height is used up.
func (s *Stack) View(width, height int) []string {
	var lines []string
	for i, child := range s.children {
		remaining := height - len(lines)
		if i > 0 {
			if remaining <= 1 {
				break
			}
			lines = append(lines, "")
			remaining--
		}
		lines = append(lines, child.View(width, remaining)...)
	}
	return fitLines(lines, width, height)
}
