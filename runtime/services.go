package runtime

import (
	"log/slog"

	"github.com/odvcencio/fluxstore/state"
)

// Services exposes app scheduling, invalidation, and logging to components.
type Services struct {
	app *App
}

// Services returns a service handle for the app.
func (a *App) Services() Services {
	return Services{app: a}
}

func (s Services) isZero() bool {
	return s.app == nil
}

// Scheduler returns the scheduler that runs store listeners on the loop.
func (s Services) Scheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	return s.app.StateScheduler()
}

// InvalidateScheduler returns a scheduler that runs listeners inline and
// requests a render.
func (s Services) InvalidateScheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	return s.app.InvalidateScheduler()
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	if s.app == nil {
		return
	}
	s.app.Invalidate()
}

// Logger returns the app logger.
func (s Services) Logger() *slog.Logger {
	if s.app == nil {
		return slog.Default()
	}
	return s.app.logger
}
