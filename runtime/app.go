// Package runtime runs components on a single cooperative event loop.
//
// Input, ticks, and effect results arrive as messages and are applied one at
// a time on the loop goroutine. Store writes made while handling a message
// therefore complete their notification pass before the next message is
// read.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/odvcencio/fluxstore/backend"
	"github.com/odvcencio/fluxstore/state"
)

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands the app does not recognize.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Component
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
	TickRate       time.Duration
	StateQueue     *state.Queue
	FlushPolicy    QueueFlushPolicy
	Logger         *slog.Logger
}

// App runs a component tree against a backend.
type App struct {
	backend        backend.Backend
	root           Component
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message
	tickRate       time.Duration
	stateQueue     *state.Queue
	queueScheduler *QueueScheduler
	flushPolicy    QueueFlushPolicy
	invalidator    *Invalidator
	logger         *slog.Logger

	taskMu         sync.Mutex
	taskCtx        context.Context
	taskCancel     context.CancelFunc
	pendingEffects []Effect

	running    atomic.Bool
	dirty      bool
	fullRedraw bool
	width      int
	height     int
	lastFrame  []string
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	app := &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		update:         cfg.Update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
		tickRate:       cfg.TickRate,
		stateQueue:     queue,
		flushPolicy:    cfg.FlushPolicy,
		logger:         logger,
	}
	app.queueScheduler = NewQueueScheduler(queue, app.TryPost)
	app.invalidator = NewInvalidator(app.TryPost)
	return app
}

// StateScheduler returns a scheduler that wakes the loop to flush.
func (a *App) StateScheduler() state.Scheduler {
	if a == nil || a.queueScheduler == nil {
		return nil
	}
	return a.queueScheduler
}

// InvalidateScheduler returns a scheduler that invalidates the render pass.
func (a *App) InvalidateScheduler() state.Scheduler {
	if a == nil || a.invalidator == nil {
		return nil
	}
	return a.invalidator
}

// Invalidate requests a render pass.
func (a *App) Invalidate() {
	if a == nil || a.invalidator == nil {
		return
	}
	a.invalidator.Invalidate()
}

// Spawn starts an effect using the app task context.
// If Run has not started, the effect is queued until start.
func (a *App) Spawn(effect Effect) {
	if a == nil || effect.Run == nil {
		return
	}
	a.taskMu.Lock()
	if a.taskCtx == nil {
		a.pendingEffects = append(a.pendingEffects, effect)
		a.taskMu.Unlock()
		return
	}
	ctx := a.taskCtx
	a.taskMu.Unlock()
	a.runEffect(ctx, effect)
}

// After schedules a delayed message using the app task context.
func (a *App) After(delay time.Duration, msg Message) {
	a.Spawn(After(delay, msg))
}

// Post sends a message to the event loop, dropping it if the buffer is full.
func (a *App) Post(msg Message) {
	if a == nil {
		return
	}
	if !a.TryPost(msg) {
		a.logger.Warn("message dropped", "type", fmt.Sprintf("%T", msg))
	}
}

// TryPost sends a message to the event loop without blocking.
func (a *App) TryPost(msg Message) bool {
	if a == nil || a.messages == nil || msg == nil {
		return false
	}
	select {
	case a.messages <- msg:
		return true
	default:
		return false
	}
}

// Run starts the event loop until Quit or context cancellation.
// It returns ctx.Err() when the context ended the loop and nil on Quit.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	taskCtx, taskCancel := context.WithCancel(ctx)
	defer taskCancel()

	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.width, a.height = a.backend.Size()
	if a.update == nil {
		a.update = DefaultUpdate
	}

	BindTree(a.root, a.Services())
	MountTree(a.root)
	defer func() {
		UnmountTree(a.root)
		UnbindTree(a.root)
	}()

	a.running.Store(true)
	a.dirty = true
	a.fullRedraw = true
	a.startTasks(taskCtx, taskCancel)
	defer a.stopTasks()

	go a.pollEvents()

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	a.logger.Debug("app started", "width", a.width, "height", a.height)
	for a.running.Load() {
		var msg Message
		select {
		case <-ctx.Done():
			a.stop()
		case msg = <-a.messages:
		case now := <-ticks:
			msg = TickMsg{Time: now}
		}
		if msg == nil || !a.running.Load() {
			continue
		}

		if a.update(a, msg) {
			a.dirty = true
		}
		if !a.running.Load() {
			continue
		}
		if a.flushQueueIfNeeded(msg) {
			a.dirty = true
		}
		if _, ok := msg.(InvalidateMsg); ok {
			a.invalidator.resetPending()
		}
		if a.dirty {
			a.render()
			a.dirty = false
		}
	}
	a.logger.Debug("app stopped")
	return ctx.Err()
}

// DefaultUpdate handles resize and control messages and dispatches the rest
// to the root component.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil {
		return false
	}
	switch m := msg.(type) {
	case ResizeMsg:
		app.width, app.height = m.Width, m.Height
		app.fullRedraw = true
		return true
	case KeyMsg:
		if m.Key == backend.KeyCtrlC {
			app.stop()
			return false
		}
		return app.dispatchMessage(msg)
	case QueueFlushMsg:
		return false
	case InvalidateMsg:
		return true
	default:
		return app.dispatchMessage(msg)
	}
}

// ExecuteCommand runs a command through the app handler.
func (a *App) ExecuteCommand(cmd Command) bool {
	if a == nil {
		return false
	}
	return a.handleCommand(cmd)
}

func (a *App) dispatchMessage(msg Message) bool {
	if a.root == nil {
		return false
	}
	result := a.root.HandleMessage(msg)
	dirty := result.Handled
	for _, cmd := range result.Commands {
		if a.handleCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

func (a *App) handleCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case Quit:
		a.stop()
		return false
	case Refresh:
		a.fullRedraw = true
		return true
	case SendMsg:
		if c.Message != nil {
			a.Post(c.Message)
		}
		return false
	case Effect:
		a.Spawn(c)
		return false
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

func (a *App) stop() {
	a.running.Store(false)
	a.taskMu.Lock()
	cancel := a.taskCancel
	a.taskMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (a *App) pollEvents() {
	for {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case backend.KeyEvent:
			a.Post(KeyMsg{Key: e.Key, Rune: e.Rune, Ctrl: e.Ctrl})
		case backend.ResizeEvent:
			a.Post(ResizeMsg{Width: e.Width, Height: e.Height})
		}
	}
}

func (a *App) render() {
	lines := a.frame()
	rowWriter, ok := a.backend.(backend.RowWriter)
	if ok && !a.fullRedraw && len(lines) == len(a.lastFrame) {
		changed := 0
		for y, line := range lines {
			if line != a.lastFrame[y] {
				rowWriter.SetRow(y, line)
				changed++
			}
		}
		a.logger.Debug("render", "mode", "rows", "changed", changed)
	} else {
		a.backend.Draw(lines)
		a.fullRedraw = false
		a.logger.Debug("render", "mode", "full", "rows", len(lines))
	}
	a.lastFrame = lines
	a.backend.Show()
}

func (a *App) frame() []string {
	lines := make([]string, a.height)
	if a.root == nil || a.height <= 0 {
		return lines
	}
	copy(lines, a.root.View(a.width, a.height))
	return lines
}

func (a *App) startTasks(ctx context.Context, cancel context.CancelFunc) {
	a.taskMu.Lock()
	a.taskCtx = ctx
	a.taskCancel = cancel
	effects := a.pendingEffects
	a.pendingEffects = nil
	a.taskMu.Unlock()
	for _, effect := range effects {
		a.runEffect(ctx, effect)
	}
}

func (a *App) stopTasks() {
	a.taskMu.Lock()
	cancel := a.taskCancel
	a.taskCtx = nil
	a.taskCancel = nil
	a.taskMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (a *App) runEffect(ctx context.Context, effect Effect) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.logger.Error("effect panicked", "effect", effect.Name, "panic", r)
			}
		}()
		effect.Run(ctx, a.TryPost)
	}()
}

func (a *App) flushQueueIfNeeded(msg Message) bool {
	if a.stateQueue == nil || !shouldFlushQueue(a.flushPolicy, msg) {
		return false
	}
	a.queueScheduler.resetPending()
	return a.stateQueue.Flush() > 0
}
