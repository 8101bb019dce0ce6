package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/odvcencio/fluxstore/backend"
	tcellbackend "github.com/odvcencio/fluxstore/backend/tcell"
	"github.com/odvcencio/fluxstore/config"
	"github.com/odvcencio/fluxstore/runtime"
	"github.com/odvcencio/fluxstore/stores"
	"github.com/odvcencio/fluxstore/views"
)

const (
	// usersLoaded is the CustomMsg kind carrying the loaded user list.
	usersLoaded = "users"
	// noticeExpired carries the notice text to clear.
	noticeExpired = "notice-expired"

	noticeTTL = 3 * time.Second
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the terminal demo",
	Long: `Start the terminal demo.

Users start out unloaded and arrive after load_delay, so the views show
their loading state first.

Keys:
  up/down  move the selection
  n        add a user
  x        remove the selected user
  q        quit (Ctrl+C also works)`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cmd, cfg.SlogLevel())
	if err != nil {
		return err
	}
	defer closer.Close()

	be, err := tcellbackend.New()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return runDemo(ctx, be, cfg, logger)
}

// runDemo runs the demo app on be until quit or ctx ends.
func runDemo(ctx context.Context, be backend.Backend, cfg *config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	s := stores.New(cfg.Seed, logger)
	defer s.Close()

	err := newDemoApp(be, s, cfg, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newDemoApp builds the view tree over s and an app with the user load
// already spawned.
func newDemoApp(be backend.Backend, s *stores.Stores, cfg *config.Config, logger *slog.Logger) *runtime.App {
	if logger == nil {
		logger = slog.Default()
	}
	app := runtime.NewApp(runtime.AppConfig{
		Backend:       be,
		Root:          newRoot(s),
		Update:        demoUpdate(s),
		MessageBuffer: cfg.MessageBuffer,
		TickRate:      cfg.TickRate.Duration(),
		Logger:        logger,
	})

	users := stores.SeedUsers(cfg.Seed)
	app.Spawn(runtime.Load(usersLoaded, cfg.LoadDelay.Duration(), func(context.Context) any {
		return users
	}))
	logger.Info("demo starting", "users", len(users), "feed", len(s.Feed.State()))
	return app
}

// newRoot builds the view tree over s.
func newRoot(s *stores.Stores) *views.Stack {
	return views.NewStack(
		views.NewUserList(s.Users, s.Selection),
		views.NewUserProfile(s),
		views.NewFeedList(s.Feed),
		views.NewStoreLabel(s.Status),
		views.NewStoreLabel(s.Notice),
	)
}

// demoUpdate applies load results and the demo keys to the stores, and
// leaves everything else to runtime.DefaultUpdate.
func demoUpdate(s *stores.Stores) runtime.UpdateFunc {
	return func(app *runtime.App, msg runtime.Message) bool {
		switch m := msg.(type) {
		case runtime.CustomMsg:
			switch m.Kind {
			case usersLoaded:
				users, ok := m.Payload.([]stores.User)
				if !ok {
					return false
				}
				s.Users.SetState(users)
				return true
			case noticeExpired:
				// a newer notice keeps its own timer
				if text, ok := m.Payload.(string); ok && s.Notice.State() == text {
					s.Notice.SetState("")
					return true
				}
			}
			return false
		case runtime.KeyMsg:
			if m.Key != backend.KeyRune || m.Ctrl {
				break
			}
			switch m.Rune {
			case 'q':
				app.ExecuteCommand(runtime.Quit{})
				return false
			case 'n':
				id := s.Users.NextID()
				s.Users.Upsert(stores.User{ID: id, FirstName: "User", LastName: strconv.Itoa(id)})
				return true
			case 'x':
				user, ok := s.Users.ByID(s.Selection.State())
				if !ok || !s.Users.Remove(user.ID) {
					return false
				}
				notice := "removed " + user.DisplayName()
				s.Notice.SetState(notice)
				app.After(noticeTTL, runtime.CustomMsg{Kind: noticeExpired, Payload: notice})
				return true
			}
		}
		return runtime.DefaultUpdate(app, msg)
	}
}
