// Package server initializes and runs the Orderly server: it opens the
// database, applies migrations, wires the services and starts the TLS
// listener, shutting everything down on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/orderly-app/orderly/internal/logging"
	"github.com/orderly-app/orderly/internal/server/config"
	"github.com/orderly-app/orderly/internal/server/repositories/repomanager"
	"github.com/orderly-app/orderly/internal/server/services"
	"github.com/orderly-app/orderly/internal/server/session"
	"github.com/orderly-app/orderly/internal/server/tcp"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	userService   *services.UserService
	friendService *services.FriendService
	sessions      *session.Registry
	closeDB       func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, rm, err := repomanager.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm)
	fs := services.NewFriendService(db, rm)

	return &App{
		config:        c,
		logger:        logger,
		userService:   us,
		friendService: fs,
		sessions:      session.NewRegistry(),
		closeDB:       db.Close,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startTCPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := tcp.NewServer(app.config, app.logger, app.userService, app.friendService, app.sessions)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startTCPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.closeDB(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
