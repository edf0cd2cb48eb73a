// Package server initializes and runs the main application server.
// It selects the user store backend, wires the authentication service,
// and starts the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mp28jam28/board-auth/internal/logging"
	"github.com/mp28jam28/board-auth/internal/server/config"
	"github.com/mp28jam28/board-auth/internal/server/httpserver"
	"github.com/mp28jam28/board-auth/internal/server/services"
	"github.com/mp28jam28/board-auth/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	db          *sql.DB
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	app := &App{config: c, logger: logger}

	repo, err := app.buildRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	app.userService = services.NewUserService(repo, c)

	return app, nil
}

func (app *App) buildRepository(ctx context.Context) (users.Repository, error) {
	switch app.config.StoreBackend {
	case config.StoreDynamoDB:
		client, err := users.NewDynamoClient(ctx, users.DynamoOptions{
			Region:          app.config.AWSRegion,
			Endpoint:        app.config.AWSEndpoint,
			AccessKeyID:     app.config.AWSAccessKeyID,
			SecretAccessKey: app.config.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return users.NewDynamoRepository(client, app.config.DynamoTable), nil
	case config.StorePostgres:
		repo, db, err := users.OpenPostgres(ctx, app.config.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		app.db = db
		return repo, nil
	case config.StoreMemory:
		return users.NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", app.config.StoreBackend)
	}
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpserver.NewHTTPServer(app.config.Address, app.logger, app.userService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "store", app.config.StoreBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err.Error())
		}
	}
}
