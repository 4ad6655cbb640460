// Package server wires configuration, storage, services and the gRPC
// transport into a runnable application and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/shelfkeeper/internal/logging"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/auth"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/config"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/shelfkeeper/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *gs.GRPCServer
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := repomanager.OpenDB(ctx, c.DatabaseDSN, repomanager.PoolOptions{
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	app, err := newApp(c, logger, db, rm)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) (*App, error) {
	hasher := auth.NewBcryptHasher(c.PasswordHashCost)
	issuer := auth.NewTokenIssuer([]byte(c.SecretKey))

	as, err := services.NewAuthService(db, rm, hasher, issuer, logger)
	if err != nil {
		return nil, err
	}
	ds := services.NewDirectoryService(db, rm, hasher, logger)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		server: gs.NewGRPCServer(c.EndpointAddrGRPC, logger, as, ds),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the database pool.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(ctx, cancelFunc)

	err := app.server.Run(ctx)

	if app.db != nil {
		if cerr := app.db.Close(); cerr != nil {
			app.logger.Error(ctx, "close db", "error", cerr)
		}
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
