// Package server initializes and runs the shared lists server. It opens the
// database, applies migrations, wires the services and serves gRPC until a
// termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/logging"
	"github.com/dmitrijs2005/sharedlists/internal/server/config"
	"github.com/dmitrijs2005/sharedlists/internal/server/events"
	"github.com/dmitrijs2005/sharedlists/internal/server/ratelimit"
	"github.com/dmitrijs2005/sharedlists/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sharedlists/internal/server/services"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/sharedlists/internal/server/grpc"
)

// purgeInterval is how often expired refresh tokens are deleted.
const purgeInterval = time.Hour

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	rdb         *redis.Client
	publisher   *events.AMQPPublisher
	userService *services.UserService
	listService *services.ListService
}

func NewApp(c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app := &App{config: c, logger: logger, db: db, repomanager: repomanager.NewPostgresRepositoryManager()}

	var publisher events.Publisher = events.Nop{}
	if c.AMQPURL != "" {
		app.publisher = events.NewAMQPPublisher(c.AMQPURL, events.DefaultExchange)
		publisher = app.publisher
	}

	opts := []services.Option{
		services.WithLogger(logger),
		services.WithPublisher(publisher),
	}
	if c.RedisAddr != "" {
		app.rdb = redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		opts = append(opts, services.WithLimiter(ratelimit.NewRedisLimiter(app.rdb, "", c.LoginAttempts, c.LoginWindow)))
	}

	app.userService = services.NewUserService(db, app.repomanager, c, opts...)
	app.listService = services.NewListService(db, app.repomanager, publisher, logger, nil)

	return app, nil
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.listService, app.userService.Codec())

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// purgeExpiredTokens deletes expired refresh tokens every interval until
// ctx is done.
func (app *App) purgeExpiredTokens(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.userService.Tokens().PurgeExpired(ctx)
			if err != nil {
				app.logger.Warn(ctx, "refresh token purge failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Info(ctx, "expired refresh tokens purged", "count", n)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return errors.Join(fmt.Errorf("migrations error: %w", err), app.Close())
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.purgeExpiredTokens(ctx, purgeInterval)
	}()

	wg.Wait()

	return app.Close()
}

// Close releases the database, Redis and broker connections.
func (app *App) Close() error {
	var errs []error
	if app.publisher != nil {
		errs = append(errs, app.publisher.Close())
	}
	if app.rdb != nil {
		errs = append(errs, app.rdb.Close())
	}
	errs = append(errs, app.db.Close())
	return errors.Join(errs...)
}
