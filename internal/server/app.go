// Package server initializes and runs the landkeeper server. It opens the
// database, picks the change feed and blob backends, schedules background
// jobs, and serves AdminService together with the metrics endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/api"
	"github.com/dmitrijs2005/landkeeper/internal/blob"
	"github.com/dmitrijs2005/landkeeper/internal/console"
	"github.com/dmitrijs2005/landkeeper/internal/feed"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/intake"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/metrics"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/server/auth"
	"github.com/dmitrijs2005/landkeeper/internal/server/config"
	"github.com/dmitrijs2005/landkeeper/internal/server/storage"
	"github.com/dmitrijs2005/landkeeper/internal/sweep"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/landkeeper/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	storage  *storage.Manager
	metrics  *metrics.Metrics
	hub      *feed.Hub
	listener *feed.Listener
	sessions *console.Manager
	sweeper  *sweep.Sweeper
	grpc     *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(c.LogFormat, os.Stdout)
	if err != nil {
		return nil, err
	}

	sm, err := storage.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := metrics.New()
	hub := feed.NewHub(logger.With("module", "feed"))

	var gw gateway.Gateway = sm.Gateway(
		gateway.WithTimeout(c.GatewayTimeout),
		gateway.WithObserver(m),
	)

	// Postgres announces row changes through its trigger; sqlite has no
	// notification channel, so writes made here are published directly.
	var listener *feed.Listener
	if sm.Driver() == "pgx" {
		base := gw
		listener = feed.NewListener(c.DatabaseDSN, hub, logger.With("module", "feed_listener"),
			feed.WithFetcher(func(ctx context.Context, table, id string) (models.Row, error) {
				return gateway.Get(ctx, base, table, id)
			}),
		)
	} else {
		gw = gateway.NewPublishing(gw, hub)
	}

	blobs, err := newBlobStore(ctx, c, logger, m)
	if err != nil {
		_ = sm.Close()
		return nil, err
	}

	authn := auth.NewService(c.AdminEmail, c.AdminPasswordHash, []byte(c.JWTSecret), c.TokenTTL, logger)

	sessions := console.NewManager(console.Deps{
		Gateway:        gw,
		Blobs:          blobs,
		Feed:           hub,
		Log:            logger,
		SignedTTL:      c.SignedURLTTL,
		Recorder:       m,
		NoticeRecorder: m,
	}, m)

	in := intake.NewService(gw, blobs, logger,
		intake.WithRecorder(m),
		intake.WithLimits(c.MaxUploadFiles, c.MaxUploadBytes),
	)

	sweeper := sweep.New(gw, blobs, logger,
		sweep.WithGrace(c.SweepGrace),
		sweep.WithRecorder(m),
	)

	grpcServer := gs.NewGRPCServer(c.GRPCAddress, logger, authn, sessions, in).
		WithMessageLimit(api.MessageLimit(c.MaxUploadFiles, c.MaxUploadBytes))

	return &App{
		config:   c,
		logger:   logger,
		storage:  sm,
		metrics:  m,
		hub:      hub,
		listener: listener,
		sessions: sessions,
		sweeper:  sweeper,
		grpc:     grpcServer,
	}, nil
}

func newBlobStore(ctx context.Context, c *config.Config, logger logging.Logger, m *metrics.Metrics) (blob.Store, error) {
	if c.BlobBackend == config.BlobsMemory {
		logger.Warn(ctx, "using in-memory blob store; uploads are lost on restart")
		return blob.NewMemoryStore(), nil
	}
	s, err := blob.NewS3Store(ctx, blob.S3Config{
		Region:        c.S3Region,
		AccessKey:     c.S3AccessKey,
		SecretKey:     c.S3SecretKey,
		Endpoint:      c.S3Endpoint,
		PublicBaseURL: c.S3PublicBaseURL,
		UsePathStyle:  c.S3UsePathStyle,
		Timeout:       c.BlobTimeout,
	}, logger.With("module", "blob"), m)
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}
	return s, nil
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

func (app *App) startScheduler(ctx context.Context) (*cron.Cron, error) {
	c := cron.New()
	if _, err := app.sweeper.Schedule(c, app.config.SweepSchedule); err != nil {
		return nil, fmt.Errorf("schedule sweep: %w", err)
	}
	if _, err := app.sessions.Schedule(c, console.ReapSchedule); err != nil {
		return nil, fmt.Errorf("schedule reap: %w", err)
	}
	c.Start()
	app.logger.Info(ctx, "scheduler started", "jobs", len(c.Entries()))
	return c, nil
}

func (app *App) serveMetrics(ctx context.Context) error {
	if app.config.MetricsAddress == "" {
		return nil
	}
	srv := &http.Server{
		Addr:              app.config.MetricsAddress,
		Handler:           app.metrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "metrics listening", "address", app.config.MetricsAddress)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run blocks until a termination signal arrives or a component fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	sched, err := app.startScheduler(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return app.grpc.Run(gctx) })
	g.Go(func() error { return app.serveMetrics(gctx) })
	if app.listener != nil {
		g.Go(func() error {
			if err := app.listener.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	err = g.Wait()

	<-sched.Stop().Done()
	app.sessions.CloseAll()
	app.hub.Close()
	if cerr := app.storage.Close(); cerr != nil {
		app.logger.Error(ctx, "db close failed", "error", cerr)
	}

	app.logger.Info(context.Background(), "app stopped")
	return err
}
