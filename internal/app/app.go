package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/MOTBooker/internal/backend"
	"github.com/stpnv0/MOTBooker/internal/bookingform"
	"github.com/stpnv0/MOTBooker/internal/config"
	"github.com/stpnv0/MOTBooker/internal/handler"
	"github.com/stpnv0/MOTBooker/internal/metrics"
	"github.com/stpnv0/MOTBooker/internal/middleware"
	"github.com/stpnv0/MOTBooker/internal/notification"
	"github.com/stpnv0/MOTBooker/internal/refund"
	"github.com/stpnv0/MOTBooker/internal/repository"
	"github.com/stpnv0/MOTBooker/internal/router"
	"github.com/stpnv0/MOTBooker/internal/scheduler"
	"github.com/stpnv0/MOTBooker/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	migrationsDir = "migrations"
	templatesGlob = "web/templates/*"
	staticDir     = "web/static"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"MOTBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client := repository.NewRedisClient(a.cfg.Redis)

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Redis.DialTimeout)
	defer cancel()

	if err := repository.Ping(ctx, client); err != nil {
		_ = client.Close()
		return err
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Int("db", a.cfg.Redis.DB),
	)

	return nil
}

func (a *App) initServices() error {
	client, err := backend.New(
		a.cfg.Backend.BaseURL,
		a.cfg.Backend.Timeout,
		backend.WithRetry(a.cfg.Backend.RetryStrategy()),
	)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	auditRepo := repository.NewAuditRepo(a.db)
	datesCache := repository.NewDisabledDatesCache(a.redis, a.cfg.Form.DisabledDatesTTL)
	sessions := repository.NewFormSessionStore(a.redis, a.cfg.Form.SessionTTL)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	refunds := refund.NewDefaultRegistry(client)

	bookingService := service.NewBookingService(client, refunds, auditRepo, n, a.log)
	slotService := service.NewSlotService(client, auditRepo, n, a.log)
	formService := service.NewFormService(client, bookingform.NewValidator(), datesCache, sessions, a.log)
	authService := service.NewAuthService(client, a.log)

	a.scheduler = scheduler.New(
		formService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metrics.Register()
		metricsPath = a.cfg.Metrics.Path
	}

	h := handler.NewHandler(bookingService, slotService, formService, authService, handler.Sessions{
		Cookie: a.cfg.Form.SessionCookie,
		TTL:    a.cfg.Form.SessionTTL,
		Secure: a.cfg.Gin.Mode == "release",
	})
	r := router.InitRouter(
		router.Options{
			Mode:        a.cfg.Gin.Mode,
			Templates:   templatesGlob,
			Static:      staticDir,
			MetricsPath: metricsPath,
		},
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.BackendCredentials(a.cfg.Form.SessionCookie),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Backend.Timeout + a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("backend", a.cfg.Backend.BaseURL),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := repository.Close(a.redis); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
