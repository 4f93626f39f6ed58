package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/cenkalti/backoff/v5"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/godruoyi/go-snowflake"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/ip812/portfolio/config"
	"github.com/ip812/portfolio/content"
	"github.com/ip812/portfolio/logger"
	"github.com/ip812/portfolio/middleware"
	"github.com/ip812/portfolio/notifier"
	"github.com/ip812/portfolio/o11y"
	migrations "github.com/ip812/portfolio/sql"
	"github.com/ip812/portfolio/utils"
)

const (
	serviceName           = "portfolio"
	dbConnectTimeout      = 10 * time.Second
	dbMaxOpenConnections  = 10
	retryMaxElapsedTime   = 15 * time.Minute
	serverIdleTimeout     = 1 * time.Minute
	serverReadTimeout     = 10 * time.Second
	serverWriteTimeout    = 30 * time.Second
	serverShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.New()
	log := logger.New(cfg)

	tracer := o11y.NoopTracer(serviceName)
	if cfg.Otel.Enabled {
		t, shutdown, err := o11y.NewTracer(ctx, serviceName)
		if err != nil {
			log.Error("unable to initialize tracer due: %v", err)
		} else {
			tracer = t
			defer shutdown(context.Background())
		}
	}

	// https://snowsta.mp
	startTime, _ := time.Parse(time.RFC3339, "2015-01-01T00:00:00Z")
	snowflake.SetStartTime(startTime)
	snowflake.SetMachineID(1)

	store, err := loadContent(ctx, cfg, log)
	if err != nil {
		log.Error("exiting: could not load content: %s", err.Error())
		return
	}

	slacknotifier := notifier.NewSlack(cfg.Slack.BotToken, log)

	swappableDB := NewSwappableDB()

	apiServer := startHTTPServer(cfg, log, tracer, swappableDB, store, slacknotifier)
	metricsServer := startMetricsServer(cfg, log)

	if cfg.Database.Enabled() {
		go func() {
			db, err := connectToDatabaseWithRetry(ctx, cfg, log)
			if err != nil {
				log.Error("contact form disabled: could not connect to DB after retries: %s", err.Error())
				return
			}

			goose.SetBaseFS(migrations.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				log.Error("failed to set dialect: %s", err.Error())
			}
			if err := goose.Up(db, migrations.MigrationsDir); err != nil {
				log.Error("failed to run migrations: %s", err.Error())
				db.Close()
				return
			}

			swappableDB.Swap(db)
		}()
	} else {
		log.Warn("no database configured, contact form is disabled")
	}

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("server shutdown cleanly")
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down server: %s", err.Error())
	} else {
		log.Info("metrics server shutdown cleanly")
	}

	if err := swappableDB.Close(); err != nil {
		log.Error("error closing database: %s", err.Error())
	}
}

// loadContent reads the embedded content, or in the local environment
// the configured directory, which is then watched for edits.
func loadContent(ctx context.Context, cfg *config.Config, log logger.Logger) (*content.Store, error) {
	if cfg.App.Env != config.Local || cfg.App.ContentDir == "" {
		c, err := content.LoadEmbedded()
		if err != nil {
			return nil, err
		}
		log.Info("loaded embedded content: %d projects", c.Catalog.Len())
		return content.NewStore(c), nil
	}

	c, err := content.Load(os.DirFS(cfg.App.ContentDir))
	if err != nil {
		return nil, err
	}
	store := content.NewStore(c)

	watcher, err := content.NewWatcher(cfg.App.ContentDir, store, log)
	if err != nil {
		log.Warn("content hot reload disabled: %v", err)
		return store, nil
	}
	go watcher.Run(ctx)

	return store, nil
}

type dbConnection struct {
	db *sql.DB
}

func connectToDatabaseWithRetry(ctx context.Context, cfg *config.Config, log logger.Logger) (*sql.DB, error) {
	var conn dbConnection

	operation := func() (dbConnection, error) {
		connCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
		defer cancel()

		db, err := otelsql.Open(
			"postgres",
			cfg.Database.ConnectionString(),
			otelsql.WithAttributes(
				semconv.DBSystemNamePostgreSQL,
			),
		)
		if err != nil {
			log.Warn("failed to open the database connection: %v", err.Error())
			return conn, err
		}

		_, err = otelsql.RegisterDBStatsMetrics(
			db,
			otelsql.WithAttributes(
				semconv.DBSystemNamePostgreSQL,
			),
		)
		if err != nil {
			log.Warn("failed to register database metrics: %v", err.Error())
			db.Close()
			return conn, err
		}

		if err := db.PingContext(connCtx); err != nil {
			log.Warn("failed to ping the database: %v", err.Error())
			db.Close()
			return conn, err
		}

		db.SetMaxOpenConns(dbMaxOpenConnections)
		log.Info("connected to database")

		conn.db = db
		return conn, nil
	}

	_, err := backoff.Retry[dbConnection](
		ctx,
		operation,
		backoff.WithMaxElapsedTime(retryMaxElapsedTime),
	)

	return conn.db, err
}

func newRouter(handler *Handler) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(mux)))
	mux.Use(middleware.TraceIDHeaderMiddleware)
	mux.Use(middleware.RequestLogger(handler.log))
	mux.Handle("/static/*", handler.StaticFiles())
	mux.Get("/", handler.LandingPageView)
	mux.Get("/projects/{id}", handler.ProjectRedirect)
	mux.Route("/p", func(mux chi.Router) {
		mux.Route("/public", func(mux chi.Router) {
			mux.Get("/landing-page", handler.LandingPageView)
			mux.Get("/projects", handler.ProjectsView)
			mux.Get("/projects/{id}", handler.ProjectDetailsView)
		})
	})

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/public/v0", func(mux chi.Router) {
			mux.Post("/contact", utils.MakeTemplHandler(handler.CreateContactMessage))
		})
	})

	mux.Get("/healthz", handler.Healthz)
	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return mux
}

func startHTTPServer(
	cfg *config.Config,
	log logger.Logger,
	tracer oteltrace.Tracer,
	db DBWrapper,
	store *content.Store,
	slacknotifier MessageSender,
) *http.Server {
	formDecoder := form.NewDecoder()
	formValidator := validator.New(validator.WithRequiredStructEnabled())

	handler := &Handler{
		config:        cfg,
		formDecoder:   formDecoder,
		formValidator: formValidator,
		tracer:        tracer,
		slacknotifier: slacknotifier,
		content:       store,
		db:            db,
		log:           log,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      newRouter(handler),
	}

	go func() {
		log.Info("server started on %s", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start server: %s", err.Error())
		}
	}()

	return server
}

func startMetricsServer(
	cfg *config.Config,
	log logger.Logger,
) *http.Server {
	mux := chi.NewRouter()

	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.MetricsPort),
		IdleTimeout:  serverIdleTimeout,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		Handler:      mux,
	}

	go func() {
		log.Info("metrics server started on %s", cfg.App.MetricsPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("cannot start metrics server: %s", err.Error())
		}
	}()

	return server
}
