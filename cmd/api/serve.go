package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/turnera/internal/audit"
	"github.com/BruksfildServices01/turnera/internal/config"
	dbpkg "github.com/BruksfildServices01/turnera/internal/db"
	"github.com/BruksfildServices01/turnera/internal/export"
	"github.com/BruksfildServices01/turnera/internal/routes"
	"github.com/BruksfildServices01/turnera/internal/session"
	ucAppointment "github.com/BruksfildServices01/turnera/internal/usecase/appointment"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		l := newLogger(nil)
		l.Error().Err(err).Msg("failed to load config")
		return err
	}
	logger := newLogger(cfg)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// ======================================================
	// DATABASE
	// ======================================================
	db, applied, err := dbpkg.NewDB(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open database")
		return err
	}
	defer dbpkg.Close(db)
	logger.Info().Str("driver", cfg.DBDriver).Int("migrations_applied", applied).Msg("connected to database")

	// ======================================================
	// AUDIT (DB + AMQP opcional)
	// ======================================================
	sinks := []audit.Sink{audit.New(db)}

	var publisher *audit.Publisher
	if cfg.AMQPUrl != "" {
		publisher, err = audit.NewPublisher(cfg.AMQPUrl, cfg.AMQPExchange)
		if err != nil {
			logger.Warn().Err(err).Msg("amqp unavailable, audit events stay local")
		} else {
			sinks = append(sinks, publisher)
			logger.Info().Str("exchange", cfg.AMQPExchange).Msg("publishing audit events")
		}
	}
	dispatcher := audit.NewDispatcher(logger, sinks...)

	// ======================================================
	// SELEÇÃO DO EDITOR
	// ======================================================
	var sessions session.Store = session.NewMemoryStore()
	var redisStore *session.RedisStore
	if cfg.RedisURL != "" {
		redisStore, err = session.NewRedisStore(ctx, cfg.RedisURL, session.DefaultTTL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, using in-memory selection store")
		} else {
			sessions = redisStore
		}
	}

	// ======================================================
	// EXPORT (S3 opcional)
	// ======================================================
	var uploader ucAppointment.Uploader
	if cfg.S3.Enabled() {
		u, err := export.NewUploader(cfg.S3)
		if err != nil {
			logger.Warn().Err(err).Msg("s3 disabled")
		} else {
			uploader = u
		}
	}

	// ======================================================
	// HTTP
	// ======================================================
	engine := routes.NewEngine(routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      logger,
		Audit:    dispatcher,
		Sessions: sessions,
		Uploader: uploader,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error().Err(err).Msg("server failed")
		shutdown(logger, dispatcher, publisher, redisStore)
		return err
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}

	shutdown(logger, dispatcher, publisher, redisStore)
	return nil
}

// shutdown drena a auditoria antes de fechar o broker e o redis.
func shutdown(
	logger zerolog.Logger,
	dispatcher *audit.Dispatcher,
	publisher *audit.Publisher,
	redisStore *session.RedisStore,
) {
	dispatcher.Close()

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Warn().Err(err).Msg("amqp close")
		}
	}
	if redisStore != nil {
		if err := redisStore.Close(); err != nil {
			logger.Warn().Err(err).Msg("redis close")
		}
	}
}
