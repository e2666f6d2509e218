package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/config"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/router"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger: pretty in dev, JSON in prod
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disk, err := infra.NewDisk(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("disk", cfg.ExportDisk).Msg("failed to open export disk")
	}

	// Share-by-email worker pool. Handlers are wired here (composition root)
	// so the pool has the disk and the mailer.
	smtpCB := infra.NewCircuitBreaker("smtp", infra.DefaultCBConfig())
	if cfg.SMTPHost != "" {
		mailer := infra.NewMailer(cfg, smtpCB)
		handlers := map[string]worker.JobHandler{
			worker.JobCompartir: worker.NewCompartirWorker(disk, mailer, rdb),
		}
		worker.StartWorkerPool(ctx, rdb, handlers, cfg.WorkerPoolSize)
	} else {
		log.Warn().Msg("SMTP_HOST not set: share-by-email disabled")
	}

	r := router.New(ctx, cfg, router.Deps{DB: db, RDB: rdb, Disk: disk, SMTPBreaker: smtpCB})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Str("material", cfg.Material).Msgf("GrupoKZ backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	_ = rdb.Close()
	log.Info().Msg("server exited")
}
