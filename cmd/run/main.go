package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ANSH5252/LivePulse/internal/app"
	"github.com/ANSH5252/LivePulse/internal/config"
	"github.com/ANSH5252/LivePulse/utils"
)

func main() {
	cfg := config.Load("config/local.yaml")

	log := utils.New(cfg.Env)

	application := app.NewApp(log, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := application.Hub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("fanout hub stopped", utils.Err(err))
		}
	}()

	go func() {
		if err := application.Syncer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("reconciliation worker stopped", utils.Err(err))
		}
	}()

	go func() {
		if err := application.HTTPServer.Run(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("HTTP server closed gracefully")
			} else {
				log.Error("failed to run HTTP server", utils.Err(err))
				stop()
			}
		}
	}()

	log.Info("LivePulse backend started", slog.String("env", cfg.Env), slog.Int("port", cfg.HTTP.Port))

	<-ctx.Done()

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := application.Stop(shutdownCtx); err != nil {
		log.Error("failed to stop application", utils.Err(err))
	}
}
