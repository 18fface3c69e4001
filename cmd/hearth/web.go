package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hearth/internal/cache"
	"hearth/internal/config"
	"hearth/internal/recipes"
	"hearth/internal/sanity"
	"hearth/internal/sitemap"
	"hearth/internal/static"
	"hearth/internal/telemetry"
	"hearth/internal/templates"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func runServer(cfg *config.Config, addr string) error {
	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}

	c, err := cache.MakeCache()
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}

	static.Init()
	if err := templates.Init(static.StylesAssetPath); err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	client := sanity.NewClient(cfg.Content)
	service := recipes.NewService(client, c)
	images := sanity.NewImageBuilder(cfg.Content)

	var mailer recipes.Mailer
	if cfg.Mail.SendGridKey != "" {
		mailer = newSendGridMailer(cfg.Mail)
		slog.Info("recipe sharing by mail enabled", "from", cfg.Mail.From)
	}

	mux := http.NewServeMux()
	static.Register(mux)

	recipeHandler := recipes.NewHandler(service, images, mailer, cfg.Site.Domain)
	recipeHandler.Register(mux)

	sitemap.New(service, cfg.Site.Domain).Register(mux)

	ro := &readyOnce{}
	ro.Add(recipeHandler)
	mux.Handle("/ready", ro)

	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    addr,
		Handler: WithMiddleware(mux),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Serving Hearth", "address", addr, "dataset", cfg.Content.Dataset)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig)
		return gracefulShutdown(server, shutdownTelemetry)
	}
}

func gracefulShutdown(svr *http.Server, shutdownTelemetry func(context.Context) error) error {
	// kubernetes gives 30 seconds of grace, leave some for the telemetry flush
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := svr.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		if closeErr := svr.Close(); closeErr != nil {
			slog.Error("Server close error", "error", closeErr)
		}
		return err
	}

	if err := shutdownTelemetry(ctx); err != nil {
		slog.Error("Telemetry shutdown error", "error", err)
		return err
	}
	return nil
}
