package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"medidrone/cmd"
	"medidrone/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("service stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := getConfigs()
	if err != nil {
		return err
	}

	level, _ := configs.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		return err
	}
	images, err := cmd.OpenImageStorage(ctx, configs)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, db, images, logger)

	batterySink, closeSink, err := jobs.OpenBatterySink(configs.BatteryLogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeSink() }()

	jobManager := app.CreateJobManager(batterySink)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, &app, configs, logger)
}

func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cmd.Config{}, fmt.Errorf("load .env: %w", err)
	}

	config := cmd.ConfigFromEnv(os.Getenv)
	if err := config.Validate(); err != nil {
		return cmd.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(gommonLevel(configs.LogLevel))

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "http server listening", "port", configs.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.InfoContext(shutdownCtx, "shutting down http server")
	return e.Shutdown(shutdownCtx)
}

func gommonLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
