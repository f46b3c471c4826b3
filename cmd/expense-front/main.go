package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jayPrakash10/expense-front/internal/api"
	"github.com/jayPrakash10/expense-front/internal/auth"
	"github.com/jayPrakash10/expense-front/internal/config"
	apphttp "github.com/jayPrakash10/expense-front/internal/http"
	applog "github.com/jayPrakash10/expense-front/internal/log"
	"github.com/jayPrakash10/expense-front/internal/notify"
	"github.com/jayPrakash10/expense-front/internal/services"
	"github.com/jayPrakash10/expense-front/internal/storage"
	"github.com/jayPrakash10/expense-front/internal/store"
)

func main() {
	cfg := config.Load()

	logger := applog.New(applog.Config{Level: applog.ParseLevel(cfg.LogLevel)})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err.Error())
		os.Exit(1)
	}

	sessions, err := storage.NewSessionStore(cfg.SessionFile)
	if err != nil {
		logger.Error("Failed to open session store",
			"path", cfg.SessionFile, applog.FieldError, err.Error())
		os.Exit(1)
	}

	notifier := notify.NewCenter(logger)
	st := store.New()
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sessions, notifier, logger)

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Deps{
		Store:      st,
		Auth:       auth.NewService(client, sessions, cfg.GoogleClientID, logger),
		Analytics:  services.NewAnalyticsService(client, st, logger),
		Form:       services.NewExpenseFormService(client, st, notifier, logger),
		Categories: services.NewCategoryService(client, st, notifier, cfg.DebounceInterval, logger),
		Profile:    services.NewProfileService(client, st, notifier, logger),
		Notifier:   notifier,
		Logger:     logger,
	})

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err.Error())
		}
		cancel()
	}()

	logger.Info("Starting expense dashboard", "port", cfg.Port, "backend", cfg.APIBaseURL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err.Error(), "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
