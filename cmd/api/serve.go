package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pet-health/internal/adapters/auth/session"
	"pet-health/internal/adapters/auth/wechat"
	"pet-health/internal/router"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	exchanger, err := wechat.NewClient(wechat.Config{
		AppID:      cfg.WeChat.AppID,
		Secret:     cfg.WeChat.Secret,
		BaseURL:    cfg.WeChat.BaseURL,
		Timeout:    cfg.WeChat.Timeout,
		DevMode:    cfg.Env.DevMode,
		Production: cfg.IsProduction(),
	})
	if err != nil {
		return fmt.Errorf("wechat client: %w", err)
	}
	if !exchanger.IsConfigured() {
		log.Warn("wechat app not configured", map[string]any{"production": cfg.IsProduction()})
	}

	sessions, err := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: router.NewRouter(router.Options{
			DB:           db,
			Logger:       log,
			Exchanger:    exchanger,
			Sessions:     sessions,
			UpcomingDays: cfg.Reminders.UpcomingDays,
			Location:     loc,
			MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"env":     cfg.Env.Name,
			"driver":  cfg.Storage.Driver,
			"devMode": cfg.Env.DevMode,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
