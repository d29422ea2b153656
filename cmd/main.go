package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Vasu1712/hackmate-backend/internal/api"
	"github.com/Vasu1712/hackmate-backend/internal/config"
	"github.com/Vasu1712/hackmate-backend/internal/logger"
	"github.com/Vasu1712/hackmate-backend/internal/notify"
	"github.com/Vasu1712/hackmate-backend/internal/session"
	"github.com/Vasu1712/hackmate-backend/internal/storage/memory"
	"github.com/Vasu1712/hackmate-backend/internal/ws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dmStore := memory.NewDMStore(memory.DemoSeed(), log)
	hub := ws.NewHub(log)
	go hub.Run(ctx)

	notifiers := notify.Multi{hub}
	if cfg.ValkeyAddr != "" {
		publisher, err := notify.NewValkeyPublisher(cfg.ValkeyAddr)
		if err != nil {
			return err
		}
		defer publisher.Close()
		notifiers = append(notifiers, publisher)
		log.Info().Str("addr", cfg.ValkeyAddr).Msg("publishing message events to valkey")
	}

	handler := api.NewRouter(api.Deps{
		Config:   cfg,
		Store:    dmStore,
		Sessions: session.NewManager(cfg.SessionSecret, cfg.SessionTTL),
		Hub:      hub,
		Notifier: notifiers,
		Log:      log,
	})
	server := &http.Server{Addr: cfg.Addr(), Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func loadEnvFiles() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
