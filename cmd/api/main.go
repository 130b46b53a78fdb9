package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"travelogues/internal/catalog"
	"travelogues/internal/config"
	"travelogues/internal/logging"
	"travelogues/internal/platform/sqlite"
	"travelogues/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("cannot load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(ctx, cfg.Database.Path, sqlite.Options{
		ReadOnly:     true,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("cannot open archive database")
	}
	defer db.Close()
	logging.Info().Str("path", cfg.Database.Path).Msg("database connection OK")

	catalogService := catalog.NewService(catalog.NewSQLiteRepo(db))
	pages, err := web.NewHandler(catalogService)
	if err != nil {
		logging.Fatal().Err(err).Msg("cannot load page templates")
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      NewRouter(ctx, cfg, catalogService, pages),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logging.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}
