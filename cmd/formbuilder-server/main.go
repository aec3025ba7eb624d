package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-formbuilder/internal/log"
	"github.com/goliatone/go-formbuilder/internal/server"
	"github.com/goliatone/go-formbuilder/pkg/blueprint"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
)

func main() {
	if err := server.LoadEnv(); err != nil {
		log.Fatalf("main.env: %v", err)
	}
	cfg, err := server.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("main.config: %v", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	opts := []orchestrator.Option{}
	if cfg.Blueprints != "" {
		store, err := blueprint.LoadFS(os.DirFS(cfg.Blueprints))
		if err != nil {
			log.Fatalf("main.blueprints: %v", err)
		}
		opts = append(opts, orchestrator.WithBlueprints(store))
	}

	srv, err := server.New(server.WithOrchestrator(orchestrator.New(opts...)))
	if err != nil {
		log.Fatalf("main.server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("main.server: %v", err)
	}
}

func run(ctx context.Context, cfg server.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", cfg.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Infof("Shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
