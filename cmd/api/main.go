package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codermarch/taskboard/internal/config"
	"github.com/codermarch/taskboard/internal/db"
	httpx "github.com/codermarch/taskboard/internal/http"
	"github.com/codermarch/taskboard/internal/observability"
	"github.com/codermarch/taskboard/internal/store"
	filestore "github.com/codermarch/taskboard/internal/store/file"
	pgstore "github.com/codermarch/taskboard/internal/store/postgres"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// .env for local development; ignored when absent
	_ = godotenv.Load()

	cfg, err := config.Load()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := observability.NewLogger(cfg.Env)

	// tracing is optional; without a collector the endpoint stays empty
	if cfg.OTLPEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(context.Background(), "taskboard", cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}

		defer func() {
			ctx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()
			_ = shutdownTracer(ctx)
		}()
	}

	prom := observability.NewProm(prometheus.DefaultRegisterer)

	// snapshot store: postgres when DB_URL is set, the JSON file otherwise

	var (
		backing store.Store
		ping    func() error
	)

	if cfg.DBURL != "" {
		pool, err := db.NewPool(cfg.DBURL)

		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}

		defer pool.Close()

		pg := pgstore.New(pool)

		ctx, cancel := config.WithTimeout(5 * time.Second)
		err = pg.Migrate(ctx)
		cancel()

		if err != nil {
			log.Error("db migrate failed", "err", err)
			os.Exit(1)
		}

		backing = pg

		ping = func() error {
			ctx, cancel := config.WithTimeout(1 * time.Second)
			defer cancel()

			return pool.Ping(ctx)
		}
	} else {
		backing = filestore.New(cfg.DataFile)
	}

	st := store.NewManager(backing, prom)

	router := httpx.NewRouter(log, st, cfg, prom, ping)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	ctx, cancel := config.WithTimeout(10 * time.Second)
	defer cancel()

	err = srv.Shutdown(ctx)

	if err != nil {
		log.Error("graceful shutdown failed", "err", err)
		return
	}

	log.Info("shutdown complete")
}
