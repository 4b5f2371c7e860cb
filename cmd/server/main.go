package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"task-tracker-api/internal/auth"
	"task-tracker-api/internal/config"
	"task-tracker-api/internal/handlers"
	"task-tracker-api/internal/realtime"
	"task-tracker-api/internal/routes"
	"task-tracker-api/internal/service"
	"task-tracker-api/internal/store"
	"task-tracker-api/internal/store/memory"
	"task-tracker-api/internal/store/sqlstore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// The store implementation is selected once here, never per call site.
	var st store.Store
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		st, err = sqlstore.Open(cfg.Storage.DSN)
		if err != nil {
			log.Fatal("Failed to open database: ", err)
		}
		log.Printf("Using sqlite storage at %s", cfg.Storage.DSN)
	default:
		st = memory.New(memory.DefaultSeed())
		log.Print("Using seeded in-memory storage")
	}

	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.TokenTTL)
	hub := realtime.New()
	svc := service.New(st, hub, tokens, service.Options{StatsTTL: cfg.Dashboard.StatsTTL})

	h := handlers.New(svc, hub)
	engine := routes.SetupRoutes(h, tokens)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: engine,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Print("Server shutdown: ", err)
	}
}
