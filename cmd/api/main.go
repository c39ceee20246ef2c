package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "animal-shelter-dashboard/docs"
	"animal-shelter-dashboard/internal/adapters/storage/mongodb"
	"animal-shelter-dashboard/internal/adapters/storage/postgres"
	"animal-shelter-dashboard/internal/platform/config"
	"animal-shelter-dashboard/internal/platform/logger"
	"animal-shelter-dashboard/internal/router"
)

// @title Animal Shelter Dashboard API
// @version 1.0
// @description API de outcomes del refugio: CRUD de animales, perfiles de rescate, historial de actividad y datos para el dashboard.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{Log: appLog, Cfg: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := mongodb.Open(cfg.MongoURI)
		if err != nil {
			log.Fatalf("mongo: %v", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		db := client.Database(cfg.MongoDB)
		if err := mongodb.NewAnimalsRepo(db).EnsureIndexes(ctx); err != nil {
			log.Fatalf("mongo indexes: %v", err)
		}
		opts.Mongo = db

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer db.Close()

		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("postgres schema: %v", err)
		}
		opts.DB = db
	}

	r := router.NewRouter(opts)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{
		"addr":   srv.Addr,
		"driver": cfg.StoreDriver,
	})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
