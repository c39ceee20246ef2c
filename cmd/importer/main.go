package main

import (
	"context"
	"flag"
	"log"
	"time"

	"animal-shelter-dashboard/internal/adapters/outcomes/austin"
	"animal-shelter-dashboard/internal/adapters/storage/memory"
	"animal-shelter-dashboard/internal/adapters/storage/mongodb"
	"animal-shelter-dashboard/internal/adapters/storage/postgres"
	"animal-shelter-dashboard/internal/domain/animals"
	"animal-shelter-dashboard/internal/domain/audit"
	"animal-shelter-dashboard/internal/importer"
	"animal-shelter-dashboard/internal/platform/config"
	"animal-shelter-dashboard/internal/platform/httpclient"
	"animal-shelter-dashboard/internal/platform/logger"
)

func main() {
	var (
		csvPath  = flag.String("csv", "", "ruta de un CSV de outcomes a importar")
		fromAPI  = flag.Bool("from-api", false, "importa paginando el feed público de outcomes")
		limit    = flag.Int("limit", 0, "tope de registros a importar (0 = todos)")
		offset   = flag.Int("offset", 0, "offset inicial en el feed (solo -from-api)")
		pageSize = flag.Int("page-size", 500, "tamaño de página del feed (solo -from-api)")
		dryRun   = flag.Bool("dry-run", false, "parsea y valida sin escribir")
	)
	flag.Parse()

	if *csvPath == "" && !*fromAPI {
		log.Fatal("use -csv <file> o -from-api")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName + "-importer",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var (
		animalsRepo animals.Repository
		auditRepo   audit.Repository
	)

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := mongodb.Open(cfg.MongoURI)
		if err != nil {
			log.Fatalf("mongo: %v", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		db := client.Database(cfg.MongoDB)
		repo := mongodb.NewAnimalsRepo(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatalf("mongo indexes: %v", err)
		}
		animalsRepo = repo
		auditRepo = mongodb.NewAuditRepo(db)

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer db.Close()

		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("postgres schema: %v", err)
		}
		animalsRepo = postgres.NewAnimalsRepo(db)
		auditRepo = postgres.NewAuditRepo(db)

	default:
		// El store en memoria muere con el proceso; importar ahí solo
		// tiene sentido para validar (dry-run).
		if !*dryRun {
			log.Fatal("STORE_DRIVER=memory no persiste; usá mongo o postgres (o -dry-run)")
		}
		animalsRepo = memory.NewAnimalsRepo()
		auditRepo = memory.NewAuditRepo()
	}

	source := austin.NewClient(httpclient.New(30*time.Second), cfg.OutcomesAPIURL)

	run := importer.New(
		animals.NewService(animalsRepo),
		audit.NewService(auditRepo),
		source,
		appLog,
	)

	res, err := run.Run(ctx, importer.Options{
		CSVPath:  *csvPath,
		FromAPI:  *fromAPI,
		Limit:    *limit,
		Offset:   *offset,
		PageSize: *pageSize,
		DryRun:   *dryRun,
	})
	if err != nil {
		log.Fatalf("import: %v", err)
	}

	appLog.Info("done", map[string]any{
		"received": res.Received,
		"inserted": res.Inserted,
		"skipped":  res.Skipped,
		"invalid":  res.Invalid,
	})
}
