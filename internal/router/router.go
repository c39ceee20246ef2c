package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	mem "animal-shelter-dashboard/internal/adapters/storage/memory"
	mdb "animal-shelter-dashboard/internal/adapters/storage/mongodb"
	pg "animal-shelter-dashboard/internal/adapters/storage/postgres"
	"animal-shelter-dashboard/internal/dashboard"
	"animal-shelter-dashboard/internal/domain/animals"
	"animal-shelter-dashboard/internal/domain/audit"
	"animal-shelter-dashboard/internal/middleware"
	"animal-shelter-dashboard/internal/platform/config"
	"animal-shelter-dashboard/internal/platform/logger"
)

type Options struct {
	Log logger.Logger
	Cfg config.Config

	// Handles ya abiertos según el driver; el router arma los repos.
	DB    *sql.DB
	Mongo *mongo.Database

	// Repos explícitos pisan el driver (para tests).
	AnimalsRepo animals.Repository
	AuditRepo   audit.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	animalsRepo := opts.AnimalsRepo
	auditRepo := opts.AuditRepo
	if animalsRepo == nil || auditRepo == nil {
		switch {
		case opts.Cfg.StoreDriver == config.DriverMongo && opts.Mongo != nil:
			animalsRepo = mdb.NewAnimalsRepo(opts.Mongo)
			auditRepo = mdb.NewAuditRepo(opts.Mongo)
		case opts.Cfg.StoreDriver == config.DriverPostgres && opts.DB != nil:
			animalsRepo = pg.NewAnimalsRepo(opts.DB)
			auditRepo = pg.NewAuditRepo(opts.DB)
		default:
			animalsRepo = mem.NewAnimalsRepo()
			auditRepo = mem.NewAuditRepo()
		}
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalsRepo)
	auditSvc := audit.NewService(auditRepo)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc, auditSvc)
	audit.RegisterRoutes(r, auditSvc)
	dashboard.RegisterRoutes(r)

	// Swagger UI (la definición OpenAPI vive en docs/, registrada vía blank import)
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/dashboard", http.StatusTemporaryRedirect)
	})

	return r
}
