package router

import (
	"context"
	"database/sql"
	"net/http"

	mem "zoo-ops/internal/adapters/storage/memory"
	pg "zoo-ops/internal/adapters/storage/postgres"
	"zoo-ops/internal/adapters/storage/sqlite"
	"zoo-ops/internal/domain/animals"
	"zoo-ops/internal/domain/audit"
	"zoo-ops/internal/domain/enclosures"
	"zoo-ops/internal/domain/feeding"
	"zoo-ops/internal/domain/inventory"
	"zoo-ops/internal/domain/media"
	"zoo-ops/internal/domain/medical"
	"zoo-ops/internal/domain/notifications"
	"zoo-ops/internal/domain/species"
	"zoo-ops/internal/domain/stats"
	"zoo-ops/internal/domain/users"
	"zoo-ops/internal/middleware"
	"zoo-ops/internal/platform/blob"
	"zoo-ops/internal/platform/config"
	"zoo-ops/internal/platform/logger"
	"zoo-ops/internal/ports/auth"

	_ "zoo-ops/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Nil verifier enables dev mode (X-Debug-User-ID / X-Debug-Role headers).
	AuthVerifier auth.AuthVerifier

	// Optional explicit DB. Nil falls back to Config.DBDSN, then in-memory.
	DB *sql.DB

	Config config.Config
	Log    logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		animalsRepo       animals.Repository
		enclosuresRepo    enclosures.Repository
		inventoryRepo     inventory.Repository
		medicalRepo       medical.Repository
		feedingRepo       feeding.Repository
		notificationsRepo notifications.Repository
		speciesRepo       species.Repository
		usersRepo         users.Repository
	)

	db := opts.DB
	if db == nil && opts.Config.DBDSN != "" {
		opened, err := pg.Open(opts.Config.DBDSN)
		if err != nil {
			log.Error("postgres unavailable, falling back to in-memory storage", map[string]any{"err": err.Error()})
		} else {
			db = opened
		}
	}

	if db != nil {
		animalsRepo = pg.NewAnimalsRepo(db)
		enclosuresRepo = pg.NewEnclosuresRepo(db)
		inventoryRepo = pg.NewInventoryRepo(db)
		medicalRepo = pg.NewMedicalRepo(db)
		feedingRepo = pg.NewFeedingRepo(db)
		notificationsRepo = pg.NewNotificationsRepo(db)
		speciesRepo = pg.NewSpeciesRepo(db)
		usersRepo = pg.NewUsersRepo(db)
	} else {
		animalsRepo = mem.NewAnimalsRepo()
		enclosuresRepo = mem.NewEnclosuresRepo()
		inventoryRepo = mem.NewInventoryRepo()
		medicalRepo = mem.NewMedicalRepo()
		feedingRepo = mem.NewFeedingRepo()
		notificationsRepo = mem.NewNotificationsRepo()
		speciesRepo = mem.NewSpeciesRepo()
		usersRepo = mem.NewUsersRepo()
	}

	var auditRepo audit.Repository
	if path := opts.Config.AuditDBPath; path != "" {
		repo, err := sqlite.OpenAuditRepo(path)
		if err != nil {
			log.Error("sqlite audit trail unavailable, using in-memory trail", map[string]any{"err": err.Error(), "path": path})
			auditRepo = mem.NewAuditRepo()
		} else {
			auditRepo = repo
		}
	} else {
		auditRepo = mem.NewAuditRepo()
	}

	store := openBlobStore(opts.Config, log)

	speciesSvc := species.NewService(speciesRepo)
	animalsSvc := animals.NewService(animalsRepo, speciesSvc)
	enclosuresSvc := enclosures.NewService(enclosuresRepo, animalsRepo)
	inventorySvc := inventory.NewService(inventoryRepo)
	medicalSvc := medical.NewService(medicalRepo)
	feedingSvc := feeding.NewService(feedingRepo)
	notificationsSvc := notifications.NewService(notificationsRepo)
	usersSvc := users.NewService(usersRepo)
	auditSvc := audit.NewService(auditRepo, log)
	statsSvc := stats.NewService(animalsRepo, enclosuresRepo, inventoryRepo, medicalRepo, feedingRepo)

	animals.RegisterRoutes(r, animalsSvc, auditSvc)
	enclosures.RegisterRoutes(r, enclosuresSvc, auditSvc)
	inventory.RegisterRoutes(r, inventorySvc, auditSvc)
	medical.RegisterRoutes(r, medicalSvc, animalsSvc, auditSvc)
	feeding.RegisterRoutes(r, feedingSvc, animalsSvc, auditSvc)
	notifications.RegisterRoutes(r, notificationsSvc)
	species.RegisterRoutes(r, speciesSvc, auditSvc)
	users.RegisterRoutes(r, usersSvc, auditSvc)
	audit.RegisterRoutes(r, auditSvc)
	stats.RegisterRoutes(r, statsSvc)
	media.RegisterRoutes(r, store)

	return r
}

func openBlobStore(cfg config.Config, log logger.Logger) blob.Store {
	switch blob.Driver(cfg.BlobDriver) {
	case blob.DriverFilesystem:
		store, err := blob.NewFilesystem(cfg.BlobDir, cfg.MediaBaseURL)
		if err == nil {
			return store
		}
		log.Error("filesystem blob store unavailable, using memory", map[string]any{"err": err.Error()})
	case blob.DriverS3:
		store, err := blob.NewS3(context.Background(), blob.S3Config{
			Bucket: cfg.S3Bucket,
			Region: cfg.S3Region,
		})
		if err == nil {
			return store
		}
		log.Error("s3 blob store unavailable, using memory", map[string]any{"err": err.Error()})
	}
	return blob.NewMemory(cfg.MediaBaseURL)
}
