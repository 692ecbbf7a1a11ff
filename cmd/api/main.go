package main

import (
	"context"
	"log"

	"github.com/nutridiary/backend/config"
	"github.com/nutridiary/backend/internal/api"
	"github.com/nutridiary/backend/internal/database"
	"github.com/nutridiary/backend/internal/router"
	"github.com/nutridiary/backend/internal/server"
	"github.com/nutridiary/backend/internal/service"
	"github.com/nutridiary/backend/internal/storage"
)

func newSnapshotStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.SnapshotBackend {
	case config.SnapshotRedis:
		client, err := database.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client, "nutridiary"), nil
	case config.SnapshotMemory:
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	catalog := service.NewCatalogService(db)
	if err := catalog.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed food catalog: %v", err)
	}

	store, err := newSnapshotStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}

	logs, err := service.NewLogService(ctx, store, cfg.AllowPastAdd)
	if err != nil {
		log.Fatalf("Failed to load food log: %v", err)
	}
	weights := service.NewWeightService(ctx, store)
	auth := service.NewAuthService(db, cfg.JWTSecret)

	// Image uploads need S3 credentials; the endpoint answers 503 without them.
	var images *service.ImageService
	if s3cfg, err := config.NewS3Config(ctx); err != nil {
		log.Printf("S3 unavailable, image uploads disabled: %v", err)
	} else {
		images = service.NewImageService(s3cfg)
	}

	handlers := router.Handlers{
		Log:     api.NewLogHandler(logs, catalog, cfg.Targets),
		Catalog: api.NewCatalogHandler(catalog),
		Weight:  api.NewWeightHandler(weights),
		Auth:    api.NewAuthHandler(auth),
		Image:   api.NewImageHandler(images),
	}

	engine := router.SetupRouter(handlers, auth, cfg.CORSOrigins)

	srv := server.New(engine)
	log.Println("Starting server...")
	if err := srv.Start(cfg.ServerHost, cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
