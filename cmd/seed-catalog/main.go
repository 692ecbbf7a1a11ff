package main

import (
	"context"
	"log"

	"github.com/nutridiary/backend/config"
	"github.com/nutridiary/backend/internal/database"
	"github.com/nutridiary/backend/internal/service"
)

// Seeds the food catalog without starting the API server. Safe to re-run;
// existing profiles are left untouched.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := service.NewCatalogService(db).Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed food catalog: %v", err)
	}
	log.Println("Food catalog seeded")
}
