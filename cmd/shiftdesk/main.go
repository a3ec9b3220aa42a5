package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shiftdesk/backend/internal/application/services"
	"github.com/shiftdesk/backend/internal/bootstrap"
	"github.com/shiftdesk/backend/internal/domain/schema"
	"github.com/shiftdesk/backend/internal/infrastructure/database"
	"github.com/shiftdesk/backend/internal/infrastructure/persistence"
)

func main() {
	// .env is optional; SHIFTDESK_DB may come straight from the environment.
	_ = godotenv.Load()

	path := os.Getenv("SHIFTDESK_DB")
	if path == "" {
		path = "shiftdesk.db"
	}

	provider := database.NewProvider(path)
	if err := bootstrap.EnsureSchema(provider); err != nil {
		log.Fatalf("Failed to prepare database %s: %v", path, err)
	}
	log.Printf("✅ Database ready: %s", path)

	cfg := schema.ShiftSchedule()
	schemas := persistence.NewSchemaRepository(provider)
	records := persistence.NewRecordRepository(provider)
	identity := services.NewIdentityService(cfg, schemas, records)
	descriptors := services.NewDescriptorService(cfg, schemas, records, identity)

	ctx := context.Background()
	tables, err := schemas.GetVisibleTables(ctx)
	if err != nil {
		log.Fatalf("Failed to list tables: %v", err)
	}

	for _, table := range tables {
		shapes, warnings, err := descriptors.BuildShapes(ctx, table, nil)
		if err != nil {
			log.Printf("⚠️  %s: %v", table, err)
			continue
		}
		for _, w := range warnings {
			log.Printf("⚠️  %s: %v", table, w)
		}

		nextID, err := identity.GetNextID(ctx, table)
		if err != nil {
			log.Printf("⚠️  %s: %v", table, err)
			continue
		}

		log.Printf("📋 %s (next id %d)", table, nextID)
		for _, shape := range shapes {
			marker := ""
			if shape.Required {
				marker = "*"
			}
			log.Printf("   %s%s: %s", shape.Column, marker, shape.Kind)
		}
	}
}
