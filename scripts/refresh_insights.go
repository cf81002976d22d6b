// Manually trigger the industry insight refresh.
//
// The refresh runs inside the main application as a periodic background
// task. This script is for manual runs, for example after a deploy or a
// bulk import of users with new industries.
//
// Usage: go run scripts/refresh_insights.go

package main

import (
	"career_coach_backend/internal/config"
	"career_coach_backend/internal/llm"
	"career_coach_backend/internal/repository"
	"career_coach_backend/internal/service"
	"career_coach_backend/pkg/database"
	"career_coach_backend/pkg/logger"
	"context"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	ctx := context.Background()
	completer, err := llm.NewCompleter(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize completion provider: %v", err)
	}

	insights := service.NewInsightService(
		repository.NewIndustryInsightRepository(db),
		repository.NewUserRepository(db),
		completer,
		rdb,
		cfg.Insights,
	)

	log.Println("Refreshing industry insights...")
	if err := insights.RefreshDue(ctx); err != nil {
		log.Fatalf("Refresh failed: %v", err)
	}
	log.Println("Done.")
}
