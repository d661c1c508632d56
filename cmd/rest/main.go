package main

import (
	"context"
	"log"
	"time"

	"shopbot-be/internal/bootstrap"
	"shopbot-be/internal/config"
	"shopbot-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Start Background Services
	ctx := context.Background()
	log.Println("Background: Starting Catalog Consumer...")
	if err := container.ConsumerService.Start(ctx); err != nil {
		log.Panicf("Unable to start catalog consumer: %v", err)
	}
	container.RefreshService.StartPeriodic(ctx, time.Duration(cfg.Data.RefreshHours)*time.Hour)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
