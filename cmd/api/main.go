package main

import (
	"context"
	"log"

	"github.com/geekpro798/rivetly-backend/config"
	"github.com/geekpro798/rivetly-backend/internal/auth"
	"github.com/geekpro798/rivetly-backend/internal/bootstrap"
	"github.com/geekpro798/rivetly-backend/internal/storage/postgres"
	"github.com/geekpro798/rivetly-backend/internal/storage/r2"
	syncsvc "github.com/geekpro798/rivetly-backend/internal/syncgw/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	var objects syncsvc.ObjectStore
	if cfg.R2.Endpoint != "" {
		client, err := r2.NewClient(ctx, &cfg.R2)
		if err != nil {
			log.Fatalf("r2: %v", err)
		}
		objects = client
	} else {
		log.Println("R2_ENDPOINT not set, heavy-payload offload disabled")
	}

	authClient, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Printf("firebase disabled: %v", err)
		authClient = nil
	}

	deps := bootstrap.RouterDeps{
		ServiceName: "rivetly-backend",
		Version:     cfg.App.Version,
		DB:          db,
		Redis:       redisClient,
		AuthClient:  authClient,
		Objects:     objects,
	}

	router := bootstrap.BuildRouter(deps)
	bootstrap.StartStagedRetry(deps)

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
