package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/OblivionLi/salaries-management-system/internal/cache"
	"github.com/OblivionLi/salaries-management-system/internal/config"
	"github.com/OblivionLi/salaries-management-system/internal/database"
	"github.com/OblivionLi/salaries-management-system/internal/notifier"
	"github.com/OblivionLi/salaries-management-system/internal/repository"
	"github.com/OblivionLi/salaries-management-system/internal/router"
	"github.com/OblivionLi/salaries-management-system/internal/service"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	ctx := context.Background()

	// init redis: one client backs both the envelope cache and the change channel
	redisClient, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("init redis: %v", err)
	}

	repo := repository.New(db)
	envCache := cache.New(redisClient, cfg.Cache.Key, cfg.Cache.TTL())
	producer := notifier.NewProducer(redisClient, cfg.Notify.Topic)
	svc := service.New(repo, envCache, producer)

	if cfg.Notify.Consumer {
		consumer := notifier.NewConsumer(redisClient, cfg.Notify.Topic)
		go consumer.Run(ctx)
	}

	if cfg.Cache.WarmOnStart {
		_ = svc.RefreshCache(ctx)
	}

	// setup router
	r := router.SetupRouter(cfg, svc, repo)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
