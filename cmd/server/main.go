package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devfolio/internal/api"
	"devfolio/internal/app/service"
	"devfolio/internal/domain/repository"
	"devfolio/internal/platform/config"
	"devfolio/internal/platform/database"
	"devfolio/internal/platform/uploads"
)

func main() {
	// 1. Load Configuration
	config.Load()
	cfg := config.AppConfig
	fmt.Println("Configuration loaded.")

	ctx := context.Background()

	// 2. Initialize Storage
	var store *repository.Store
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		db, err := database.Connect(cfg.DBConnStr)
		if err != nil {
			log.Fatalf("Database: %v", err)
		}
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Migrations: %v", err)
		}
		rdb, err := database.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Redis: %v", err)
		}
		defer rdb.Close()
		store, err = repository.NewPostgresStore(ctx, db, rdb)
		if err != nil {
			log.Fatalf("Storage: %v", err)
		}
		fmt.Println("Postgres storage ready.")
	case config.StorageDriverMemory:
		store = repository.NewMemoryStore()
		fmt.Println("In-memory storage ready.")
	default:
		log.Fatalf("Unknown storage driver %q", cfg.StorageDriver)
	}

	// 3. Seed fixture content and the bootstrap admin
	if err := repository.SeedFixtures(ctx, store); err != nil {
		log.Fatalf("Seeding fixtures: %v", err)
	}
	if cfg.AdminPassword != "" {
		if err := repository.SeedAdmin(ctx, store, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminName, cfg.AdminEmail); err != nil {
			log.Fatalf("Seeding admin: %v", err)
		}
	} else {
		log.Println("ADMIN_PASSWORD not set, skipping admin bootstrap")
	}

	// 4. Initialize Upload Store
	uploadStore, err := uploads.New(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatalf("Uploads: %v", err)
	}

	// 5. Initialize Services
	authService := service.NewAuthService(store.Users, store.Sessions, cfg.SessionTTL)
	projectService := service.NewProjectService(store.Projects)
	blogPostService := service.NewBlogPostService(store.BlogPosts)
	timelineService := service.NewTimelineService(store.TimelineEntries)
	contactService := service.NewContactService(store.ContactMessages)
	profileService := service.NewProfileService(store.Profile)
	userService := service.NewUserService(store.Users)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(
		authService,
		projectService,
		blogPostService,
		timelineService,
		contactService,
		profileService,
		userService,
		uploadStore,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
