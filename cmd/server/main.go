package main

import (
	"fmt"
	"log"
	"net/http"

	"wednest/internal/auth"
	"wednest/internal/config"
	"wednest/internal/database"
	"wednest/internal/handlers"
	"wednest/internal/repositories"
	"wednest/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Storage: R2 when configured, local disk otherwise. Local uploads are
	// served by the router under /uploads/.
	var storage services.StorageService
	uploadsDir := ""
	localBaseURL := fmt.Sprintf("http://%s:%s/uploads", cfg.Server.Host, cfg.Server.Port)
	if cfg.R2.AccessKeyID != "" && cfg.R2.SecretAccessKey != "" {
		r2, err := services.NewR2Service(cfg.R2)
		if err != nil {
			log.Printf("Failed to initialize R2 storage: %v, using local storage", err)
			uploadsDir = "./uploads"
			storage = services.NewFallbackStorageService(uploadsDir, localBaseURL)
		} else {
			storage = r2
			log.Println("R2 storage initialized")
		}
	} else {
		uploadsDir = "./uploads"
		storage = services.NewFallbackStorageService(uploadsDir, localBaseURL)
		log.Println("R2 not configured, using local storage")
	}

	coupleRepo := repositories.NewCoupleRepository(db.DB)
	vendorRepo := repositories.NewVendorRepository(db.DB)
	requestRepo := repositories.NewRequestRepository(db.DB)
	cartRepo := repositories.NewCartRepository(db.DB)

	tokens := auth.NewTokenService(cfg.JWT.Secret)
	images := services.NewImageService(storage)

	accountService := services.NewAccountService(coupleRepo, vendorRepo, tokens)
	profileService := services.NewProfileService(coupleRepo, vendorRepo, images)
	requestService := services.NewRequestService(requestRepo)
	cartService := services.NewCartService(cartRepo)

	router := handlers.NewRouter(
		handlers.NewAccountHandler(accountService, storage),
		handlers.NewCoupleHandler(profileService),
		handlers.NewVendorHandler(profileService),
		handlers.NewRequestHandler(requestService),
		handlers.NewCartHandler(cartService),
		tokens,
		uploadsDir,
	)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
