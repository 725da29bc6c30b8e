package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"RentRate/internal/api/handlers"
	"RentRate/internal/api/middleware"
	"RentRate/internal/api/routes"
	"RentRate/internal/config"
	"RentRate/internal/core/photos"
	"RentRate/internal/core/properties"
	"RentRate/internal/core/reviews"
	"RentRate/internal/core/translations"
	"RentRate/internal/core/users"
	postgresRepo "RentRate/internal/db/postgres"
	"RentRate/internal/translate"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	// Repositories
	userRepo := postgresRepo.NewUserRepository(db)
	propertyRepo := postgresRepo.NewPropertyRepository(db)
	reviewRepo := postgresRepo.NewReviewRepository(db)
	photoRepo := postgresRepo.NewPhotoRepository(db)
	translationRepo := postgresRepo.NewTranslationRepository(db)

	// Services
	userService := users.NewUserService(userRepo, cfg.JWTSecret)
	propertyService := properties.NewPropertyService(propertyRepo)
	photoService, err := photos.NewPhotoService(photoRepo, cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to init photo storage:", err)
	}
	reviewService := reviews.NewReviewService(reviewRepo, propertyService, photoService)

	provider := translate.NewClient(cfg.LibreTranslateURL, cfg.LibreTranslateKey, cfg.TranslateTimeout)
	detector := translate.NewDetector()
	translationService := translations.NewTranslationService(translationRepo, provider, detector)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	// Routes
	routes.RegisterAuthRoutes(r, userService, authMiddleware)
	routes.RegisterPropertyRoutes(r, propertyService, reviewService)
	routes.RegisterReviewRoutes(r, reviewService, photoService, authMiddleware)
	routes.RegisterTranslationRoutes(r, translationService)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"message": "RentRate API is running",
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Uploaded review photos
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	fmt.Printf("RentRate API starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
