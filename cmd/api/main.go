package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodfinder/internal/adapter/api"
	"foodfinder/internal/adapter/api/handler"
	apimiddleware "foodfinder/internal/adapter/api/middleware"
	"foodfinder/internal/adapter/api/router"
	"foodfinder/internal/adapter/repository"
	"foodfinder/internal/domain/entity"
	"foodfinder/internal/infrastructure/geo"
	"foodfinder/internal/infrastructure/googlemaps"
	"foodfinder/internal/infrastructure/token"
	"foodfinder/internal/usecase"
	"foodfinder/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Admin{},
		&entity.Location{},
		&entity.Review{},
		&entity.RevokedToken{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.GoogleMapsAPIKey == "" {
		log.Fatalf("GOOGLE_MAPS_API_KEY is required")
	}

	placesClient, err := googlemaps.NewClient(cfg.GoogleMapsAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize places client: %v", err)
	}

	boundary := geo.AtlantaBoundary()

	tokenManager := token.NewManager(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessExpiry)*time.Second,
		time.Duration(cfg.JWTRefreshExpiry)*time.Second,
	)

	userRepo := repository.NewGormUserRepository(db)
	locationRepo := repository.NewGormLocationRepository(db)
	reviewRepo := repository.NewGormReviewRepository(db)
	favoriteRepo := repository.NewGormFavoriteRepository(db)
	tokenRepo := repository.NewGormTokenRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenRepo, tokenManager)
	searchUseCase := usecase.NewSearchUseCase(placesClient, boundary, locationRepo)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, locationRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, locationRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	adminUseCase := usecase.NewAdminUseCase(locationRepo)

	handler.Setup(authUseCase, searchUseCase, favoriteUseCase, reviewUseCase, userUseCase, adminUseCase)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(apimiddleware.GeneralRateLimit())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager, tokenRepo)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
