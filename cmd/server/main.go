package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"eventadmin/internal/auth"
	"eventadmin/internal/cache"
	"eventadmin/internal/config"
	"eventadmin/internal/db"
	"eventadmin/internal/geo"
	"eventadmin/internal/handler"
	"eventadmin/internal/model"
	"eventadmin/internal/repository"
	"eventadmin/internal/router"
	"eventadmin/internal/service"
	"eventadmin/internal/storage"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.Organizer{},
		&model.User{},
		&model.UserRole{},
		&model.Event{},
		&model.InfoScreen{},
		&model.Image{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	screenRepo := repository.NewInfoScreenRepository(gormDB)
	organizerRepo := repository.NewOrganizerRepository(gormDB)
	imageRepo := repository.NewImageRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)
	resolver := auth.NewResolver(jwtService, sessionStore)
	gate := auth.NewGate(resolver, userRepo)

	// External collaborators
	objectStore := storage.NewWebDAVStore(cfg.StorageURL, cfg.StorageUsername, cfg.StoragePassword)

	var geocoder geo.Geocoder
	if cfg.GoogleMapsAPIKey != "" {
		geocoder, err = geo.NewGoogleGeocoder(cfg.GoogleMapsAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("geocoder init")
		}
	} else {
		log.Warn().Msg("GCP_API_KEY not set, venue geocoding disabled")
	}

	// Services
	authService := service.NewAuthService(userRepo, jwtService, sessionStore)
	eventService := service.NewEventService(userRepo, eventRepo, geocoder)
	screenService := service.NewInfoScreenService(screenRepo)
	organizerService := service.NewOrganizerService(userRepo, organizerRepo)
	imageService := service.NewImageService(imageRepo, objectStore)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	screenHandler := handler.NewInfoScreenHandler(screenService)
	profileHandler := handler.NewProfileHandler(organizerService)
	imageHandler := handler.NewImageHandler(imageService)
	pageHandler := handler.NewPageHandler(authService, eventService, screenService)

	router.Register(
		e,
		cfg,
		gate,
		sessionStore,
		userRepo,
		authHandler,
		eventHandler,
		screenHandler,
		profileHandler,
		imageHandler,
		pageHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
