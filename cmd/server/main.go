package main

import (
	"context"
	"log"
	"os"
	"time"

	"cropguru/internal/adapters/httpapi"
	"cropguru/internal/application"
	"cropguru/internal/config"
	"cropguru/internal/infrastructure/auth"
	"cropguru/internal/infrastructure/database"
	"cropguru/internal/infrastructure/gemini"
	"cropguru/internal/infrastructure/i18n"
	"cropguru/internal/infrastructure/openweather"
	"cropguru/internal/infrastructure/session"
)

const (
	sessionTTL = 24 * time.Hour
	deviceID   = "default"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	ctx := context.Background()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer pool.Close()

	userRepo := database.NewUserRepository(pool)
	schemeRepo := database.NewSchemeRepository(pool)
	prefRepo := database.NewPreferenceRepository(pool, deviceID)

	provider := auth.NewLocalProvider(userRepo, cfg.JWTSecret, sessionTTL)

	advisor, err := gemini.NewAdvisor(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("advisor error: %v", err)
	}
	weather := openweather.NewClient(cfg.OpenWeatherAPIKey)

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	localization := application.NewLocalizationService(ctx, translator, prefRepo, cfg.DefaultLocale)
	navigation := application.NewNavigationService(ctx, provider, session.NewStore())
	advisory := application.NewAdvisoryService(advisor, weather, weather, schemeRepo)

	server := httpapi.NewServer(cfg.HTTPAddr, navigation, localization, advisory, provider)
	if err := server.Start(); err != nil {
		log.Printf("server stopped with error: %v", err)
		os.Exit(1)
	}
}
