package main

import (
	"context"
	"log"
	"time"

	"promoservice/cmd"
	"promoservice/internal/data/repository"
	"promoservice/internal/migrations"
	"promoservice/internal/usecase"
	"promoservice/internal/wire"
	"promoservice/pkg/auth"
	"promoservice/pkg/database"
	"promoservice/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Migrations run over database/sql; the app itself uses the pgx pool.
	sqlDB, err := database.OpenSQL(config.Database)
	if err != nil {
		logger.Fatal("Failed to open database for migrations", zap.Error(err))
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrations.Up(migrateCtx, sqlDB); err != nil {
		cancel()
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	cancel()
	sqlDB.Close()

	logger.Info("Migrations applied")

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	tokens, err := auth.NewTokenManager(
		config.JWT.Secret,
		config.JWT.Algorithm,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
	)
	if err != nil {
		logger.Fatal("Failed to configure token manager", zap.Error(err))
	}

	service := usecase.NewService(repos, tokens, config, logger)

	if err := service.Auth.EnsureDefaultAdmin(context.Background()); err != nil {
		logger.Fatal("Failed to ensure bootstrap admin", zap.Error(err))
	}

	app := wire.Wiring(service, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
