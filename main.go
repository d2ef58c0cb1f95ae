package main

import (
	"log"

	"news-cms/cmd"
	"news-cms/internal/data/repository"
	"news-cms/internal/wire"
	"news-cms/pkg/database"
	"news-cms/pkg/mailer"
	"news-cms/pkg/media"
	"news-cms/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, !config.Production())
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("env", config.App.Env),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outbound clients
	mail, err := mailer.NewSMTPMailer(config.Email, logger)
	if err != nil {
		logger.Fatal("Failed to init mailer", zap.Error(err))
	}
	uploader := media.NewStoreClient(config.Media, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, mail, uploader, logger)

	// Start server
	cmd.APIServer(app.Router, config.App.Port, logger)
}
