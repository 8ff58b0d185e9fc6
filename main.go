// main.go
package main

import (
	"log"

	"reviewflow/cmd"
	"reviewflow/internal/data/repository"
	"reviewflow/internal/wire"
	"reviewflow/pkg/database"
	"reviewflow/pkg/sentiment"
	"reviewflow/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.LogLevel)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("log_level", config.App.LogLevel),
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

	// Sentiment classifier adapter
	classifier := sentiment.NewModelClassifier(config.Model, logger)

	logger.Info("Sentiment classifier initialized",
		zap.String("model", config.Model.Name),
	)

	// Wire all dependencies
	app := wire.Wiring(repos, classifier, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
