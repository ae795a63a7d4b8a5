package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/emredok/studenthub/internal/pkg/logger"
	"github.com/emredok/studenthub/internal/server"
)

// @title StudentHub API
// @version 1.0
// @description REST API for student registration, login and grade retrieval

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token for private routes

func main() {
	// Local development convenience; missing .env is fine
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
