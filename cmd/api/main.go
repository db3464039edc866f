package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mertc/coursehub/internal/pkg/logger"
	"github.com/mertc/coursehub/internal/server"
)

// @title CourseHub API
// @version 1.0
// @description API for the CourseHub e-learning platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@coursehub.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A missing .env file is fine, environment variables still apply
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
