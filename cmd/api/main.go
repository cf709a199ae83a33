package main

import (
	"os"

	"github.com/kaan/studenthub/internal/pkg/logger"
	"github.com/kaan/studenthub/internal/server"
)

// @title StudentHub API
// @version 1.0
// @description Student management API covering departments, courses, enrollments, attendance and fees

// @contact.name API Support
// @contact.email support@studenthub.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token, prefixed with "Bearer "

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
