package main

import (
	"os"

	"github.com/akothari/campus-registry/internal/pkg/logger"
	"github.com/akothari/campus-registry/internal/server"
)

// @title Campus Registry API
// @version 0.1.0
// @description Demo REST API over Person, Address and Course resources backed by in-memory storage

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http

func main() {
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
}
