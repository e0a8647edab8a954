package main

import (
	"os"

	"github.com/merdan/studentinfo/internal/pkg/logger"
	"github.com/merdan/studentinfo/internal/server"
)

// @title Student Info API
// @version 1.0
// @description Read API for student records: faculties, groups, scholarships, lessons, semesters, students and marks.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

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
