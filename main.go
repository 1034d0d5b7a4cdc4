package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/budgetflow/backend/internal/backup"
	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			BudgetFlow
//	@description	The backend for BudgetFlow, a personal finance tracker that projects recurring and planned cash flow into the future.

func main() {
	// Load a .env file if one exists, environment variables that are
	// already set take precedence
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate all models
	err = models.Connect("data/gorm.db")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Periodic encrypted backups are only scheduled when both the
	// schedule and the secret are configured
	schedule, scheduleOk := os.LookupEnv("BACKUP_SCHEDULE")
	secret, secretOk := os.LookupEnv("BACKUP_SECRET")
	if scheduleOk && secretOk {
		scheduler := backup.NewScheduler(filepath.Join(dataDir, "backups"), secret, router.Version())
		if err := scheduler.Start(schedule); err != nil {
			log.Fatal().Msg(err.Error())
		}
		defer scheduler.Stop()
	} else if scheduleOk || secretOk {
		log.Warn().Msg("Backups are not scheduled, both BACKUP_SCHEDULE and BACKUP_SECRET must be set")
	}

	r, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
