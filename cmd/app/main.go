package main

import (
	"balai/config"
	"balai/di"
	"balai/helper"
	"balai/shared/logger"

	"github.com/rs/zerolog/log"

	_ "balai/docs"
)

// @title Balai Property Management API
// @version 1.0
// @description Hotel property management service: guests, rooms, reservations, stays, billing, and reports.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	http := di.InitializeService()
	http.SetupAndServe()
}
