package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/database"
	"github.com/pageza/pantrychef/backend/internal/logger"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	version := flag.Bool("version", false, "Print the current schema version and exit")
	flag.Parse()

	log := logger.New(logger.Options{ServiceName: "pantrychef-migrate", Format: "console", Output: os.Stderr})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.OpenSQL(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	switch {
	case *version:
		v, err := database.MigrationVersion(db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read schema version")
		}
		fmt.Println(v)
	case *rollback:
		if err := database.MigrateDown(db); err != nil {
			log.Fatal().Err(err).Msg("rollback failed")
		}
		log.Info().Msg("rolled back last migration")
	default:
		if err := database.MigrateUp(db); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
		log.Info().Msg("all migrations applied")
	}
}
