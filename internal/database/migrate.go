package database

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pageza/pantrychef/backend/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Models lists every persisted type, in dependency order.
var Models = []interface{}{
	&model.Recipe{},
	&model.UserIngredient{},
	&model.FavoriteRecipe{},
	&model.ShoppingListItem{},
}

// RunMigrations brings the schema up to date. SQLite uses gorm
// auto-migration; Postgres applies the embedded goose migrations.
func RunMigrations(db *gorm.DB, log zerolog.Logger) error {
	if db.Dialector.Name() == "sqlite" {
		log.Info().Msg("using gorm auto-migration for sqlite")
		return db.AutoMigrate(Models...)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return MigrateUp(sqlDB)
}

func configureGoose() error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}
