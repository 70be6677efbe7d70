package migration

import (
	"context"
	"database/sql"
	Config "memoless-api/config"
	"memoless-api/database"
	"memoless-api/utility/logger"

	"github.com/pressly/goose"
)

// RunDbMigrations ... applies every registered migration up to the latest version
func RunDbMigrations(config Config.Data) error {
	db, err := sql.Open("mysql", database.ConnectionString(config))
	if err != nil {
		logger.Error("Error creating db connection for migration: %s", err.Error())
		return err
	}
	defer db.Close()
	if err = db.PingContext(context.Background()); err != nil {
		logger.Error("Database connection interrupted : %s", err.Error())
		return err
	}

	if err = goose.SetDialect("mysql"); err != nil {
		return err
	}
	if err = goose.Up(db, config.DBMigrationPath); err != nil {
		logger.Error("Error with DB Migration : %s", err.Error())
		return err
	}
	return nil
}
