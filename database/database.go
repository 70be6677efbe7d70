package database

import (
	"context"
	"fmt"
	"memoless-api/config"
	"memoless-api/utility/logger"
	"sync"
	"time"

	"github.com/jinzhu/gorm"

	_ "github.com/jinzhu/gorm/dialects/mysql"
)

// Database : database struct
type Database struct {
	Config config.Data
	DB     *gorm.DB
}

var (
	once sync.Once
)

// ConnectionString ... mysql DSN built from the config
func ConnectionString(config config.Data) string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", config.DBUser, config.DBPassword, config.DBHost, config.DBName)
}

// LoadDBInstance... for connection to sql server
func (database *Database) LoadDBInstance() error {
	var loadErr error
	once.Do(func() {
		db, err := gorm.Open("mysql", ConnectionString(database.Config))
		if err != nil {
			loadErr = err
			return
		}

		db.DB().SetMaxIdleConns(database.Config.MaxIdleConns)
		db.DB().SetMaxOpenConns(database.Config.MaxOpenConns)
		db.DB().SetConnMaxLifetime(time.Second * time.Duration(database.Config.ConnMaxLifetime))
		db.LogMode(false)
		database.DB = db
		logger.Info("Database connection successful!")
	})
	return loadErr
}

// Ping ... reports whether the database answers within ctx
func (database *Database) Ping(ctx context.Context) error {
	if database.DB == nil {
		return fmt.Errorf("database is not connected")
	}
	if err := database.DB.DB().PingContext(ctx); err != nil {
		logger.Error("Database connection closed. Error > %s", err.Error())
		return err
	}
	return nil
}

// CloseDBInstance ...
func (database *Database) CloseDBInstance() {
	if database.DB != nil {
		database.DB.Close()
	}
}
