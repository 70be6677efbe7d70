package main

import (
	Config "memoless-api/config"
	"memoless-api/database"
	"memoless-api/middlewares"
	"memoless-api/migration"
	"memoless-api/routes"
	"memoless-api/services"
	"memoless-api/tasks"
	"memoless-api/utility/cache"
	"memoless-api/utility/logger"
	"memoless-api/utility/validator"

	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
)

func main() {
	config := Config.Data{}
	config.Init("")

	if config.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: config.SentryDSN, Environment: config.Network, ServerName: config.ServiceName}); err != nil {
			logger.Error("Sentry initialization failed : %s", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	var db *gorm.DB
	if config.PersistenceEnabled {
		Database := &database.Database{Config: config}
		if err := Database.LoadDBInstance(); err != nil {
			logger.Fatal("Database connection failed : %s", err)
		}
		defer Database.CloseDBInstance()
		if err := migration.RunDbMigrations(config); err != nil {
			logger.Fatal("Database migration failed : %s", err)
		}
		db = Database.DB
	} else {
		logger.Warning("Persistence is disabled, registrations will not be stored")
	}

	memoryCache := cache.Initialize(config.AssetCacheDuration, config.PurgeCacheInterval)
	throttle, err := services.NewRedisThrottle(config.RedisURL, services.NewMemoryThrottle(memoryCache))
	if err != nil {
		logger.Error("Redis throttle unavailable, using in-process throttle : %s", err)
	}

	dependencies := routes.NewDependencies(config, db, memoryCache, throttle)
	router := mux.NewRouter()
	routes.Register(router, validator.New(), config, dependencies)

	scheduler, err := tasks.ExecuteAssetRefreshCronJob(config, dependencies.Assets)
	if err != nil {
		logger.Error("Asset refresh job not scheduled : %s", err)
	} else {
		defer scheduler.Stop()
	}

	serviceAddress := ":" + config.AppPort

	middleware := middlewares.NewMiddleware(config, router.ServeHTTP).
		TagRequest().
		Build()

	logger.Info("Server started and listening on port %s", config.AppPort)
	log.Fatal(http.ListenAndServe(serviceAddress, middleware))
}
