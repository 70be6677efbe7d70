package routes

import (
	Config "memoless-api/config"
	"memoless-api/controllers"
	"memoless-api/database"
	"memoless-api/middlewares"
	"memoless-api/services"
	"memoless-api/utility/cache"
	"memoless-api/utility/logger"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	httpSwagger "github.com/swaggo/http-swagger"
	validation "gopkg.in/go-playground/validator.v9"
)

var (
	once sync.Once
)

// Dependencies ... services shared by the routes and the background jobs
type Dependencies struct {
	Registration *services.RegistrationService
	Preflight    *services.PreflightService
	Assets       *services.AssetService
	Health       *services.HealthService
	Repository   database.IRegistrationRepository
}

// NewDependencies ... wires the collaborators; a nil db runs with persistence disabled
func NewDependencies(config Config.Data, db *gorm.DB, memoryCache *cache.Memory, throttle services.Throttle) Dependencies {
	var repository database.IRegistrationRepository
	var pinger services.Pinger
	if db != nil {
		DB := database.Database{Config: config, DB: db}
		repository = &database.RegistrationRepository{BaseRepository: database.BaseRepository{Database: DB}}
		pinger = &DB
	}

	chain := services.NewThornodeService(config, nil)
	assets := services.NewAssetService(memoryCache, config, chain)
	notifier := services.NewNotificationService(config, nil)
	wallet := services.NewHotWalletService(config, chain, notifier, throttle)

	return Dependencies{
		Registration: services.NewRegistrationService(config, chain, assets, services.NewSignerService(config, nil), repository, notifier, wallet),
		Preflight:    services.NewPreflightService(config, chain, assets, repository),
		Assets:       assets,
		Health:       services.NewHealthService(config, chain, wallet, pinger),
		Repository:   repository,
	}
}

// Register ... Adds router handle to general handler function
func Register(router *mux.Router, validator *validation.Validate, config Config.Data, dependencies Dependencies) {

	once.Do(func() {
		controller := controllers.NewController(config, validator)
		registrationController := controllers.NewRegistrationController(config, validator, dependencies.Registration, dependencies.Repository)
		preflightController := controllers.NewPreflightController(config, validator, dependencies.Preflight)
		assetController := controllers.NewAssetController(config, validator, dependencies.Assets)
		healthController := controllers.NewHealthController(config, validator, dependencies.Health)

		apiRouter := router.PathPrefix(config.BasePath).Subrouter()
		router.PathPrefix("/swagger").Handler(httpSwagger.WrapHandler)

		// General Routes
		apiRouter.HandleFunc("/ping", controller.Ping).Methods(http.MethodGet)
		apiRouter.HandleFunc("/health", middlewares.NewMiddleware(config, healthController.Health).LogAPIRequests().Build()).Methods(http.MethodGet)

		var requestTimeout = time.Duration(config.RequestTimeout) * time.Second
		registerLimiter := middlewares.NewLimiter(config.RegisterRateLimit, config.RegisterRateBurst)

		// Registration Routes
		apiRouter.HandleFunc("/register", middlewares.NewMiddleware(config, registrationController.Register).RateLimit(registerLimiter).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)
		apiRouter.HandleFunc("/register/{id}", middlewares.NewMiddleware(config, registrationController.GetRegistration).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
		apiRouter.HandleFunc("/preflight", middlewares.NewMiddleware(config, preflightController.Preflight).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)

		// Asset Routes
		apiRouter.HandleFunc("/assets", middlewares.NewMiddleware(config, assetController.FetchAssets).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
		apiRouter.HandleFunc("/assets/{asset}", middlewares.NewMiddleware(config, assetController.GetAsset).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
		apiRouter.HandleFunc("/track-transaction", middlewares.NewMiddleware(config, assetController.TrackTransaction).LogAPIRequests().Build()).Methods(http.MethodPost)
	})

	logger.Info("App routes registered successfully!")
}
