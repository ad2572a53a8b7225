package routes

import (
	"context"
	"log"
	"strconv"

	_ "salamatlab/docs" // This will be auto-generated
	"salamatlab/internal/adapter/http/handlers"
	"salamatlab/internal/adapter/http/middleware"
	"salamatlab/internal/adapter/persistence/kvstore"
	"salamatlab/internal/adapter/persistence/repository"
	"salamatlab/internal/config"
	"salamatlab/internal/infrastructure/catalog"
	"salamatlab/internal/infrastructure/submission"
	"salamatlab/internal/usecase"
	"salamatlab/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the use cases and ports the router serves.
type Dependencies struct {
	Store     interfaces.IKeyValueStore
	Catalog   usecase.ICatalogUseCase
	Intake    usecase.IIntakeUseCase
	Dashboard usecase.IDashboardUseCase
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	store, closeStore, err := kvstore.NewFromConfig(context.Background(), cfg.Store)
	if err != nil {
		log.Fatalf("Failed to connect to the %s store: %v", cfg.Store.Backend, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("[store] close failed err=%v", err)
		}
	}()

	router := NewRouter(cfg, BuildDependencies(cfg, store))

	if err := router.Run(":" + strconv.Itoa(cfg.HTTP.Port)); err != nil {
		log.Printf("Failed to startup the application: %v", err.Error())
	}
}

// BuildDependencies wires the use cases on top of a key-value store.
func BuildDependencies(cfg config.Config, store interfaces.IKeyValueStore) Dependencies {
	cat := catalog.NewStaticCatalog()
	ledger := repository.NewRequestLedgerRepository(store, cfg.Store.LedgerKeyPrefix)
	backend := submission.NewSimulatedBackend(cfg.Submission.Delay, cfg.Submission.Fail)
	submitter := usecase.NewRequestSubmitter(usecase.NewRequestComposer(), backend, ledger)

	return Dependencies{
		Store:     store,
		Catalog:   usecase.NewCatalogUseCase(cat),
		Intake:    usecase.NewIntakeUseCase(cat, submitter, usecase.NewProfilePrefiller(), cfg.Session.TTL),
		Dashboard: usecase.NewDashboardUseCase(ledger, cfg.Dashboard.IncludeSamples),
	}
}

func NewRouter(cfg config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	intakeHandler := handlers.NewIntakeHandler(deps.Intake)
	requestsHandler := handlers.NewRequestsHandler(deps.Dashboard)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1, deps.Store)
	addCatalogRoutes(v1, catalogHandler)

	// Per-user routes
	user := v1.Group("")
	user.Use(middleware.Identity(cfg.Auth.JWTSecret))
	addIntakeRoutes(user, intakeHandler)
	addRequestsRoutes(user, requestsHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
