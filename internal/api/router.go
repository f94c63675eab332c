package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/animalia/listing-system/internal/api/handler"
	"github.com/animalia/listing-system/internal/api/middleware"
	"github.com/animalia/listing-system/internal/core/service"
	mongodb "github.com/animalia/listing-system/internal/infrastructure/db/mongo"
	redisdb "github.com/animalia/listing-system/internal/infrastructure/db/redis"
	"github.com/animalia/listing-system/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered, plus the
// index dispatcher feeding the async search-index pipeline. The caller is
// responsible for starting the dispatcher.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, indexWorkers int, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("listing"))

	// --- Dependencies ---
	animalRepo := mongodb.NewAnimalRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	likeRepo := mongodb.NewLikeRepository(db)

	indexService := service.NewIndexService(redisdb.NewSearchIndex(rdb), log)
	dispatcher := queue.NewDispatcher(indexWorkers, indexService, log)

	animalService := service.NewAnimalService(animalRepo, likeRepo, dispatcher, log)
	metadataService := service.NewMetadataService(animalRepo, categoryRepo, redisdb.NewMetadataCache(rdb), log)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)

	animalHandler := handler.NewAnimalHandler(animalService)
	metadataHandler := handler.NewMetadataHandler(metadataService)
	authHandler := handler.NewAuthHandler(authService)

	requireAuth := middleware.Auth(jwtSecret)
	optionalAuth := middleware.OptionalAuth(jwtSecret)

	// --- Auth routes ---
	e.POST("/v0/user", authHandler.Register)
	e.POST("/v0/user/login", authHandler.Login)

	// --- Listing routes ---
	e.GET("/v0/metadata", metadataHandler.Get, requireAuth)
	e.POST("/v0/animal/search", animalHandler.Search, optionalAuth)
	e.GET("/v0/animal", animalHandler.Get, optionalAuth)
	e.POST("/v0/animal", animalHandler.Create, requireAuth)
	e.POST("/v0/like", animalHandler.Like, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
