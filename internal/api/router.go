package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techconnect/techconnect-api/internal/api/handler"
	"github.com/techconnect/techconnect-api/internal/api/middleware"
	"github.com/techconnect/techconnect-api/internal/core/domain"
	"github.com/techconnect/techconnect-api/internal/core/service"
	mongodb "github.com/techconnect/techconnect-api/internal/infrastructure/db/mongo"
	redisdb "github.com/techconnect/techconnect-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("techconnect"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	newsRepo := mongodb.NewNewsRepository(db)

	// Display-name lookups go through the Redis cache first.
	directory := redisdb.NewNameCache(rdb, userRepo, log)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	projectService := service.NewProjectService(projectRepo, directory, log)
	newsService := service.NewNewsService(newsRepo, directory, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	newsHandler := handler.NewNewsHandler(newsService)

	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Project routes ---
	e.GET("/api/projects", projectHandler.List)
	e.POST("/api/projects", projectHandler.Create, auth)
	e.GET("/api/projects/user/:userId", projectHandler.ListByAuthor, auth)
	e.GET("/api/projects/:id", projectHandler.Get)
	e.PUT("/api/projects/:id", projectHandler.Update, auth)
	e.DELETE("/api/projects/:id", projectHandler.Delete, auth)
	e.POST("/api/projects/:id/comments", projectHandler.AddComment, auth)
	e.PUT("/api/projects/:id/like", projectHandler.ToggleLike, auth)

	// --- News routes ---
	// Only creation is gated by RBAC here; update/delete check the role in
	// the service so a missing article still reports 404 first.
	e.GET("/api/news", newsHandler.List)
	e.GET("/api/news/saved", newsHandler.ListSaved, auth)
	e.POST("/api/news", newsHandler.Create, auth, adminOnly)
	e.GET("/api/news/:id", newsHandler.Get)
	e.PUT("/api/news/:id", newsHandler.Update, auth)
	e.DELETE("/api/news/:id", newsHandler.Delete, auth)
	e.PUT("/api/news/:id/like", newsHandler.ToggleLike, auth)
	e.PUT("/api/news/:id/save", newsHandler.ToggleSave, auth)

	// --- Ops endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
