// Package server contains the HTTP handlers and route wiring for the board API.
package server

import (
	"context"
	"fmt"
	"time"

	"aiboard/internal/cache"
	"aiboard/internal/config"
	"aiboard/internal/database"
	"aiboard/internal/middleware"
	"aiboard/internal/models"
	"aiboard/internal/password"
	"aiboard/internal/repository"
	"aiboard/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config     *config.Config
	db         *gorm.DB
	redis      *redis.Client
	itemRepo   repository.ItemRepository
	postSvc    *service.PostService
	commentSvc *service.CommentService
}

// NewServer creates a server with live database and Redis connections.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return &Server{
		config:     cfg,
		db:         db,
		redis:      redisClient,
		itemRepo:   repository.NewItemRepository(db),
		postSvc:    service.NewPostService(postRepo, hasher),
		commentSvc: service.NewCommentService(commentRepo, postRepo, hasher),
	}, nil
}

// NewServerWithDeps wires a server from pre-built dependencies. Tests use it
// to swap in sqlite-backed repositories and cheap hashers.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, hasher password.Hasher) *Server {
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return &Server{
		config:     cfg,
		db:         db,
		redis:      redisClient,
		itemRepo:   repository.NewItemRepository(db),
		postSvc:    service.NewPostService(postRepo, hasher),
		commentSvc: service.NewCommentService(commentRepo, postRepo, hasher),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// After tracing so the trace ID local is populated before it lands in the context.
	app.Use(middleware.ContextMiddleware())

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	prom := fiberprometheus.New("aiboard")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3010"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)
	app.Get("/health/live", s.Liveness)
	app.Get("/health/ready", s.Readiness)

	api := app.Group("/api")

	items := api.Group("/items")
	items.Get("/", s.GetItems)
	items.Post("/", s.CreateItem)
	items.Get("/:id", s.GetItem)
	items.Delete("/:id", s.DeleteItem)

	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", middleware.RateLimit(s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	// Specific /:id/:resource routes go before the generic /:id routes.
	posts.Post("/:id/verify-password", s.VerifyPostPassword)
	posts.Get("/:id/comments", s.GetComments)
	posts.Post("/:id/comments", middleware.RateLimit(s.redis, 30, time.Minute, "create_comment"), s.CreateComment)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	comments := api.Group("/comments")
	comments.Put("/:id", s.UpdateComment)
	comments.Delete("/:id", s.DeleteComment)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "API is running",
	})
}

// Liveness handles GET /health/live. It only proves the process is serving.
func (s *Server) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

// Readiness handles GET /health/ready. It pings the backing stores and
// reports 503 when the database is unreachable. Redis is optional, so a
// missing cache degrades the report without failing it.
func (s *Server) Readiness(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": dbStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// NewApp builds the Fiber app with middleware and routes attached.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Board API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return models.RespondWithError(c, e.Code, models.NewValidationError(e.Message))
			}
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Start runs the server until the listener stops.
func (s *Server) Start() error {
	middleware.Logger.Info("server starting", "port", s.config.Port)
	return s.NewApp().Listen(":" + s.config.Port)
}

// Shutdown gracefully closes the backing connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}
