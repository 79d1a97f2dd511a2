package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/roomlane/concierge-backend/database"
	"github.com/roomlane/concierge-backend/internal/handlers"
	"github.com/roomlane/concierge-backend/internal/models"
	"github.com/roomlane/concierge-backend/internal/observability"
	"github.com/roomlane/concierge-backend/internal/routes"
	"github.com/roomlane/concierge-backend/internal/services"
	"github.com/roomlane/concierge-backend/internal/sessions"
	"github.com/roomlane/concierge-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(".env"); err != nil {
		_ = godotenv.Load("environments/.env.development")
	}

	log := observability.NewLogger(os.Getenv("APP_ENV"))

	// Booking store: Postgres by default, memory for local runs and tests.
	var (
		store       storage.Store
		db          *gorm.DB
		storageKind string
	)
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Warn().Msg("using in-memory booking storage (not for production)")
		store = storage.NewMemoryStore()
		storageKind = "memory"
	} else {
		if err := database.Connect(); err != nil {
			log.Fatal().Err(err).Msg("database connection failed")
		}
		if err := database.DB.AutoMigrate(&models.Booking{}); err != nil {
			log.Fatal().Err(err).Msg("database migration failed")
		}
		db = database.DB
		store = storage.NewDatabaseStore(db)
		storageKind = "postgres"
		log.Info().Msg("connected to postgres booking storage")
	}

	sessionTTL := envDuration("SESSION_TTL_SECONDS", time.Hour)

	// Session backend: process-local map by default, Redis when shared
	// state across instances is needed.
	var (
		backend     sessions.Store
		sessionKind string
		memSessions *sessions.MemoryStore
	)
	if os.Getenv("SESSION_BACKEND") == "redis" {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		backend = sessions.NewRedisStore(addr, os.Getenv("REDIS_PASSWORD"), 0, sessionTTL)
		sessionKind = "redis"
		log.Info().Str("addr", addr).Msg("using redis session backend")
	} else {
		memSessions = sessions.NewMemoryStore()
		memSessions.StartJanitor(5 * time.Minute)
		backend = memSessions
		sessionKind = "memory"
	}

	sessionManager := services.NewSessionManager(backend, sessionTTL, log)
	conversation := services.NewConversationService(store, log)
	metrics := observability.InitRegistry()

	app := fiber.New(fiber.Config{
		AppName: "Concierge Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	routes.SetupRoutes(app,
		handlers.NewChatHandler(sessionManager, conversation, log),
		handlers.NewBookingHandler(store),
		handlers.NewHealthHandler(db, storageKind, sessionKind),
		metrics,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info().Msg("shutting down")
		if memSessions != nil {
			memSessions.Stop()
		}
		_ = app.Shutdown()
	}()

	log.Info().
		Str("port", port).
		Str("storage", storageKind).
		Str("sessions", sessionKind).
		Msg("concierge backend starting")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
