package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"chat-audit/config"
	"chat-audit/handlers"
	"chat-audit/middleware"
	"chat-audit/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()
	handlers.SetMaxTranscriptBytes(cfg.MaxTranscriptBytes)

	// Initialize MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := services.InitMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer db.Disconnect(ctx)

	// Initialize services
	services.InitServices(db, cfg.DatabaseName)

	// Bootstrap the admin account when configured
	if err := services.EnsureAdminUser(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("Failed to ensure admin user", "error", err)
		// Continue anyway - login still works for existing users
	}

	// Start background session cleanup
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	services.StartSessionCleanup(cleanupCtx)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxTranscriptBytes + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())

	// CORS configuration - Allow frontend development server
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173, http://localhost:3000, http://localhost:5174",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length, Content-Type",
		MaxAge:           86400, // 24 hours
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	auth := app.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Post("/logout", handlers.Logout)
	auth.Get("/me", handlers.GetCurrentUser)
	auth.Get("/check", handlers.CheckSession)

	// Public analysis API
	api := app.Group("/api")
	api.Post("/analyze", handlers.Analyze)
	api.Get("/analyses/:analysisID", handlers.GetAnalysis)

	// Dashboard API endpoints (protected)
	dashboard := app.Group("/api/dashboard", middleware.RequireAuth)
	dashboard.Get("/analyses", handlers.ListAnalyses)
	dashboard.Get("/stats", handlers.GetAnalysisStats)
	dashboard.Delete("/analyses/:analysisID", middleware.RequireAdmin, handlers.DeleteAnalysis)

	// WebSocket endpoint (requires authentication)
	dashboard.Get("/ws", handlers.WebSocketUpgrade, websocket.New(handlers.HandleWebSocket))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "chat-audit",
		})
	})

	// Start server
	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
