package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"renta-autos/internal/config"
	"renta-autos/internal/handler"
	"renta-autos/internal/middleware"
	"renta-autos/internal/repository"
	"renta-autos/internal/service"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg, log)
	if err != nil {
		log.WithError(err).Warn("Failed to connect to MinIO, photo upload will not work")
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg, log)
	handlers := handler.NewHandlers(services)

	// Prune expired sessions once an hour.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := repos.Session.DeleteExpired(context.Background()); err != nil {
				log.WithError(err).Warn("failed to prune expired sessions")
			}
		}
	}()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// Resolve real client IP and User-Agent before any handler runs.
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services.Auth)

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Post("/auth/logout", h.Auth.Logout)

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Post("/", middleware.RequireRole("owner"), h.User.Create)
	users.Get("/", middleware.RequireRole("owner"), h.User.GetAllUsers)
	users.Post("/assign-role", middleware.RequireRole("owner"), h.User.AssignRole)
	users.Delete("/:id", middleware.RequireRole("owner"), h.User.DeleteUser)

	cars := protected.Group("/cars")
	cars.Post("/", middleware.RequireRole("fleet-manager"), h.Car.Create)
	cars.Get("/", h.Car.List)
	cars.Get("/:carId", h.Car.Get)
	cars.Put("/:carId", middleware.RequireRole("fleet-manager"), h.Car.Update)
	cars.Patch("/:carId/availability", middleware.RequireRole("fleet-manager"), h.Car.SetAvailability)
	cars.Post("/:carId/photo", middleware.RequireRole("fleet-manager"), h.Car.UploadPhoto)
	cars.Delete("/:carId", middleware.RequireRole("fleet-manager"), h.Car.Delete)

	clients := protected.Group("/clients")
	clients.Post("/", h.Client.Create)
	clients.Get("/", h.Client.List)
	clients.Get("/:clientId", h.Client.Get)
	clients.Put("/:clientId", h.Client.Update)
	clients.Delete("/:clientId", middleware.RequireRole("fleet-manager"), h.Client.Delete)

	rentals := protected.Group("/rentals")
	rentals.Post("/", h.Rental.Create)
	rentals.Get("/", h.Rental.List)
	rentals.Get("/:rentalId", h.Rental.Get)
	rentals.Post("/:rentalId/cancel", h.Rental.Cancel)

	returns := protected.Group("/returns")
	returns.Post("/", h.Return.Intake)
	returns.Get("/", h.Return.List)
	returns.Get("/:returnId", h.Return.Get)

	repairs := protected.Group("/repairs")
	repairs.Post("/", middleware.RequireRole("fleet-manager"), h.Repair.Open)
	repairs.Get("/", h.Repair.List)
	repairs.Get("/:repairId", h.Repair.Get)
	repairs.Patch("/:repairId/complete", middleware.RequireRole("fleet-manager"), h.Repair.Complete)

	alerts := protected.Group("/alerts")
	alerts.Get("/", h.Alert.List)
	alerts.Patch("/:alertId/resolve", middleware.RequireRole("fleet-manager"), h.Alert.Resolve)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", h.Dashboard.GetStats)

	audit := protected.Group("/audit")
	audit.Get("/recent", middleware.RequireRole("owner"), h.Audit.GetRecentActivities)
}
