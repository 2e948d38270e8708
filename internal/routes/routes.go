// Package routes builds the fiber application: global middleware first, then
// the API routes from the handlers package.
package routes

import (
	"strings"
	"time"

	"bankagent/internal/config"
	"bankagent/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Config holds the HTTP surface settings.
type Config struct {
	AllowOrigins []string
	LoginLimit   int
	LoginWindow  time.Duration
}

// ConfigFromEnv reads the HTTP settings from the environment.
func ConfigFromEnv() Config {
	return Config{
		AllowOrigins: config.GetListEnv("CORS_ORIGINS", []string{"http://localhost:5173"}),
		LoginLimit:   config.GetIntEnv("LOGIN_RATE_LIMIT", 5),
		LoginWindow:  config.GetDurationEnv("LOGIN_RATE_WINDOW", time.Minute),
	}
}

// NewApp returns a fiber app with every route registered.
func NewApp(cfg Config, deps handlers.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "bankagent",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())

	// fiber refuses credentials with a wildcard origin.
	origins := strings.Join(cfg.AllowOrigins, ",")
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,OPTIONS",
		AllowCredentials: origins != "" && !strings.Contains(origins, "*"),
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	if cfg.LoginLimit > 0 {
		app.Use("/api/login", limiter.New(limiter.Config{
			Max:        cfg.LoginLimit,
			Expiration: cfg.LoginWindow,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	handlers.SetupRoutes(app, deps)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
