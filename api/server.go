package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"cpu-scheduler/config"
)

// NewApp wires handlers and middleware into a fiber app.
func NewApp(cfg *config.SchedulerConfig, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))

	handler := NewSchedulerHandlerImpl(cfg, log)
	SetupRoutes(app, handler, NewRateLimiter(cfg.RateLimit).Handler())
	return app
}
