package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/iamvkosarev/expert-chat/internal/api/http/handlers"
)

func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, consult *handlers.ConsultHandler, health *handlers.HealthHandler) {
	app.Get("/", consult.Page)
	app.Post("/", consult.Submit)

	v1 := app.Group("/api").Group("/v1")
	v1.Get("/health", health.Health)
	v1.Get("/personas", consult.Personas)
	v1.Post("/consult", consult.Consult)
}
