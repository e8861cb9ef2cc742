package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"powerdesk.app/services"
)

// SetupRoutes wires the global middleware chain and every route group.
func SetupRoutes(app *fiber.App, reports services.IReportService) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	registerAPIRoutes(app, reports)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Catch-all, after every real route.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
}
