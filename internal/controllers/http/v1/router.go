package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-lookup/docs"
	"weather-lookup/internal/session"
	"weather-lookup/pkg/logger"
)

type routes struct {
	sessions *session.Store
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	sessions *session.Store,
	l *logger.Logger,
) {
	r := &routes{
		sessions: sessions,
		l:        l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(docs.SwaggerJSON)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// Screen
	app.Get("/", r.handlePage)
	app.Post("/search", r.handleSearch)
	app.Get("/panel.png", r.handlePanel)

	// API routes
	api := app.Group("/api/v1/lookup")
	api.Get("/", r.handleGetLookup)
	api.Put("/query", r.handleSetQuery)
	api.Post("/submit", r.handleSubmit)
}
