package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/regis-mugisha/expo-wallet-api/internal/metrics"
	"github.com/regis-mugisha/expo-wallet-api/internal/transactions"
)

type Router struct {
	Transactions *transactions.Handler

	// RateGate runs before every API route except health. Nil disables the
	// gate (handler unit tests).
	RateGate fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")
	if r.RateGate != nil {
		api.Use(r.RateGate)
	}

	// summary must register before /:userId so it is not captured as a user id.
	api.Get("/transactions/summary/:userId", r.Transactions.Summary)
	api.Get("/transactions/:userId", r.Transactions.List)
	api.Post("/transactions", r.Transactions.Create)
	api.Delete("/transactions/:id", r.Transactions.Delete)
}
