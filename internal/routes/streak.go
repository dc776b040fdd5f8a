package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tieubochet/stackstreak/internal/streak"
)

// RegisterStreakRoutes wires the per-principal streak endpoints.
func RegisterStreakRoutes(r fiber.Router, h *streak.Handler) {
	r.Get("/users/:address", h.Get)
	r.Post("/users/:address/check-in", h.CheckIn)
	r.Post("/users/:address/mint", h.Mint)
	r.Get("/users/:address/heatmap", h.Heatmap)
}
