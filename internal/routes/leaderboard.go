package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tieubochet/stackstreak/internal/leaderboard"
)

// RegisterLeaderboardRoutes wires the ranking endpoint.
func RegisterLeaderboardRoutes(r fiber.Router, h *leaderboard.Handler) {
	r.Get("/leaderboard", h.Top)
}
