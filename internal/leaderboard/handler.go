package leaderboard

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the leaderboard endpoint.
type Handler struct {
	board        *Board
	defaultLimit int
}

// NewHandler builds a leaderboard HTTP handler serving defaultLimit entries
// when the caller does not ask for a specific page size.
func NewHandler(board *Board, defaultLimit int) *Handler {
	return &Handler{board: board, defaultLimit: defaultLimit}
}

// Top returns the ranked entries, truncated to the requested limit.
func (h *Handler) Top(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.defaultLimit)
	entries := h.board.TopN(limit)
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"entries": entries,
		"count":   len(entries),
	})
}
