package streak

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tieubochet/stackstreak/internal/chain"
	"github.com/tieubochet/stackstreak/internal/engine"
	"github.com/tieubochet/stackstreak/internal/record"
)

// Handler exposes the streak endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a streak HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get returns the reconciled dashboard view for a principal.
func (h *Handler) Get(c *fiber.Ctx) error {
	address := c.Params("address")
	profile, err := h.service.Profile(c.UserContext(), address)
	if err != nil {
		if errors.Is(err, record.ErrStorage) {
			return fiber.NewError(http.StatusServiceUnavailable, "record store unavailable")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"record":           profile.Record,
		"can_check_in":     profile.CanCheckIn,
		"mint_allowed":     profile.MintAllowed,
		"next_check_in_at": profile.NextCheckInAt.UnixMilli(),
		"countdown":        profile.Countdown,
	})
}

// CheckIn performs the daily check-in.
func (h *Handler) CheckIn(c *fiber.Ctx) error {
	address := c.Params("address")
	res, err := h.service.CheckIn(c.UserContext(), address)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrAlreadyCheckedIn):
			return fiber.NewError(http.StatusConflict, "already checked in today")
		case errors.Is(err, ErrCheckInInFlight):
			return fiber.NewError(http.StatusConflict, "check-in already in progress")
		case errors.Is(err, chain.ErrCancelled):
			return fiber.NewError(http.StatusBadRequest, "transaction cancelled")
		case errors.Is(err, record.ErrStorage):
			return fiber.NewError(http.StatusServiceUnavailable, "record store unavailable")
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"record": res.Record,
		"reward": res.Reward,
	})
}

// Mint performs the daily collectible mint.
func (h *Handler) Mint(c *fiber.Ctx) error {
	address := c.Params("address")
	rec, err := h.service.Mint(c.UserContext(), address)
	if err != nil {
		switch {
		case errors.Is(err, ErrMintNotAllowed):
			return fiber.NewError(http.StatusConflict, "mint not allowed today")
		case errors.Is(err, chain.ErrCancelled):
			return fiber.NewError(http.StatusBadRequest, "transaction cancelled")
		case errors.Is(err, record.ErrStorage):
			return fiber.NewError(http.StatusServiceUnavailable, "record store unavailable")
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"record": rec})
}

// Heatmap returns the activity window projection.
func (h *Handler) Heatmap(c *fiber.Ctx) error {
	address := c.Params("address")
	days := c.QueryInt("days")
	cells, err := h.service.Heatmap(c.UserContext(), address, days)
	if err != nil {
		if errors.Is(err, record.ErrStorage) {
			return fiber.NewError(http.StatusServiceUnavailable, "record store unavailable")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"cells": cells})
}
