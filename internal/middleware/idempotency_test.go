package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/tieubochet/stackstreak/internal/logging"
)

func setupIdempotentApp(t *testing.T) (*fiber.App, *int64, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := fiber.New()
	app.Use(Idempotency(cache, time.Minute, logging.Discard()))

	var handled int64
	app.Post("/users/:address/check-in", func(c *fiber.Ctx) error {
		atomic.AddInt64(&handled, 1)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reward": 12})
	})

	cleanup := func() {
		cache.Close()
		mr.Close()
	}
	return app, &handled, cleanup
}

func TestIdempotencyRequiresHeader(t *testing.T) {
	app, _, cleanup := setupIdempotentApp(t)
	defer cleanup()

	req := httptest.NewRequest(fiber.MethodPost, "/users/SP1/check-in", strings.NewReader("{}"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected %d got %d", fiber.StatusBadRequest, resp.StatusCode)
	}
}

func TestIdempotencyReplaysResponseWithoutReprocessing(t *testing.T) {
	app, handled, cleanup := setupIdempotentApp(t)
	defer cleanup()

	send := func() (int, string) {
		req := httptest.NewRequest(fiber.MethodPost, "/users/SP1/check-in", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(idempotencyKeyHeader, "checkin-SP1-20000")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode, string(body)
	}

	status1, body1 := send()
	status2, body2 := send()

	if status1 != fiber.StatusCreated || status2 != fiber.StatusCreated {
		t.Fatalf("unexpected statuses: %d, %d", status1, status2)
	}
	if body1 != body2 {
		t.Fatalf("replayed body differs: %q vs %q", body1, body2)
	}
	if got := atomic.LoadInt64(handled); got != 1 {
		t.Fatalf("handler ran %d times, want 1", got)
	}
}

func TestIdempotencySkipsSafeMethods(t *testing.T) {
	app, _, cleanup := setupIdempotentApp(t)
	defer cleanup()
	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// No Idempotency-Key header on a GET must pass through.
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/leaderboard", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
