package streak

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/tieubochet/stackstreak/internal/chain"
	"github.com/tieubochet/stackstreak/internal/leaderboard"
	"github.com/tieubochet/stackstreak/internal/logging"
	"github.com/tieubochet/stackstreak/internal/record"
)

func setupHandlerApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := NewService(record.NewMemoryStore(), chain.NewStaticClient(),
		chain.NewLoggerSubmitter(logging.Discard()), leaderboard.New(nil), logging.Discard())
	svc.now = fixedClock(20_000)
	h := NewHandler(svc)

	app := fiber.New()
	app.Get("/users/:address", h.Get)
	app.Post("/users/:address/check-in", h.CheckIn)
	app.Post("/users/:address/mint", h.Mint)
	app.Get("/users/:address/heatmap", h.Heatmap)
	return app
}

func decodeBody(t *testing.T, resp io.Reader) map[string]any {
	t.Helper()
	payload, err := io.ReadAll(resp)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode body %q: %v", payload, err)
	}
	return decoded
}

func TestHandlerCheckInLifecycle(t *testing.T) {
	app := setupHandlerApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/users/SP9", nil))
	if err != nil {
		t.Fatalf("profile request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	profile := decodeBody(t, resp.Body)
	resp.Body.Close()
	if profile["can_check_in"] != true {
		t.Fatalf("fresh principal should be allowed to check in: %v", profile)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/users/SP9/check-in", nil))
	if err != nil {
		t.Fatalf("check-in request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	resp.Body.Close()
	if body["reward"] != float64(12) {
		t.Fatalf("expected reward 12, got %v", body["reward"])
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/users/SP9/check-in", nil))
	if err != nil {
		t.Fatalf("second check-in request: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for same-day retry, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestHandlerMintGate(t *testing.T) {
	app := setupHandlerApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/users/SP10/mint", nil))
	if err != nil {
		t.Fatalf("mint request: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("mint before check-in should 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	if resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/users/SP10/check-in", nil)); err != nil {
		t.Fatalf("check-in request: %v", err)
	}
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/users/SP10/mint", nil))
	if err != nil {
		t.Fatalf("mint request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("mint after check-in should 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestHandlerHeatmapWindow(t *testing.T) {
	app := setupHandlerApp(t)

	if resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/users/SP11/check-in", nil)); err != nil {
		t.Fatalf("check-in request: %v", err)
	} else {
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/users/SP11/heatmap?days=7", nil))
	if err != nil {
		t.Fatalf("heatmap request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	resp.Body.Close()

	cells, ok := body["cells"].([]any)
	if !ok || len(cells) != 7 {
		t.Fatalf("expected 7 cells, got %v", body["cells"])
	}
	last := cells[6].(map[string]any)
	if last["active"] != true {
		t.Fatalf("today's cell should be active: %v", last)
	}
}
