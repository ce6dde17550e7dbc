package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func checkHealth(t *testing.T, pingDB func() bool) (int, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	NewHealthController(pingDB).Check(ctx)

	var body HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return w.Code, body
}

func TestHealthControllerCheck(t *testing.T) {
	t.Run("reports connected database", func(t *testing.T) {
		code, body := checkHealth(t, func() bool { return true })

		if code != http.StatusOK {
			t.Errorf("status = %d, want %d", code, http.StatusOK)
		}
		if body.Status != "ok" {
			t.Errorf("status field = %q, want %q", body.Status, "ok")
		}
		if body.Database != "connected" {
			t.Errorf("database field = %q, want %q", body.Database, "connected")
		}
		if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
			t.Errorf("timestamp %q is not RFC3339: %v", body.Timestamp, err)
		}
	})

	t.Run("reports disconnected database", func(t *testing.T) {
		code, body := checkHealth(t, func() bool { return false })

		if code != http.StatusOK {
			t.Errorf("status = %d, want %d", code, http.StatusOK)
		}
		if body.Database != "disconnected" {
			t.Errorf("database field = %q, want %q", body.Database, "disconnected")
		}
	})

	t.Run("nil ping reports disconnected", func(t *testing.T) {
		_, body := checkHealth(t, nil)

		if body.Database != "disconnected" {
			t.Errorf("database field = %q, want %q", body.Database, "disconnected")
		}
	})
}
