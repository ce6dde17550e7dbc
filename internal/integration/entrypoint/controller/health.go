// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness for the API and its database.
type HealthController struct {
	pingDB func() bool
}

// HealthResponse is the payload returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. pingDB
// reports whether the database connection is usable.
func NewHealthController(pingDB func() bool) *HealthController {
	return &HealthController{
		pingDB: pingDB,
	}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	database := "disconnected"
	if c.pingDB != nil && c.pingDB() {
		database = "connected"
	}

	ctx.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  database,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
