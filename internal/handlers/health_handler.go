package handlers

import (
	"errors"
	"net/http"
	"time"

	"milano-insights/internal/database"
	"milano-insights/internal/dto"
	"milano-insights/internal/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports store connectivity and pipeline freshness.
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth handles GET /api/health
func (h *HealthHandler) GetHealth(c echo.Context) error {
	response := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  dto.HealthDatabase{Driver: h.db.Driver()},
	}

	if err := h.db.HealthCheck(); err != nil {
		response.Status = "degraded"
		response.Database.Error = err.Error()
		return c.JSON(http.StatusServiceUnavailable, response)
	}
	response.Database.Connected = true

	// freshness bookkeeping is optional; older pipeline databases do
	// not carry the table at all
	var freshness models.DataFreshness
	err := h.db.Order("last_sync DESC").First(&freshness).Error
	if err == nil {
		response.Data = &dto.HealthData{
			Source:   freshness.SourceName,
			LastSync: freshness.LastSync,
			Status:   freshness.Status,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.Logger().Warnf("data freshness lookup failed: %v", err)
	}

	return c.JSON(http.StatusOK, response)
}
