package handlers

import (
	stderrors "errors"
	"net/http"

	"milano-insights/internal/errors"
	"milano-insights/internal/repositories"
	"milano-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves the citywide aggregate endpoint.
type StatsHandler struct {
	priceService services.PriceServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(priceService services.PriceServiceInterface) *StatsHandler {
	return &StatsHandler{priceService: priceService}
}

// GetMilanoStats handles GET /api/stats/milano
func (h *StatsHandler) GetMilanoStats(c echo.Context) error {
	stats, err := h.priceService.MilanoStats()
	if err != nil {
		if stderrors.Is(err, repositories.ErrNoPriceData) {
			return SendError(c, errors.ZoneNoSeries, errors.WithDetails("no price data loaded"))
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
