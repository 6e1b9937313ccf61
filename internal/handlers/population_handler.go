package handlers

import (
	stderrors "errors"
	"net/http"
	"net/url"

	"milano-insights/internal/dto"
	"milano-insights/internal/errors"
	"milano-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// PopulationHandler serves the household statistics endpoints.
type PopulationHandler struct {
	populationService services.PopulationServiceInterface
}

// NewPopulationHandler creates a new population handler
func NewPopulationHandler(populationService services.PopulationServiceInterface) *PopulationHandler {
	return &PopulationHandler{populationService: populationService}
}

// ListPopulation handles GET /api/popolazione-quartiere
func (h *PopulationHandler) ListPopulation(c echo.Context) error {
	var query dto.PopulationQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	result, err := h.populationService.List(query)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetPopulationDetail handles GET /api/popolazione-quartiere/:nil
func (h *PopulationHandler) GetPopulationDetail(c echo.Context) error {
	nilInput := c.Param("nil")
	if decoded, err := url.PathUnescape(nilInput); err == nil {
		nilInput = decoded
	}
	if nilInput == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("nil is required"))
	}

	result, err := h.populationService.Detail(nilInput)
	if err != nil {
		if stderrors.Is(err, services.ErrNeighborhoodNotFound) {
			return SendError(c, errors.NilNotFound, errors.WithDetails("no population data for: "+nilInput))
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
