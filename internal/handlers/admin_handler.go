package handlers

import (
	"net/http"

	"milano-insights/internal/dto"
	"milano-insights/internal/errors"
	"milano-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the operator endpoints. Key checking happens in
// the admin middleware, not here.
type AdminHandler struct {
	resolver services.ResolverServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(resolver services.ResolverServiceInterface) *AdminHandler {
	return &AdminHandler{resolver: resolver}
}

// ReloadIndex handles POST /api/admin/reload-index
func (h *AdminHandler) ReloadIndex(c echo.Context) error {
	entries, err := h.resolver.ReloadIndex()
	if err != nil {
		return SendError(c, errors.SystemDatabaseError, errors.WithDetails("index rebuild failed"))
	}
	return c.JSON(http.StatusOK, dto.ReloadIndexResponse{
		Message: "neighborhood index reloaded",
		Entries: entries,
	})
}
