package handlers

import (
	stderrors "errors"
	"net/http"
	"net/url"
	"strings"

	"milano-insights/internal/dto"
	"milano-insights/internal/errors"
	"milano-insights/internal/geo"
	"milano-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// NeighborhoodHandler serves the price endpoints and the identity
// resolution endpoints.
type NeighborhoodHandler struct {
	priceService services.PriceServiceInterface
	resolver     services.ResolverServiceInterface
}

// NewNeighborhoodHandler creates a new neighborhood handler
func NewNeighborhoodHandler(priceService services.PriceServiceInterface, resolver services.ResolverServiceInterface) *NeighborhoodHandler {
	return &NeighborhoodHandler{priceService: priceService, resolver: resolver}
}

// GetQuartieri handles GET /api/quartieri
func (h *NeighborhoodHandler) GetQuartieri(c echo.Context) error {
	prices, err := h.priceService.LatestPrices()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, prices)
}

// GetTimeseries handles GET /api/quartieri/:id/timeseries
func (h *NeighborhoodHandler) GetTimeseries(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("id is required"))
	}

	series, err := h.priceService.Timeseries(id)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrZoneNotFound):
			return SendError(c, errors.ZoneNotFound, errors.WithDetails("no zone for id: "+id))
		case stderrors.Is(err, services.ErrNoSeriesData):
			return SendError(c, errors.ZoneNoSeries, errors.WithDetails("no price series for id: "+id))
		default:
			return SendSystemError(c, err)
		}
	}
	return c.JSON(http.StatusOK, series)
}

// CompareTimeseries handles GET /api/timeseries/compare?ids=a,b,c
func (h *NeighborhoodHandler) CompareTimeseries(c echo.Context) error {
	var query dto.CompareQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	var ids []string
	for _, id := range strings.Split(query.IDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("ids must contain at least one identifier"))
	}

	series, err := h.priceService.Compare(ids)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, series)
}

// GetSemesters handles GET /api/semesters
func (h *NeighborhoodHandler) GetSemesters(c echo.Context) error {
	semesters, err := h.priceService.Semesters()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, semesters)
}

// ResolveNil handles GET /api/nil/resolve?q=
func (h *NeighborhoodHandler) ResolveNil(c echo.Context) error {
	var query dto.ResolveQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	if h.resolver.Size() == 0 {
		return SendError(c, errors.NilIndexEmpty)
	}

	match, ok := h.resolver.Resolve(query.Q)
	if !ok {
		return SendError(c, errors.NilNoMatch, errors.WithDetails("no neighborhood matches: "+query.Q))
	}

	return c.JSON(http.StatusOK, dto.ResolveResponse{
		IDNil:        match.ID,
		Nil:          match.Name,
		NilLabel:     match.Label,
		MatchType:    match.MatchType,
		Confidence:   match.Confidence,
		HasPriceData: geo.HasPriceData(geo.NilSlug(match.Name)),
	})
}

// GetZoneNeighborhoods handles GET /api/zone/:name/nils
func (h *NeighborhoodHandler) GetZoneNeighborhoods(c echo.Context) error {
	name := c.Param("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("zone name is required"))
	}

	canonical := geo.CanonicalizeZoneName(name)
	nilIDs := geo.LookupNeighborhoods(canonical)

	response := dto.ZoneNeighborhoodsResponse{
		Zone:       canonical,
		NilIDs:     nilIDs,
		HasMapping: len(nilIDs) > 0,
	}
	if response.NilIDs == nil {
		response.NilIDs = []string{}
	}
	if !response.HasMapping {
		response.FallbackID = geo.LookupLegacyID(name)
	}
	return c.JSON(http.StatusOK, response)
}
