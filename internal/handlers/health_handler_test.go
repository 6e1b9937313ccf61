package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"milano-insights/internal/database"
	"milano-insights/internal/dto"
	"milano-insights/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// HealthHandlerTestSuite defines the test suite for the health endpoint
type HealthHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	db      *database.DB
	handler *HealthHandler
}

// SetupTest runs before each test
func (s *HealthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.db = database.SetupTestDB(s.T())
	s.handler = NewHealthHandler(s.db)
}

// TestHealthHandlerTestSuite runs the test suite
func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

// TestGetHealth tests the healthy response
func (s *HealthHandlerTestSuite) TestGetHealth() {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.GetHealth(c))
	s.Equal(http.StatusOK, rec.Code)

	var body dto.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("ok", body.Status)
	s.True(body.Database.Connected)
	s.Equal("sqlite", body.Database.Driver)
	s.NotEmpty(body.Timestamp)
}

// TestGetHealth_WithFreshness tests that pipeline bookkeeping surfaces
func (s *HealthHandlerTestSuite) TestGetHealth_WithFreshness() {
	row := models.DataFreshness{
		SourceName: "omi_prices",
		LastSync:   "2024-06-01T03:00:00Z",
		Status:     "ok",
	}
	s.Require().NoError(s.db.Create(&row).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.GetHealth(c))
	s.Equal(http.StatusOK, rec.Code)

	var body dto.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().NotNil(body.Data)
	s.Equal("omi_prices", body.Data.Source)
	s.Equal("ok", body.Data.Status)
}
