package repositories

import (
	"milano-insights/internal/models"

	"github.com/shopspring/decimal"
)

// NeighborhoodRepositoryInterface defines the contract for the NIL dimension
type NeighborhoodRepositoryInterface interface {
	ListAll() ([]models.Neighborhood, error)
}

// PriceRepositoryInterface defines the contract for the OMI zone price fact
type PriceRepositoryInterface interface {
	LatestSemester() (string, error)
	PreviousSemester(before string) (string, error)
	RowsForSemester(semester string) ([]models.ZonePriceRow, error)
	SeriesByZoneName(rawZoneName string) ([]models.ZonePriceRow, error)
	FindZoneNameLike(patterns []string) (string, error)
	DistinctSemesters() ([]string, error)
	CityStatsForSemester(semester string) (*models.CityStats, error)
	AvgPurchaseForSemester(semester string) (decimal.Decimal, error)
	CitySeries() ([]models.SemesterAverage, error)
}

// PopulationFilter narrows population queries. Zero values mean no
// filter; LabelLike is only consulted when NeighborhoodID is zero.
type PopulationFilter struct {
	Year           int
	NeighborhoodID int
	LabelLike      string
}

// PopulationRepositoryInterface defines the contract for the population fact view
type PopulationRepositoryInterface interface {
	Rows(filter PopulationFilter) ([]models.PopulationRow, error)
	Aggregates(filter PopulationFilter) ([]models.PopulationAggregate, error)
	AvailableYears() ([]int, error)
	AvailableNils() ([]string, error)
	YearTotals(neighborhoodID int) ([]models.FamilyYearTotal, error)
	LatestYear(neighborhoodID int) (int, error)
	FamilyTypeBreakdown(neighborhoodID, year int) ([]models.BreakdownEntry, error)
	AgeClassBreakdown(neighborhoodID, year int) ([]models.BreakdownEntry, error)
	CitizenshipBreakdown(neighborhoodID, year int) ([]models.BreakdownEntry, error)
}
