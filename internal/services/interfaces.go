package services

import (
	"milano-insights/internal/dto"
	"milano-insights/internal/models"
)

// ResolverServiceInterface defines the contract for neighborhood resolution
type ResolverServiceInterface interface {
	// Resolve maps free text, a numeric id, or a "Name (id)" label to a
	// neighborhood. The boolean is false when nothing matched.
	Resolve(input string) (*models.ResolvedMatch, bool)
	// ReloadIndex rebuilds the in-memory index from the store and swaps
	// it in atomically. Returns the number of indexed entries.
	ReloadIndex() (int, error)
	// Size returns the number of entries in the current index.
	Size() int
}

// PriceServiceInterface defines the contract for zone price operations
type PriceServiceInterface interface {
	LatestPrices() ([]dto.NeighborhoodPriceResponse, error)
	Timeseries(id string) (*dto.TimeseriesResponse, error)
	Compare(ids []string) ([]dto.TimeseriesResponse, error)
	MilanoStats() (*dto.MilanoStatsResponse, error)
	Semesters() ([]dto.SemesterResponse, error)
}

// PopulationServiceInterface defines the contract for population statistics
type PopulationServiceInterface interface {
	List(query dto.PopulationQuery) (*dto.PopulationListResponse, error)
	Detail(nilInput string) (*dto.PopulationDetailResponse, error)
}

// MetricsRecorderInterface abstracts metric recording so services can be
// tested without touching the global prometheus registry.
type MetricsRecorderInterface interface {
	RecordResolution(matchType string)
	RecordResolutionMiss()
	RecordIndexRebuild(entries int)
}
