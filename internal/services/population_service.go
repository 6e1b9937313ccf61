package services

import (
	"errors"
	"math"

	"milano-insights/internal/dto"
	"milano-insights/internal/models"
	"milano-insights/internal/repositories"
)

// ErrNeighborhoodNotFound reports input that resolves to no known NIL,
// or a resolved NIL with no population data.
var ErrNeighborhoodNotFound = errors.New("neighborhood not found")

// PopulationService exposes the household statistics view filtered by
// year and neighborhood.
type PopulationService struct {
	popRepo  repositories.PopulationRepositoryInterface
	resolver ResolverServiceInterface
}

// NewPopulationService creates a new population service
func NewPopulationService(popRepo repositories.PopulationRepositoryInterface, resolver ResolverServiceInterface) *PopulationService {
	return &PopulationService{popRepo: popRepo, resolver: resolver}
}

// List returns the filtered fact rows plus per-NIL rollups and the
// filter vocabulary. Free text in the nil filter goes through the
// resolver first; only when nothing matches does it degrade to a plain
// label substring search.
func (s *PopulationService) List(query dto.PopulationQuery) (*dto.PopulationListResponse, error) {
	filter := repositories.PopulationFilter{Year: query.Anno}

	var nilMatch *dto.NilMatchResponse
	if query.Nil != "" {
		if match, ok := s.resolver.Resolve(query.Nil); ok {
			filter.NeighborhoodID = match.ID
			nilMatch = &dto.NilMatchResponse{
				IDNil:      match.ID,
				Nil:        match.Name,
				NilLabel:   match.Label,
				MatchType:  match.MatchType,
				Confidence: match.Confidence,
			}
		} else {
			filter.LabelLike = query.Nil
		}
	}

	rows, err := s.popRepo.Rows(filter)
	if err != nil {
		return nil, err
	}
	aggregates, err := s.popRepo.Aggregates(filter)
	if err != nil {
		return nil, err
	}
	years, err := s.popRepo.AvailableYears()
	if err != nil {
		return nil, err
	}
	nils, err := s.popRepo.AvailableNils()
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []models.PopulationRow{}
	}
	if aggregates == nil {
		aggregates = []models.PopulationAggregate{}
	}
	if years == nil {
		years = []int{}
	}
	if nils == nil {
		nils = []string{}
	}

	return &dto.PopulationListResponse{
		Data:           rows,
		Aggregated:     aggregates,
		AvailableYears: years,
		AvailableNils:  nils,
		Total:          len(rows),
		NilMatch:       nilMatch,
	}, nil
}

// Detail returns the full population profile for one neighborhood:
// yearly household totals, year-over-year growth, and the latest-year
// breakdowns by family type, age class and citizenship.
func (s *PopulationService) Detail(nilInput string) (*dto.PopulationDetailResponse, error) {
	match, ok := s.resolver.Resolve(nilInput)
	if !ok {
		return nil, ErrNeighborhoodNotFound
	}

	series, err := s.popRepo.YearTotals(match.ID)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, ErrNeighborhoodNotFound
	}

	latestYear, err := s.popRepo.LatestYear(match.ID)
	if err != nil {
		return nil, err
	}

	var growth *float64
	if len(series) >= 2 {
		last := series[len(series)-1]
		prev := series[len(series)-2]
		if prev.TotalFamilies > 0 {
			g := float64(last.TotalFamilies-prev.TotalFamilies) /
				float64(prev.TotalFamilies) * 100
			g = math.Round(g*100) / 100
			growth = &g
		}
	}

	familyTypes, err := s.popRepo.FamilyTypeBreakdown(match.ID, latestYear)
	if err != nil {
		return nil, err
	}
	ageClasses, err := s.popRepo.AgeClassBreakdown(match.ID, latestYear)
	if err != nil {
		return nil, err
	}
	citizenship, err := s.popRepo.CitizenshipBreakdown(match.ID, latestYear)
	if err != nil {
		return nil, err
	}

	return &dto.PopulationDetailResponse{
		Nil:                 match.Name,
		NilLabel:            match.Label,
		IDNil:               match.ID,
		Match:               dto.MatchInfo{MatchType: match.MatchType, Confidence: match.Confidence},
		LatestYear:          latestYear,
		TimeSeries:          series,
		CrescitaFamiglieYoY: growth,
		Breakdown: dto.PopulationBreakdown{
			Tipologie:    familyTypes,
			ClassiEta:    ageClasses,
			Cittadinanza: citizenship,
		},
	}, nil
}
