package services

import (
	"errors"
	"strconv"
	"strings"

	"milano-insights/internal/dto"
	"milano-insights/internal/geo"
	"milano-insights/internal/models"
	"milano-insights/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	// ErrZoneNotFound reports a neighborhood id that maps to no OMI zone.
	ErrZoneNotFound = errors.New("no zone found for neighborhood")
	// ErrNoSeriesData reports a resolved zone with no price history.
	ErrNoSeriesData = errors.New("no price series for zone")
)

var oneHundred = decimal.NewFromInt(100)

// PriceService exposes the OMI zone price fact reshaped to the NIL
// neighborhood grid.
type PriceService struct {
	priceRepo repositories.PriceRepositoryInterface
}

// NewPriceService creates a new price service
func NewPriceService(priceRepo repositories.PriceRepositoryInterface) *PriceService {
	return &PriceService{priceRepo: priceRepo}
}

// LatestPrices returns one record per neighborhood for the most recent
// semester. Zone rows covering several NILs are duplicated to each;
// when two zones claim the same NIL the later row wins but the NIL
// keeps its original position in the list.
func (s *PriceService) LatestPrices() ([]dto.NeighborhoodPriceResponse, error) {
	latest, err := s.priceRepo.LatestSemester()
	if err != nil {
		if errors.Is(err, repositories.ErrNoPriceData) {
			return []dto.NeighborhoodPriceResponse{}, nil
		}
		return nil, err
	}

	rows, err := s.priceRepo.RowsForSemester(latest)
	if err != nil {
		return nil, err
	}

	prevPurchase := map[string]decimal.Decimal{}
	if prev, err := s.priceRepo.PreviousSemester(latest); err == nil {
		prevRows, err := s.priceRepo.RowsForSemester(prev)
		if err != nil {
			return nil, err
		}
		for _, r := range prevRows {
			prevPurchase[r.ZoneName] = r.PurchasePerSqm
		}
	} else if !errors.Is(err, repositories.ErrNoPriceData) {
		return nil, err
	}

	byID := map[string]dto.NeighborhoodPriceResponse{}
	var order []string
	for _, row := range rows {
		variation := decimal.Zero
		if prev, ok := prevPurchase[row.ZoneName]; ok && !prev.IsZero() {
			variation = row.PurchasePerSqm.Sub(prev).Div(prev).Mul(oneHundred)
		}

		records := geo.DistributeZonePrice(row.ZoneName, geo.PriceFields{
			PurchasePerSqm: row.PurchasePerSqm,
			RentPerSqm:     row.RentPerSqm,
			ChangePercent:  variation,
			Semester:       row.Semester,
		})
		for _, rec := range records {
			if _, seen := byID[rec.NeighborhoodID]; !seen {
				order = append(order, rec.NeighborhoodID)
			}
			entry := dto.NeighborhoodPriceResponse{
				QuartiereID:          rec.NeighborhoodID,
				PrezzoAcquistoMedio:  rec.PurchasePerSqm.Round(0).IntPart(),
				PrezzoLocazioneMedio: rec.RentPerSqm.Round(2).InexactFloat64(),
				VariazioneSemestrale: rec.ChangePercent.Round(2).InexactFloat64(),
				OmiZone:              rec.SourceZone,
			}
			if rec.Fallback {
				entry.Quartiere = rec.SourceZone
			}
			byID[rec.NeighborhoodID] = entry
		}
	}

	result := make([]dto.NeighborhoodPriceResponse, 0, len(order))
	for _, id := range order {
		result = append(result, byID[id])
	}
	return result, nil
}

// Timeseries returns the full semester price series for one
// neighborhood identifier.
func (s *PriceService) Timeseries(id string) (*dto.TimeseriesResponse, error) {
	zoneName, err := s.zoneNameForID(id)
	if err != nil {
		return nil, err
	}

	rows, err := s.priceRepo.SeriesByZoneName(zoneName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoSeriesData
	}

	points := make([]dto.TimeseriesPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, buildTimeseriesPoint(row))
	}
	return &dto.TimeseriesResponse{
		Quartiere:   geo.CanonicalizeZoneName(zoneName),
		QuartiereID: id,
		Data:        points,
	}, nil
}

// Compare returns a series per requested identifier. Identifiers that
// resolve to no zone or no data are silently skipped so one bad id does
// not fail the whole comparison.
func (s *PriceService) Compare(ids []string) ([]dto.TimeseriesResponse, error) {
	result := make([]dto.TimeseriesResponse, 0, len(ids))
	for _, id := range ids {
		series, err := s.Timeseries(id)
		if err != nil {
			if errors.Is(err, ErrZoneNotFound) || errors.Is(err, ErrNoSeriesData) {
				continue
			}
			return nil, err
		}
		result = append(result, *series)
	}
	return result, nil
}

// MilanoStats returns the citywide aggregates for the latest semester
// plus the full citywide average series.
func (s *PriceService) MilanoStats() (*dto.MilanoStatsResponse, error) {
	latest, err := s.priceRepo.LatestSemester()
	if err != nil {
		return nil, err
	}

	stats, err := s.priceRepo.CityStatsForSemester(latest)
	if err != nil {
		return nil, err
	}

	var variation *float64
	if prev, err := s.priceRepo.PreviousSemester(latest); err == nil {
		prevAvg, err := s.priceRepo.AvgPurchaseForSemester(prev)
		if err != nil {
			return nil, err
		}
		if !prevAvg.IsZero() {
			v := stats.AvgPurchasePerSqm.Sub(prevAvg).Div(prevAvg).Mul(oneHundred).
				Round(2).InexactFloat64()
			variation = &v
		}
	} else if !errors.Is(err, repositories.ErrNoPriceData) {
		return nil, err
	}

	series, err := s.priceRepo.CitySeries()
	if err != nil {
		return nil, err
	}
	points := make([]dto.CityTimeseriesPoint, 0, len(series))
	for _, avg := range series {
		points = append(points, dto.CityTimeseriesPoint{
			Semestre:        avg.Semester,
			Label:           models.SemesterDisplayLabel(avg.Semester),
			PrezzoAcquisto:  avg.AvgPurchasePerSqm.Round(0).IntPart(),
			PrezzoLocazione: avg.AvgRentPerSqm.Round(2).InexactFloat64(),
		})
	}

	return &dto.MilanoStatsResponse{
		Semestre:                  stats.Semester,
		PrezzoMedioAcquisto:       stats.AvgPurchasePerSqm.Round(0).IntPart(),
		PrezzoMedioLocazione:      stats.AvgRentPerSqm.Round(2).InexactFloat64(),
		PrezzoMax:                 stats.MaxPurchasePerSqm.Round(0).IntPart(),
		PrezzoMin:                 stats.MinPurchasePerSqm.Round(0).IntPart(),
		VariazioneSemestraleMedia: variation,
		TotaleQuartieri:           stats.ZoneCount,
		TimeSeries:                points,
	}, nil
}

// Semesters returns every distinct semester with its display label,
// oldest first.
func (s *PriceService) Semesters() ([]dto.SemesterResponse, error) {
	semesters, err := s.priceRepo.DistinctSemesters()
	if err != nil {
		return nil, err
	}
	result := make([]dto.SemesterResponse, 0, len(semesters))
	for _, sem := range semesters {
		result = append(result, dto.SemesterResponse{
			Value: sem,
			Label: models.SemesterDisplayLabel(sem),
		})
	}
	return result, nil
}

// zoneNameForID walks the identifier back to a stored OMI zone name.
// Curated fallback slugs resolve through the legacy table; unknown
// identifiers are searched in the fact table with progressively looser
// LIKE patterns, then through the NIL coverage map.
func (s *PriceService) zoneNameForID(id string) (string, error) {
	if zone, ok := geo.ReverseLookupZoneName(id); ok {
		return zone, nil
	}

	segments := strings.Split(id, "-")
	patterns := []string{
		"%" + strings.ReplaceAll(id, "-", "%") + "%",
		"%" + strings.ToUpper(strings.ReplaceAll(id, "-", " ")) + "%",
		"%" + strings.ToUpper(segments[0]) + "%",
	}
	if zone, err := s.priceRepo.FindZoneNameLike(patterns); err == nil {
		return zone, nil
	} else if !errors.Is(err, repositories.ErrZoneNotFound) {
		return "", err
	}

	if zones := geo.LookupZonesForNeighborhood(id); len(zones) > 0 {
		return zones[0], nil
	}

	var loose []string
	for _, segment := range segments {
		if len(segment) > 3 {
			loose = append(loose, "%"+strings.ToUpper(segment)+"%")
		}
	}
	if len(loose) > 0 {
		if zone, err := s.priceRepo.FindZoneNameLike(loose); err == nil {
			return zone, nil
		} else if !errors.Is(err, repositories.ErrZoneNotFound) {
			return "", err
		}
	}

	return "", ErrZoneNotFound
}

func buildTimeseriesPoint(row models.ZonePriceRow) dto.TimeseriesPoint {
	var year int
	if len(row.Semester) >= 4 {
		year, _ = strconv.Atoi(row.Semester[:4])
	}
	point := dto.TimeseriesPoint{
		Semestre:        row.Semester,
		Anno:            year,
		Label:           models.SemesterDisplayLabel(row.Semester),
		PrezzoAcquisto:  row.PurchasePerSqm.Round(0).IntPart(),
		PrezzoLocazione: row.RentPerSqm.Round(2).InexactFloat64(),
	}
	if len(row.Semester) >= 6 {
		point.Periodo = "H" + row.Semester[5:]
	}
	return point
}
