package repositories

import (
	"errors"
	"fmt"

	"milano-insights/internal/models"

	"gorm.io/gorm"
)

var ErrNoPopulationData = errors.New("no population data available")

// populationRepository implements PopulationRepositoryInterface
type populationRepository struct {
	db *gorm.DB
}

// NewPopulationRepository creates a new population repository
func NewPopulationRepository(db *gorm.DB) PopulationRepositoryInterface {
	return &populationRepository{db: db}
}

// applyFilter narrows a query by year and neighborhood. A resolved
// neighborhood id takes precedence; the label pattern is the fallback
// for unresolvable free text.
func applyFilter(q *gorm.DB, filter PopulationFilter) *gorm.DB {
	if filter.Year != 0 {
		q = q.Where("anno = ?", filter.Year)
	}
	if filter.NeighborhoodID != 0 {
		q = q.Where("id_nil = ?", filter.NeighborhoodID)
	} else if filter.LabelLike != "" {
		q = q.Where("nil_label LIKE ?", "%"+filter.LabelLike+"%")
	}
	return q
}

// Rows returns the filtered fact rows, newest year first.
func (r *populationRepository) Rows(filter PopulationFilter) ([]models.PopulationRow, error) {
	var rows []models.PopulationRow
	err := applyFilter(r.db.Model(&models.PopulationRow{}), filter).
		Order("anno DESC, nil_label ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get population rows: %w", err)
	}
	return rows, nil
}

// Aggregates returns per-NIL, per-year rollups for the same filter.
func (r *populationRepository) Aggregates(filter PopulationFilter) ([]models.PopulationAggregate, error) {
	var aggregates []models.PopulationAggregate
	err := applyFilter(r.db.Model(&models.PopulationRow{}), filter).
		Select(`anno, id_nil, nil_name, nil_label,
			SUM(famiglie) AS totale_famiglie,
			COUNT(DISTINCT tipologia_familiare) AS tipi_famiglia,
			COUNT(DISTINCT classe_eta_capofamiglia) AS classi_eta`).
		Group("anno, id_nil, nil_label, nil_name").
		Order("anno DESC, totale_famiglie DESC").
		Scan(&aggregates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get population aggregates: %w", err)
	}
	return aggregates, nil
}

// AvailableYears returns all years present, newest first.
func (r *populationRepository) AvailableYears() ([]int, error) {
	var years []int
	err := r.db.Model(&models.PopulationRow{}).
		Distinct("anno").
		Order("anno DESC").
		Scan(&years).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get available years: %w", err)
	}
	return years, nil
}

// AvailableNils returns all NIL display labels alphabetically.
func (r *populationRepository) AvailableNils() ([]string, error) {
	var labels []string
	err := r.db.Model(&models.PopulationRow{}).
		Distinct("nil_label").
		Order("nil_label ASC").
		Scan(&labels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get available NILs: %w", err)
	}
	return labels, nil
}

// YearTotals returns the per-year household totals for one NIL, oldest
// first.
func (r *populationRepository) YearTotals(neighborhoodID int) ([]models.FamilyYearTotal, error) {
	var totals []models.FamilyYearTotal
	err := r.db.Model(&models.PopulationRow{}).
		Select("anno, nil_name, nil_label, SUM(famiglie) AS totale_famiglie").
		Where("id_nil = ?", neighborhoodID).
		Group("anno, id_nil, nil_label, nil_name").
		Order("anno ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get year totals: %w", err)
	}
	return totals, nil
}

// LatestYear returns the most recent year with data for one NIL.
func (r *populationRepository) LatestYear(neighborhoodID int) (int, error) {
	var year *int
	err := r.db.Model(&models.PopulationRow{}).
		Select("MAX(anno)").
		Where("id_nil = ?", neighborhoodID).
		Scan(&year).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get latest year: %w", err)
	}
	if year == nil {
		return 0, ErrNoPopulationData
	}
	return *year, nil
}

// breakdown rolls households up by one dimension column for one NIL
// and year. The column name is always one of the fixed callers below,
// never user input.
func (r *populationRepository) breakdown(column string, neighborhoodID, year int) ([]models.BreakdownEntry, error) {
	var entries []models.BreakdownEntry
	err := r.db.Model(&models.PopulationRow{}).
		Select(fmt.Sprintf("%s AS valore, SUM(famiglie) AS totale", column)).
		Where("id_nil = ? AND anno = ?", neighborhoodID, year).
		Group(column).
		Order("totale DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get %s breakdown: %w", column, err)
	}
	return entries, nil
}

// FamilyTypeBreakdown rolls households up by family type.
func (r *populationRepository) FamilyTypeBreakdown(neighborhoodID, year int) ([]models.BreakdownEntry, error) {
	return r.breakdown("tipologia_familiare", neighborhoodID, year)
}

// AgeClassBreakdown rolls households up by head-of-family age class.
func (r *populationRepository) AgeClassBreakdown(neighborhoodID, year int) ([]models.BreakdownEntry, error) {
	return r.breakdown("classe_eta_capofamiglia", neighborhoodID, year)
}

// CitizenshipBreakdown rolls households up by citizenship.
func (r *populationRepository) CitizenshipBreakdown(neighborhoodID, year int) ([]models.BreakdownEntry, error) {
	return r.breakdown("cittadinanza", neighborhoodID, year)
}
