package repositories

import (
	"errors"
	"fmt"

	"milano-insights/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNoPriceData  = errors.New("no price data available")
	ErrZoneNotFound = errors.New("zone not found")
)

// priceRepository implements PriceRepositoryInterface
type priceRepository struct {
	db *gorm.DB
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(db *gorm.DB) PriceRepositoryInterface {
	return &priceRepository{db: db}
}

// LatestSemester returns the most recent semester label in the fact
// table. Labels sort lexically ("2023_2" < "2024_1").
func (r *priceRepository) LatestSemester() (string, error) {
	var semester *string
	err := r.db.Model(&models.ZonePriceRow{}).
		Select("MAX(semestre)").
		Scan(&semester).Error
	if err != nil {
		return "", fmt.Errorf("failed to get latest semester: %w", err)
	}
	if semester == nil {
		return "", ErrNoPriceData
	}
	return *semester, nil
}

// PreviousSemester returns the most recent semester strictly before the
// given one, or ErrNoPriceData when the given semester is the first.
func (r *priceRepository) PreviousSemester(before string) (string, error) {
	var semester *string
	err := r.db.Model(&models.ZonePriceRow{}).
		Select("MAX(semestre)").
		Where("semestre < ?", before).
		Scan(&semester).Error
	if err != nil {
		return "", fmt.Errorf("failed to get previous semester: %w", err)
	}
	if semester == nil {
		return "", ErrNoPriceData
	}
	return *semester, nil
}

// RowsForSemester returns all zone rows for one semester, most
// expensive first.
func (r *priceRepository) RowsForSemester(semester string) ([]models.ZonePriceRow, error) {
	var rows []models.ZonePriceRow
	err := r.db.Where("semestre = ?", semester).
		Order("prezzo_acquisto_medio_eur_mq DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get rows for semester: %w", err)
	}
	return rows, nil
}

// SeriesByZoneName returns the full semester series for one raw zone
// name, oldest first.
func (r *priceRepository) SeriesByZoneName(rawZoneName string) ([]models.ZonePriceRow, error) {
	var rows []models.ZonePriceRow
	err := r.db.Where("quartiere = ?", rawZoneName).
		Order("semestre ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get series for zone: %w", err)
	}
	return rows, nil
}

// FindZoneNameLike tries each LIKE pattern in order and returns the
// first raw zone name that matches, or ErrZoneNotFound.
func (r *priceRepository) FindZoneNameLike(patterns []string) (string, error) {
	for _, pattern := range patterns {
		var name string
		err := r.db.Model(&models.ZonePriceRow{}).
			Distinct("quartiere").
			Where("UPPER(quartiere) LIKE UPPER(?)", pattern).
			Limit(1).
			Scan(&name).Error
		if err != nil {
			return "", fmt.Errorf("failed to search zone name: %w", err)
		}
		if name != "" {
			return name, nil
		}
	}
	return "", ErrZoneNotFound
}

// DistinctSemesters returns all semester labels in ascending order.
func (r *priceRepository) DistinctSemesters() ([]string, error) {
	var semesters []string
	err := r.db.Model(&models.ZonePriceRow{}).
		Distinct("semestre").
		Order("semestre ASC").
		Scan(&semesters).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get semesters: %w", err)
	}
	return semesters, nil
}

// CityStatsForSemester aggregates all zones for one semester.
func (r *priceRepository) CityStatsForSemester(semester string) (*models.CityStats, error) {
	var stats models.CityStats
	err := r.db.Model(&models.ZonePriceRow{}).
		Select(`semestre,
			AVG(prezzo_acquisto_medio_eur_mq) AS avg_acquisto,
			AVG(prezzo_locazione_medio_eur_mq) AS avg_locazione,
			MAX(prezzo_acquisto_medio_eur_mq) AS max_acquisto,
			MIN(prezzo_acquisto_medio_eur_mq) AS min_acquisto,
			COUNT(DISTINCT quartiere) AS totale_quartieri`).
		Where("semestre = ?", semester).
		Group("semestre").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get city stats: %w", err)
	}
	if stats.Semester == "" {
		return nil, ErrNoPriceData
	}
	return &stats, nil
}

// AvgPurchaseForSemester returns the citywide average purchase price
// for one semester.
func (r *priceRepository) AvgPurchaseForSemester(semester string) (decimal.Decimal, error) {
	var avg decimal.NullDecimal
	err := r.db.Model(&models.ZonePriceRow{}).
		Select("AVG(prezzo_acquisto_medio_eur_mq)").
		Where("semestre = ?", semester).
		Scan(&avg).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get average purchase price: %w", err)
	}
	if !avg.Valid {
		return decimal.Zero, ErrNoPriceData
	}
	return avg.Decimal, nil
}

// CitySeries returns the citywide average series grouped by semester,
// oldest first.
func (r *priceRepository) CitySeries() ([]models.SemesterAverage, error) {
	var series []models.SemesterAverage
	err := r.db.Model(&models.ZonePriceRow{}).
		Select(`semestre,
			AVG(prezzo_acquisto_medio_eur_mq) AS avg_acquisto,
			AVG(prezzo_locazione_medio_eur_mq) AS avg_locazione`).
		Group("semestre").
		Order("semestre ASC").
		Scan(&series).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get city series: %w", err)
	}
	return series, nil
}
