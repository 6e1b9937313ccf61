package repositories

import (
	"fmt"

	"milano-insights/internal/models"

	"gorm.io/gorm"
)

// neighborhoodRepository implements NeighborhoodRepositoryInterface
type neighborhoodRepository struct {
	db *gorm.DB
}

// NewNeighborhoodRepository creates a new neighborhood repository
func NewNeighborhoodRepository(db *gorm.DB) NeighborhoodRepositoryInterface {
	return &neighborhoodRepository{db: db}
}

// ListAll returns every row of the NIL dimension view
func (r *neighborhoodRepository) ListAll() ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	if err := r.db.Order("id_nil ASC").Find(&neighborhoods).Error; err != nil {
		return nil, fmt.Errorf("failed to list neighborhoods: %w", err)
	}
	return neighborhoods, nil
}
