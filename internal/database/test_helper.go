package database

import (
	"fmt"
	"testing"

	"milano-insights/internal/config"
	"milano-insights/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite store and creates plain tables
// in place of the pipeline-owned views, so repositories and services
// can be tested against real SQL.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := db.AutoMigrate(
		&models.Neighborhood{},
		&models.ZonePriceRow{},
		&models.PopulationRow{},
		&models.DataFreshness{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestNeighborhood inserts one NIL dimension row. The label
// follows the dashboard's "Name (id)" display form.
func CreateTestNeighborhood(t *testing.T, db *DB, id int, name string) models.Neighborhood {
	t.Helper()

	nbh := models.Neighborhood{
		ID:    id,
		Name:  name,
		Label: fmt.Sprintf("%s (%d)", name, id),
	}
	if err := db.Create(&nbh).Error; err != nil {
		t.Fatalf("failed to create test neighborhood: %v", err)
	}
	return nbh
}

// CreateTestZonePrice inserts one zone price fact row.
func CreateTestZonePrice(t *testing.T, db *DB, zoneName, semester string, purchase, rent float64) models.ZonePriceRow {
	t.Helper()

	row := models.ZonePriceRow{
		ZoneName:       zoneName,
		Semester:       semester,
		PurchasePerSqm: decimal.NewFromFloat(purchase),
		RentPerSqm:     decimal.NewFromFloat(rent),
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to create test zone price: %v", err)
	}
	return row
}

// CreateTestPopulationRow inserts one population fact row.
func CreateTestPopulationRow(t *testing.T, db *DB, row models.PopulationRow) models.PopulationRow {
	t.Helper()

	if row.Label == "" {
		row.Label = fmt.Sprintf("%s (%d)", row.Name, row.NeighborhoodID)
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to create test population row: %v", err)
	}
	return row
}
