package models

import "github.com/shopspring/decimal"

// ZonePriceRow is one row of the OMI zone price fact table. ZoneName is
// the raw free-text value as stored by the upstream source, often with
// surrounding single quotes; it is never written back.
type ZonePriceRow struct {
	ZoneName       string          `gorm:"column:quartiere"`
	Semester       string          `gorm:"column:semestre"`
	PurchasePerSqm decimal.Decimal `gorm:"column:prezzo_acquisto_medio_eur_mq;type:numeric"`
	RentPerSqm     decimal.Decimal `gorm:"column:prezzo_locazione_medio_eur_mq;type:numeric"`
}

// TableName points gorm at the price fact table.
func (ZonePriceRow) TableName() string {
	return "prezzi_medi_quartiere"
}

// Semester label helpers. Semesters sort lexically ("2024_1" < "2024_2").

// SemesterDisplayLabel converts "2024_1" to "2024 H1".
func SemesterDisplayLabel(semester string) string {
	if len(semester) < 6 || semester[4] != '_' {
		return semester
	}
	return semester[:4] + " H" + semester[5:]
}

// CityStats aggregates the latest semester across all zones.
type CityStats struct {
	Semester          string          `gorm:"column:semestre"`
	AvgPurchasePerSqm decimal.Decimal `gorm:"column:avg_acquisto"`
	AvgRentPerSqm     decimal.Decimal `gorm:"column:avg_locazione"`
	MaxPurchasePerSqm decimal.Decimal `gorm:"column:max_acquisto"`
	MinPurchasePerSqm decimal.Decimal `gorm:"column:min_acquisto"`
	ZoneCount         int             `gorm:"column:totale_quartieri"`
}

// SemesterAverage is one point of the citywide time series.
type SemesterAverage struct {
	Semester          string          `gorm:"column:semestre"`
	AvgPurchasePerSqm decimal.Decimal `gorm:"column:avg_acquisto"`
	AvgRentPerSqm     decimal.Decimal `gorm:"column:avg_locazione"`
}

// DataFreshness is the pipeline sync bookkeeping row used by the health
// endpoint.
type DataFreshness struct {
	SourceName string `gorm:"column:source_name" json:"source"`
	LastSync   string `gorm:"column:last_sync" json:"lastSync"`
	Status     string `gorm:"column:status" json:"status"`
}

// TableName points gorm at the freshness table.
func (DataFreshness) TableName() string {
	return "data_freshness"
}
