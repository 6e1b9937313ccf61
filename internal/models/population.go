package models

// PopulationRow is one row of the normalized population/family view:
// household counts broken down by head-of-family age class, gender,
// household size, family type, and citizenship.
type PopulationRow struct {
	Year           int    `gorm:"column:anno" json:"anno"`
	NeighborhoodID int    `gorm:"column:id_nil" json:"id_nil"`
	Name           string `gorm:"column:nil_name" json:"nil"`
	Label          string `gorm:"column:nil_label" json:"nil_label"`
	HeadAgeClass   string `gorm:"column:classe_eta_capofamiglia" json:"classe_eta_capofamiglia"`
	HeadGender     string `gorm:"column:genere_capofamiglia" json:"genere_capofamiglia"`
	MemberCount    string `gorm:"column:numero_componenti" json:"numero_componenti"`
	FamilyType     string `gorm:"column:tipologia_familiare" json:"tipologia_familiare"`
	Citizenship    string `gorm:"column:cittadinanza" json:"cittadinanza"`
	Families       int    `gorm:"column:famiglie" json:"famiglie"`
}

// TableName points gorm at the normalized population view.
func (PopulationRow) TableName() string {
	return "vw_popolazione_famiglie_norm"
}

// PopulationAggregate is a per-NIL, per-year rollup.
type PopulationAggregate struct {
	Year           int    `gorm:"column:anno" json:"anno"`
	NeighborhoodID int    `gorm:"column:id_nil" json:"id_nil"`
	Name           string `gorm:"column:nil_name" json:"nil"`
	Label          string `gorm:"column:nil_label" json:"nil_label"`
	TotalFamilies  int    `gorm:"column:totale_famiglie" json:"totale_famiglie"`
	FamilyTypes    int    `gorm:"column:tipi_famiglia" json:"tipi_famiglia"`
	AgeClasses     int    `gorm:"column:classi_eta" json:"classi_eta"`
}

// FamilyYearTotal is the per-year household total for one NIL, used by
// the neighborhood detail time series.
type FamilyYearTotal struct {
	Year          int    `gorm:"column:anno" json:"anno"`
	Name          string `gorm:"column:nil_name" json:"nil"`
	Label         string `gorm:"column:nil_label" json:"nil_label"`
	TotalFamilies int    `gorm:"column:totale_famiglie" json:"totale_famiglie"`
}

// BreakdownEntry is one slice of a single-dimension breakdown (family
// type, age class, citizenship) for one NIL and year.
type BreakdownEntry struct {
	Value string `gorm:"column:valore" json:"valore"`
	Total int    `gorm:"column:totale" json:"totale"`
}
