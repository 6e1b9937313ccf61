package models

// Neighborhood is one row of the NIL dimension view. The view is
// maintained by the data pipeline; this deployment only reads it.
type Neighborhood struct {
	ID    int    `gorm:"column:id_nil;primaryKey" json:"idNil"`
	Name  string `gorm:"column:nil_name" json:"nil"`
	Label string `gorm:"column:nil_label" json:"nilLabel"`
}

// TableName points gorm at the dimension view.
func (Neighborhood) TableName() string {
	return "vw_dim_nil"
}

// Match type constants for resolved neighborhood matches.
const (
	MatchTypeID    = "id"
	MatchTypeFuzzy = "fuzzy"
)

// ResolvedMatch is the outcome of fuzzy neighborhood resolution.
// Confidence is a match-strength score in [0,1], not a probability.
type ResolvedMatch struct {
	ID         int     `json:"idNil"`
	Name       string  `json:"nil"`
	Label      string  `json:"nilLabel"`
	MatchType  string  `json:"matchType"`
	Confidence float64 `json:"confidence"`
}
