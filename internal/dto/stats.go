package dto

// CityTimeseriesPoint is one semester of the citywide average series.
type CityTimeseriesPoint struct {
	Semestre        string  `json:"semestre"`
	Label           string  `json:"label"`
	PrezzoAcquisto  int64   `json:"prezzoAcquisto"`
	PrezzoLocazione float64 `json:"prezzoLocazione"`
}

// MilanoStatsResponse is the citywide statistics payload. The average
// change percentage is null when no previous semester exists.
type MilanoStatsResponse struct {
	Semestre                  string                `json:"semestre"`
	PrezzoMedioAcquisto       int64                 `json:"prezzoMedioAcquisto"`
	PrezzoMedioLocazione      float64               `json:"prezzoMedioLocazione"`
	PrezzoMax                 int64                 `json:"prezzoMax"`
	PrezzoMin                 int64                 `json:"prezzoMin"`
	VariazioneSemestraleMedia *float64              `json:"variazioneSemestraleMedia"`
	TotaleQuartieri           int                   `json:"totaleQuartieri"`
	TimeSeries                []CityTimeseriesPoint `json:"timeSeries"`
}
