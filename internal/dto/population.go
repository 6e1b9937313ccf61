package dto

import "milano-insights/internal/models"

// PopulationQuery binds the population list endpoint's query string.
// Both filters are optional; nil accepts ids, "Name (id)" labels, or
// free text for the fuzzy resolver.
type PopulationQuery struct {
	Anno int    `query:"anno" validate:"omitempty,gte=2000,lte=2100"`
	Nil  string `query:"nil"`
}

// NilMatchResponse echoes the resolver match that drove a filter.
type NilMatchResponse struct {
	IDNil      int     `json:"idNil"`
	Nil        string  `json:"nil"`
	NilLabel   string  `json:"nilLabel"`
	MatchType  string  `json:"matchType"`
	Confidence float64 `json:"confidence"`
}

// PopulationListResponse is the filtered population payload: raw fact
// rows, per-NIL rollups, and the filter vocabulary for the UI.
type PopulationListResponse struct {
	Data           []models.PopulationRow       `json:"data"`
	Aggregated     []models.PopulationAggregate `json:"aggregated"`
	AvailableYears []int                        `json:"availableYears"`
	AvailableNils  []string                     `json:"availableNils"`
	Total          int                          `json:"total"`
	NilMatch       *NilMatchResponse            `json:"nilMatch"`
}

// MatchInfo is the resolver outcome attached to a detail response.
type MatchInfo struct {
	MatchType  string  `json:"matchType"`
	Confidence float64 `json:"confidence"`
}

// PopulationBreakdown groups the latest-year single-dimension rollups.
type PopulationBreakdown struct {
	Tipologie    []models.BreakdownEntry `json:"tipologie"`
	ClassiEta    []models.BreakdownEntry `json:"classiEta"`
	Cittadinanza []models.BreakdownEntry `json:"cittadinanza"`
}

// PopulationDetailResponse is the per-neighborhood population detail:
// yearly family totals, year-over-year growth (null with fewer than
// two years of data), and latest-year breakdowns.
type PopulationDetailResponse struct {
	Nil                 string                   `json:"nil"`
	NilLabel            string                   `json:"nilLabel"`
	IDNil               int                      `json:"idNil"`
	Match               MatchInfo                `json:"match"`
	LatestYear          int                      `json:"latestYear"`
	TimeSeries          []models.FamilyYearTotal `json:"timeSeries"`
	CrescitaFamiglieYoY *float64                 `json:"crescitaFamiglieYoY"`
	Breakdown           PopulationBreakdown      `json:"breakdown"`
}
