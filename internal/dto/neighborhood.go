package dto

// Neighborhood price DTOs. JSON field names follow the dashboard's
// Italian vocabulary: prezzo (price), acquisto (purchase), locazione
// (rent), variazione (change), semestre (half-year period).

// NeighborhoodPriceResponse is one entry of the latest-price list.
// Purchase prices are whole euros per square meter, rents and change
// percentages carry two decimals. Quartiere is only set for fallback
// records whose OMI zone has no curated NIL mapping.
type NeighborhoodPriceResponse struct {
	QuartiereID          string  `json:"quartiereId"`
	Quartiere            string  `json:"quartiere,omitempty"`
	PrezzoAcquistoMedio  int64   `json:"prezzoAcquistoMedio"`
	PrezzoLocazioneMedio float64 `json:"prezzoLocazioneMedio"`
	VariazioneSemestrale float64 `json:"variazioneSemestrale"`
	OmiZone              string  `json:"omiZone"`
}

// TimeseriesPoint is one semester of a neighborhood price series.
type TimeseriesPoint struct {
	Semestre        string  `json:"semestre"`
	Anno            int     `json:"anno"`
	Periodo         string  `json:"periodo"`
	Label           string  `json:"label"`
	PrezzoAcquisto  int64   `json:"prezzoAcquisto"`
	PrezzoLocazione float64 `json:"prezzoLocazione"`
}

// TimeseriesResponse is the full semester series for one neighborhood
// identifier.
type TimeseriesResponse struct {
	Quartiere   string            `json:"quartiere"`
	QuartiereID string            `json:"quartiereId"`
	Data        []TimeseriesPoint `json:"data"`
}

// CompareQuery binds the comparison endpoint's query string.
type CompareQuery struct {
	IDs string `query:"ids" validate:"required"`
}

// SemesterResponse is one selectable semester with its display label.
type SemesterResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ResolveQuery binds the resolver endpoint's query string.
type ResolveQuery struct {
	Q string `query:"q" validate:"required,min=1"`
}

// ResolveResponse is a resolved neighborhood match plus whether the
// neighborhood is covered by OMI price data at all.
type ResolveResponse struct {
	IDNil        int     `json:"idNil"`
	Nil          string  `json:"nil"`
	NilLabel     string  `json:"nilLabel"`
	MatchType    string  `json:"matchType"`
	Confidence   float64 `json:"confidence"`
	HasPriceData bool    `json:"hasPriceData"`
}

// ZoneNeighborhoodsResponse maps one OMI zone name to its curated
// neighborhood ids. FallbackID is the single synthetic identifier used
// when the zone has no curated mapping.
type ZoneNeighborhoodsResponse struct {
	Zone       string   `json:"zone"`
	NilIDs     []string `json:"nilIds"`
	FallbackID string   `json:"fallbackId,omitempty"`
	HasMapping bool     `json:"hasMapping"`
}

// HealthDatabase reports store connectivity for the health endpoint.
type HealthDatabase struct {
	Connected bool   `json:"connected"`
	Driver    string `json:"driver"`
	Error     string `json:"error,omitempty"`
}

// HealthData reports the latest pipeline sync, when available.
type HealthData struct {
	Source   string `json:"source"`
	LastSync string `json:"lastSync"`
	Status   string `json:"status"`
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Database  HealthDatabase `json:"database"`
	Data      *HealthData    `json:"data,omitempty"`
}

// ReloadIndexResponse reports the outcome of an index rebuild.
type ReloadIndexResponse struct {
	Message string `json:"message"`
	Entries int    `json:"entries"`
}
