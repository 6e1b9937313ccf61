package geo

import "github.com/shopspring/decimal"

// PriceFields carries the already-computed price figures for one OMI
// zone and semester. Variation against the previous semester is
// computed by the caller before distribution.
type PriceFields struct {
	PurchasePerSqm decimal.Decimal
	RentPerSqm     decimal.Decimal
	ChangePercent  decimal.Decimal
	Semester       string
}

// NeighborhoodPrice is one distributed price record keyed by NIL slug
// (or legacy fallback slug for unmapped zones).
type NeighborhoodPrice struct {
	NeighborhoodID string
	SourceZone     string // canonical OMI zone name
	Fallback       bool   // true when no curated mapping existed
	PriceFields
}

// DistributeZonePrice expands one zone price row into one record per
// covered NIL. The full zone value is duplicated to every NIL, not
// split or area-weighted. Zones absent from the curated mapping emit
// exactly one fallback record under the legacy 1:1 identifier, so no
// zone row is ever dropped.
func DistributeZonePrice(rawZoneName string, fields PriceFields) []NeighborhoodPrice {
	canonical := CanonicalizeZoneName(rawZoneName)
	nilIDs := LookupNeighborhoods(canonical)

	if len(nilIDs) == 0 {
		return []NeighborhoodPrice{{
			NeighborhoodID: LookupLegacyID(rawZoneName),
			SourceZone:     canonical,
			Fallback:       true,
			PriceFields:    fields,
		}}
	}

	records := make([]NeighborhoodPrice, 0, len(nilIDs))
	for _, nilID := range nilIDs {
		records = append(records, NeighborhoodPrice{
			NeighborhoodID: nilID,
			SourceZone:     canonical,
			PriceFields:    fields,
		})
	}
	return records
}
