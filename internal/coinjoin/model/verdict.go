package model

// FilterReason names the refinement filter that rejected a Wasabi candidate.
// Filters are mutually exclusive; the first matching filter wins.
type FilterReason string

const (
	FilterNone            FilterReason = ""
	FilterGambling        FilterReason = "gambling"
	FilterDisallowedValue FilterReason = "disallowed_value"
	FilterAddressReuse    FilterReason = "address_reuse"
	FilterExactValue      FilterReason = "exact_value"
	FilterEdgeCaseValue   FilterReason = "edge_case_value"
)

// FilterReasons lists every reason in evaluation priority order.
func FilterReasons() []FilterReason {
	return []FilterReason{
		FilterGambling,
		FilterDisallowedValue,
		FilterAddressReuse,
		FilterExactValue,
		FilterEdgeCaseValue,
	}
}

// Disposition buckets a surviving or filtered Wasabi candidate after the
// filter chain ran, based on the first-pass classification details.
type Disposition string

const (
	DispositionFilteredFalsePositive   Disposition = "fp_filtered"
	DispositionUnfilteredFalsePositive Disposition = "fp_unfiltered"
	DispositionTruePositive            Disposition = "tp"
	DispositionFalseNegative           Disposition = "fn"
	DispositionHeuristicPositive       Disposition = "heuristic_positive"
)

// WasabiVerdict is the final second-pass verdict for a Wasabi candidate.
type WasabiVerdict struct {
	Accepted    bool
	Reason      FilterReason
	Disposition Disposition
}

// SamouraiVerdict is the final second-pass verdict for a Samourai Whirlpool
// candidate. Tx0Outpoints lists the funding inputs of an accepted
// transaction for follow-up investigation.
type SamouraiVerdict struct {
	Accepted     bool
	PoolSize     uint64
	RemixCount   int
	PremixCount  int
	Tx0Outpoints []Outpoint
}
