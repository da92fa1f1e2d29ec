package model

import "strings"

// Kind tags which CoinJoin protocol a transaction was attributed to.
type Kind string

var (
	KindNone     Kind = ""
	KindSamourai Kind = "samourai"
	KindWasabi   Kind = "wasabi"
)

// Detail values attached to a Classification. Wasabi classifications join
// DetailCoordAddress and DetailHeuristic with a pipe when both heuristics
// matched.
const (
	DetailCoinbase      = "coinbase"
	DetailHeuristic     = "heuristic"
	DetailCoordAddress  = "coord address"
	DetailFalsePositive = "false positive"

	detailSeparator = "|"
)

// Classification is the first-pass verdict for a single transaction. Callers
// must consult Details, not just Kind: a temporal downgrade keeps the kind
// but rewrites details to DetailFalsePositive.
type Classification struct {
	Kind    Kind
	Details string
}

// JoinDetails combines matched heuristic names in their evaluation order.
func JoinDetails(details ...string) string {
	return strings.Join(details, detailSeparator)
}

// HasDetail reports whether the pipe-joined details field contains the given
// detail.
func (c Classification) HasDetail(detail string) bool {
	for _, d := range strings.Split(c.Details, detailSeparator) {
		if d == detail {
			return true
		}
	}
	return false
}

// IsFalsePositive reports whether the classification was temporally
// downgraded.
func (c Classification) IsFalsePositive() bool {
	return c.Details == DetailFalsePositive
}

// Detection pairs a classification with the transaction it was produced
// from, keyed by txid in pipeline outputs.
type Detection struct {
	Classification Classification
	Tx             Transaction
}
