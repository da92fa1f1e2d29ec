// Package detect implements the first-pass CoinJoin classification
// heuristics. Classification needs only the transaction itself and its block
// height; input values are not required until refinement.
package detect

import (
	"strings"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/protocol"
)

// Detector classifies transactions as Samourai Whirlpool or Wasabi CoinJoin
// candidates. Classify is pure and safe for concurrent use.
type Detector struct {
	params       protocol.Params
	coordAddrs   map[string]struct{}
	whirlpoolSzs map[uint64]struct{}
}

// NewDetector builds a Detector using the given protocol constant tables.
func NewDetector(params protocol.Params) *Detector {
	return &Detector{
		params:       params,
		coordAddrs:   params.CoordAddressSet(),
		whirlpoolSzs: params.WhirlpoolSizeSet(),
	}
}

// Classify produces exactly one classification for the transaction.
//
// Samourai is evaluated first: its 5-in/5-out uniform-value signature is
// narrower than the Wasabi heuristics, so a transaction matching it is never
// also reported as Wasabi. A match whose height precedes the protocol's
// first on-chain block keeps its kind but is downgraded to a false-positive
// detail; no genuine CoinJoin can predate its protocol.
func (d *Detector) Classify(tx model.Transaction) model.Classification {
	if tx.IsCoinbase() {
		return model.Classification{Kind: model.KindNone, Details: model.DetailCoinbase}
	}

	cls := model.Classification{Kind: model.KindNone}
	switch {
	case d.isPotentialSamouraiCoinJoin(tx):
		cls = model.Classification{Kind: model.KindSamourai, Details: model.DetailHeuristic}
	default:
		if details := d.wasabiDetails(tx); details != "" {
			cls = model.Classification{Kind: model.KindWasabi, Details: details}
		}
	}

	switch {
	case cls.Kind == model.KindSamourai && tx.BlockHeight < d.params.SamouraiFirstBlock:
		cls.Details = model.DetailFalsePositive
	case cls.Kind == model.KindWasabi && tx.BlockHeight < d.params.WasabiFirstBlock:
		cls.Details = model.DetailFalsePositive
	}
	return cls
}

// isPotentialSamouraiCoinJoin requires exactly five inputs and five outputs,
// a single distinct output value, and that value being a Whirlpool pool
// denomination.
func (d *Detector) isPotentialSamouraiCoinJoin(tx model.Transaction) bool {
	if len(tx.Inputs) != 5 || len(tx.Outputs) != 5 {
		return false
	}
	value := tx.Outputs[0].Value
	for _, out := range tx.Outputs[1:] {
		if out.Value != value {
			return false
		}
	}
	_, ok := d.whirlpoolSzs[value]
	return ok
}

// wasabiDetails runs both Wasabi heuristics and joins the names of the ones
// that matched, static coordinator first.
func (d *Detector) wasabiDetails(tx model.Transaction) string {
	matched := make([]string, 0, 2)
	if d.isWasabiCoinJoinStaticCoord(tx) {
		matched = append(matched, model.DetailCoordAddress)
	}
	if d.isWasabiCoinJoinHeuristic(tx) {
		matched = append(matched, model.DetailHeuristic)
	}
	return model.JoinDetails(matched...)
}

// isWasabiCoinJoinStaticCoord matches transactions paying a fee to one of
// the static coordinator addresses while producing at least three
// indistinguishable outputs.
func (d *Detector) isWasabiCoinJoinStaticCoord(tx model.Transaction) bool {
	if len(tx.Outputs) < 3 {
		return false
	}
	hasCoordAddress := false
	counts := make(ValueCounts, len(tx.Outputs))
	for _, out := range tx.Outputs {
		counts[out.Value]++
		for _, addr := range out.Addresses {
			if _, ok := d.coordAddrs[strings.ToLower(addr)]; ok {
				hasCoordAddress = true
			}
		}
	}
	if !hasCoordAddress {
		return false
	}
	_, modeCount, ok := counts.Mode()
	return ok && modeCount > 2
}

// isWasabiCoinJoinHeuristic matches post-static-coordinator CoinJoins:
// at least ten outputs, input count >= mode count >= 10, the mode within
// tolerance of the base denomination, at least one distinct output (the
// coordinator fee) and at least three distinct output values.
func (d *Detector) isWasabiCoinJoinHeuristic(tx model.Transaction) bool {
	if len(tx.Outputs) < 10 {
		return false
	}
	counts := CountOutputValues(tx.Outputs)
	modeValue, modeCount, ok := counts.Mode()
	if !ok {
		return false
	}
	return len(tx.Inputs) >= modeCount && modeCount >= 10 &&
		absDiff(modeValue, d.params.WasabiApproxBaseDenom) <= d.params.WasabiMaxPrecision &&
		counts.HasCountOf(1) &&
		counts.Distinct() >= 3
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
