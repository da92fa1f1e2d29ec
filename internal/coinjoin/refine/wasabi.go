package refine

import (
	"strings"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/detect"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/protocol"
)

// WasabiRefiner runs the ordered false-positive filter chain over enriched
// Wasabi candidates and derives the final disposition from the first-pass
// classification details. Refine is pure and safe for concurrent use.
type WasabiRefiner struct {
	params      protocol.Params
	exactValues map[uint64]struct{}
}

// NewWasabiRefiner builds a WasabiRefiner from the protocol tables.
func NewWasabiRefiner(params protocol.Params) *WasabiRefiner {
	exact := make(map[uint64]struct{}, len(params.WasabiExactValues))
	for _, v := range params.WasabiExactValues {
		exact[v] = struct{}{}
	}
	return &WasabiRefiner{params: params, exactValues: exact}
}

// Refine evaluates the filter chain (first match wins) and, for surviving
// transactions, buckets the candidate by its first-pass details:
//
//   - temporally downgraded detections count as unfiltered false positives
//   - both heuristics matched: true positive
//   - coordinator address only: false negative (the statistical heuristic
//     under-fired)
//   - statistical only: unreliable while the static coordinator was in use
//     (heights within [WasabiFirstBlock, WasabiFirstBlockNoStaticCoord)),
//     counted as unfiltered false positive there; heuristic positive and
//     accepted elsewhere.
func (r *WasabiRefiner) Refine(tx model.Transaction, first model.Classification) model.WasabiVerdict {
	if reason := r.filterReason(tx); reason != model.FilterNone {
		return model.WasabiVerdict{
			Reason:      reason,
			Disposition: model.DispositionFilteredFalsePositive,
		}
	}

	switch {
	case first.IsFalsePositive():
		return model.WasabiVerdict{Disposition: model.DispositionUnfilteredFalsePositive}
	case first.HasDetail(model.DetailCoordAddress) && first.HasDetail(model.DetailHeuristic):
		return model.WasabiVerdict{Accepted: true, Disposition: model.DispositionTruePositive}
	case first.HasDetail(model.DetailCoordAddress):
		return model.WasabiVerdict{Accepted: true, Disposition: model.DispositionFalseNegative}
	default:
		if tx.BlockHeight >= r.params.WasabiFirstBlock && tx.BlockHeight < r.params.WasabiFirstBlockNoStaticCoord {
			return model.WasabiVerdict{Disposition: model.DispositionUnfilteredFalsePositive}
		}
		return model.WasabiVerdict{Accepted: true, Disposition: model.DispositionHeuristicPositive}
	}
}

func (r *WasabiRefiner) filterReason(tx model.Transaction) model.FilterReason {
	counts := detect.CountOutputValues(tx.Outputs)
	modeValue, modeCount, _ := counts.Mode()

	switch {
	case r.usesGamblingAddress(tx):
		return model.FilterGambling
	case modeCount >= 10 && absDiff(modeValue, r.params.WasabiApproxBaseDenom) > r.params.WasabiMaxPrecision:
		return model.FilterDisallowedValue
	case reusesOutputAddress(tx):
		return model.FilterAddressReuse
	case r.usesExactOutputValues(counts):
		return model.FilterExactValue
	case modeCount >= 10 && absDiff(modeValue, r.params.WasabiApproxBaseDenom) > r.params.WasabiEdgePrecision:
		return model.FilterEdgeCaseValue
	default:
		return model.FilterNone
	}
}

// usesGamblingAddress checks output addresses for known gambling-service
// prefixes. Unless GamblingCheckAllOutputs is set, only the first output
// that carries addresses is inspected, reproducing the historical behavior.
func (r *WasabiRefiner) usesGamblingAddress(tx model.Transaction) bool {
	for _, out := range tx.Outputs {
		for _, addr := range out.Addresses {
			lower := strings.ToLower(addr)
			for _, prefix := range r.params.GamblingAddressPrefixes {
				if strings.HasPrefix(lower, prefix) {
					return true
				}
			}
		}
		if !r.params.GamblingCheckAllOutputs && len(out.Addresses) > 0 {
			return false
		}
	}
	return false
}

func reusesOutputAddress(tx model.Transaction) bool {
	seen := make(map[string]struct{})
	for _, out := range tx.Outputs {
		for _, addr := range out.Addresses {
			if _, dup := seen[addr]; dup {
				return true
			}
			seen[addr] = struct{}{}
		}
	}
	return false
}

func (r *WasabiRefiner) usesExactOutputValues(counts detect.ValueCounts) bool {
	for value, count := range counts {
		if count < 10 {
			continue
		}
		if _, exact := r.exactValues[value]; exact {
			return true
		}
	}
	return false
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
