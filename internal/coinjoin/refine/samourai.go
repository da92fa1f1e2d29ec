// Package refine implements the second-pass CoinJoin heuristics. Refiners
// consume enriched transactions whose input values were resolved by the
// enrichment gateway and decide whether a first-pass detection survives.
package refine

import (
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/protocol"
)

// SamouraiRefiner validates Samourai Whirlpool candidates against the
// remix/premix spend structure of a pool transaction. Refine is pure and
// safe for concurrent use.
type SamouraiRefiner struct {
	params       protocol.Params
	whirlpoolSzs map[uint64]struct{}
}

// NewSamouraiRefiner builds a SamouraiRefiner from the protocol tables.
func NewSamouraiRefiner(params protocol.Params) *SamouraiRefiner {
	return &SamouraiRefiner{
		params:       params,
		whirlpoolSzs: params.WhirlpoolSizeSet(),
	}
}

// Refine re-validates the first-pass signature (5-in/5-out, uniform pool
// value) and classifies every input against the pool size sz: remix when the
// resolved value equals sz exactly, premix when it lies in
// (sz, sz+MaxPoolFee]. Only the splits (1 remix, 4 premix), (2,3) and (3,2)
// occur in genuine pool transactions; anything else is a structural false
// positive.
//
// Accepted verdicts carry the outpoints of inputs funded outside the pool
// (value not equal to any pool denomination): those reference Tx0
// transactions and are surfaced for follow-up investigation.
func (r *SamouraiRefiner) Refine(tx model.Transaction) model.SamouraiVerdict {
	if len(tx.Inputs) != 5 || len(tx.Outputs) != 5 {
		return model.SamouraiVerdict{}
	}
	sz := tx.Outputs[0].Value
	for _, out := range tx.Outputs[1:] {
		if out.Value != sz {
			return model.SamouraiVerdict{}
		}
	}
	if _, ok := r.whirlpoolSzs[sz]; !ok {
		return model.SamouraiVerdict{}
	}

	verdict := model.SamouraiVerdict{PoolSize: sz}
	for _, in := range tx.Inputs {
		switch {
		case in.Value == sz:
			verdict.RemixCount++
		case in.Value > sz && in.Value <= sz+r.params.MaxPoolFee:
			verdict.PremixCount++
		}
	}

	verdict.Accepted = (verdict.RemixCount == 1 && verdict.PremixCount == 4) ||
		(verdict.RemixCount == 2 && verdict.PremixCount == 3) ||
		(verdict.RemixCount == 3 && verdict.PremixCount == 2)
	if !verdict.Accepted {
		return verdict
	}

	for _, in := range tx.Inputs {
		if _, pool := r.whirlpoolSzs[in.Value]; pool {
			continue
		}
		verdict.Tx0Outpoints = append(verdict.Tx0Outpoints, model.Outpoint{TxID: in.PrevTxID, Index: in.PrevVout})
	}
	return verdict
}
