package chain

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

// InputValueSource enriches transactions from the outputs-lookup table. It
// satisfies the enrichment gateway's Source contract without any remote
// dependency when a fully ingested UTXO set is available locally.
type InputValueSource struct {
	repo    OutputLookupRepository
	network model.Network
}

// NewInputValueSource constructs an InputValueSource for one network.
func NewInputValueSource(repo OutputLookupRepository, network model.Network) *InputValueSource {
	return &InputValueSource{repo: repo, network: network}
}

// EnrichTransaction returns a copy of tx whose inputs carry the value of the
// output they consume. A missing referenced output fails the whole lookup:
// a partially resolved transaction cannot be refined.
func (s *InputValueSource) EnrichTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	prevTxIDs := make([]string, 0, len(tx.Inputs))
	seen := make(map[string]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if in.IsCoinbase {
			continue
		}
		if _, dup := seen[in.PrevTxID]; dup {
			continue
		}
		seen[in.PrevTxID] = struct{}{}
		prevTxIDs = append(prevTxIDs, in.PrevTxID)
	}

	outputs, err := s.repo.TransactionOutputsLookupByTxIDs(ctx, s.network, prevTxIDs)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("lookup prev outputs for tx %s: %w", tx.TxID, err)
	}

	enriched := tx
	enriched.Inputs = append([]model.TransactionInput(nil), tx.Inputs...)
	for i := range enriched.Inputs {
		in := &enriched.Inputs[i]
		if in.IsCoinbase {
			continue
		}
		value, ok := findOutputValue(outputs[in.PrevTxID], in.PrevVout)
		if !ok {
			return model.Transaction{}, fmt.Errorf("tx %s input %d references missing output %s:%d", tx.TxID, i, in.PrevTxID, in.PrevVout)
		}
		in.Value = value
		in.ValueKnown = true
	}
	return enriched, nil
}

func findOutputValue(outputs []model.OutputLookup, index uint32) (uint64, bool) {
	for _, out := range outputs {
		if out.Index == index {
			return out.Value, true
		}
	}
	return 0, false
}
