package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

// InsertTransactionOutputsLookup stores outputs of scanned transactions so
// the refinement pass can resolve input spend values locally.
func (r *Repository) InsertTransactionOutputsLookup(ctx context.Context, network model.Network, outputs []model.OutputLookup) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_outputs_lookup", network, err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO coinjoin_transaction_outputs_lookup (
	network,
	txid,
	output_index,
	value,
	addresses
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare outputs lookup batch: %w", err)
	}

	for _, out := range outputs {
		if err = batch.Append(
			string(network),
			out.TxID,
			out.Index,
			out.Value,
			out.Addresses,
		); err != nil {
			return fmt.Errorf("append output lookup: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert outputs lookup: %w", err)
	}
	return nil
}
