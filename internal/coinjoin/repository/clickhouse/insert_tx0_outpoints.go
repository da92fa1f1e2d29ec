package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

// InsertTx0Outpoints stores the funding outpoints of accepted Whirlpool
// mixes for follow-up investigation.
func (r *Repository) InsertTx0Outpoints(ctx context.Context, outpoints []model.Tx0Outpoint) error {
	start := time.Now()
	var err error
	defer func() {
		network := model.Network("")
		if len(outpoints) > 0 {
			network = outpoints[0].Network
		}
		r.metrics.Observe("insert_tx0_outpoints", network, err, start)
	}()

	if len(outpoints) == 0 {
		return nil
	}

	const query = `
INSERT INTO coinjoin_tx0_outpoints (
	network,
	txid,
	prev_txid,
	prev_vout,
	block_height
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare tx0 outpoints batch: %w", err)
	}

	for _, op := range outpoints {
		if err = batch.Append(
			string(op.Network),
			op.TxID,
			op.PrevTxID,
			op.PrevVout,
			op.BlockHeight,
		); err != nil {
			return fmt.Errorf("append tx0 outpoint: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert tx0 outpoints: %w", err)
	}
	return nil
}
