package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

// InsertRefinedTransactions stores accepted CoinJoins after the second pass.
func (r *Repository) InsertRefinedTransactions(ctx context.Context, txs []model.RefinedTransaction) error {
	start := time.Now()
	var err error
	defer func() {
		network := model.Network("")
		if len(txs) > 0 {
			network = txs[0].Network
		}
		r.metrics.Observe("insert_refined_transactions", network, err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO coinjoin_refined_transactions (
	network,
	txid,
	block_height,
	timestamp,
	protocol,
	details,
	disposition,
	pool_size,
	remix_count,
	premix_count,
	input_values
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare refined transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			string(tx.Network),
			tx.TxID,
			tx.BlockHeight,
			tx.Timestamp,
			string(tx.Protocol),
			tx.Details,
			string(tx.Disposition),
			tx.PoolSize,
			tx.RemixCount,
			tx.PremixCount,
			tx.InputValues,
		); err != nil {
			return fmt.Errorf("append refined transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert refined transactions: %w", err)
	}
	return nil
}
