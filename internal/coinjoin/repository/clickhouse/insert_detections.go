package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

// InsertDetections stores first-pass classifications together with the full
// transaction shape needed to re-run refinement later.
func (r *Repository) InsertDetections(ctx context.Context, detections []model.Detection) error {
	start := time.Now()
	var err error
	defer func() {
		network := model.Network("")
		if len(detections) > 0 {
			network = detections[0].Tx.Network
		}
		r.metrics.Observe("insert_detections", network, err, start)
	}()

	if len(detections) == 0 {
		return nil
	}

	const query = `
INSERT INTO coinjoin_detections (
	network,
	txid,
	block_height,
	timestamp,
	size,
	protocol,
	details,
	input_prev_txids,
	input_prev_vouts,
	input_coinbase,
	output_values,
	output_addresses
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare detections batch: %w", err)
	}

	for _, d := range detections {
		prevTxids := make([]string, 0, len(d.Tx.Inputs))
		prevVouts := make([]uint32, 0, len(d.Tx.Inputs))
		coinbase := make([]bool, 0, len(d.Tx.Inputs))
		for _, in := range d.Tx.Inputs {
			prevTxids = append(prevTxids, in.PrevTxID)
			prevVouts = append(prevVouts, in.PrevVout)
			coinbase = append(coinbase, in.IsCoinbase)
		}

		outputValues := make([]uint64, 0, len(d.Tx.Outputs))
		outputAddresses := make([][]string, 0, len(d.Tx.Outputs))
		for _, out := range d.Tx.Outputs {
			outputValues = append(outputValues, out.Value)
			outputAddresses = append(outputAddresses, out.Addresses)
		}

		if err = batch.Append(
			string(d.Tx.Network),
			d.Tx.TxID,
			d.Tx.BlockHeight,
			d.Tx.Timestamp,
			d.Tx.Size,
			string(d.Classification.Kind),
			d.Classification.Details,
			prevTxids,
			prevVouts,
			coinbase,
			outputValues,
			outputAddresses,
		); err != nil {
			return fmt.Errorf("append detection: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert detections: %w", err)
	}
	return nil
}
