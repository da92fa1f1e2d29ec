package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

// DetectionsByProtocol loads every stored detection for a protocol in block
// order, reconstructing the transactions for the refinement pass.
func (r *Repository) DetectionsByProtocol(ctx context.Context, network model.Network, protocol model.Kind) ([]model.Detection, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("detections_by_protocol", network, err, start)
	}()

	const query = `
SELECT
	txid,
	block_height,
	timestamp,
	size,
	details,
	input_prev_txids,
	input_prev_vouts,
	input_coinbase,
	output_values,
	output_addresses
FROM coinjoin_detections
WHERE network = ? AND protocol = ?
ORDER BY block_height ASC, txid ASC`

	rows, err := r.conn.Query(ctx, query, string(network), string(protocol))
	if err != nil {
		return nil, fmt.Errorf("query detections by protocol: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var detections []model.Detection
	for rows.Next() {
		var (
			txid            string
			blockHeight     uint64
			timestamp       time.Time
			size            uint32
			details         string
			prevTxids       []string
			prevVouts       []uint32
			coinbase        []bool
			outputValues    []uint64
			outputAddresses [][]string
		)
		if err = rows.Scan(
			&txid,
			&blockHeight,
			&timestamp,
			&size,
			&details,
			&prevTxids,
			&prevVouts,
			&coinbase,
			&outputValues,
			&outputAddresses,
		); err != nil {
			return nil, fmt.Errorf("scan detection: %w", err)
		}

		if len(prevTxids) != len(prevVouts) || len(prevTxids) != len(coinbase) {
			return nil, fmt.Errorf("detection %s: input column lengths differ", txid)
		}
		if len(outputValues) != len(outputAddresses) {
			return nil, fmt.Errorf("detection %s: output column lengths differ", txid)
		}

		inputs := make([]model.TransactionInput, 0, len(prevTxids))
		for i := range prevTxids {
			inputs = append(inputs, model.TransactionInput{
				PrevTxID:   prevTxids[i],
				PrevVout:   prevVouts[i],
				IsCoinbase: coinbase[i],
			})
		}
		outputs := make([]model.TransactionOutput, 0, len(outputValues))
		for i := range outputValues {
			outputs = append(outputs, model.TransactionOutput{
				Value:     outputValues[i],
				Addresses: outputAddresses[i],
			})
		}

		detections = append(detections, model.Detection{
			Classification: model.Classification{Kind: protocol, Details: details},
			Tx: model.Transaction{
				Network:     network,
				TxID:        txid,
				BlockHeight: blockHeight,
				Timestamp:   timestamp,
				Size:        size,
				Inputs:      inputs,
				Outputs:     outputs,
			},
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate detections: %w", err)
	}

	return detections, nil
}
