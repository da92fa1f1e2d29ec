package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

// TransactionOutputsLookupByTxIDs returns stored outputs for multiple
// transactions keyed by txid.
func (r *Repository) TransactionOutputsLookupByTxIDs(ctx context.Context, network model.Network, txids []string) (map[string][]model.OutputLookup, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_outputs_lookup_by_txids", network, err, start)
	}()

	result := make(map[string][]model.OutputLookup, len(txids))
	if len(txids) == 0 {
		return result, nil
	}

	const query = `
SELECT
	txid,
	output_index,
	anyLast(value) AS value,
	anyLast(addresses) AS addresses
FROM coinjoin_transaction_outputs_lookup
WHERE network = ? AND txid IN ?
GROUP BY
	txid,
	output_index
ORDER BY output_index ASC
SETTINGS max_threads = 1`

	rows, err := r.conn.Query(ctx, query, string(network), txids)
	if err != nil {
		return nil, fmt.Errorf("query outputs lookup by txids: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			txid   string
			output model.OutputLookup
		)
		if err = rows.Scan(
			&txid,
			&output.Index,
			&output.Value,
			&output.Addresses,
		); err != nil {
			return nil, fmt.Errorf("scan output lookup: %w", err)
		}

		output.TxID = txid
		result[txid] = append(result[txid], output)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outputs lookup: %w", err)
	}

	return result, nil
}
