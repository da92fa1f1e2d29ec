// Package chain resolves input spend values from previously ingested
// outputs stored in ClickHouse.
package chain

import (
	"context"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// OutputLookupRepository describes the persistence operations the input
// value source needs.
type OutputLookupRepository interface {
	TransactionOutputsLookupByTxIDs(ctx context.Context, network model.Network, txids []string) (map[string][]model.OutputLookup, error)
}
