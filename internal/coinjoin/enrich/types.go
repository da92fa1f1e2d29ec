// Package enrich implements the bounded-concurrency, chunked enrichment
// contract between the pipeline and the service resolving input values.
package enrich

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source resolves the spend value of every input of one transaction,
	// returning an enriched copy and leaving the argument untouched.
	Source interface {
		EnrichTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error)
	}

	// GatewayMetrics records enrichment gateway metrics.
	GatewayMetrics interface {
		ObserveBatch(failed int, size int, started time.Time)
		ObserveLookup(err error, started time.Time)
	}
)
