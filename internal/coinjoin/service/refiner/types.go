package refiner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Enricher resolves input spend values for a set of transactions.
	Enricher interface {
		EnrichAll(ctx context.Context, txs []model.Transaction) (map[string]model.Transaction, error)
	}

	// SamouraiRefiner is the second-pass Whirlpool verdict.
	SamouraiRefiner interface {
		Refine(tx model.Transaction) model.SamouraiVerdict
	}

	// WasabiRefiner is the second-pass Wasabi verdict.
	WasabiRefiner interface {
		Refine(tx model.Transaction, first model.Classification) model.WasabiVerdict
	}

	// RefinerMetrics records metrics for refinement runs.
	RefinerMetrics interface {
		ObserveRun(protocol string, err error, started time.Time)
		ObserveVerdict(protocol, outcome string)
	}

	// ClickhouseRepository loads detections and persists verdicts.
	ClickhouseRepository interface {
		DetectionsByProtocol(ctx context.Context, network model.Network, protocol model.Kind) ([]model.Detection, error)
		InsertRefinedTransactions(ctx context.Context, txs []model.RefinedTransaction) error
		InsertTx0Outpoints(ctx context.Context, outpoints []model.Tx0Outpoint) error
	}
)

// Verdict outcome labels used for metrics beyond the Wasabi dispositions.
const (
	outcomeUnrefined = "unrefined"
	outcomeAccepted  = "accepted"
	outcomeRejected  = "rejected"
)
