package scanner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/chain"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource reads blocks from the chain.
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*chain.ScanBlock, error)
	}

	// Classifier is the first-pass CoinJoin detector.
	Classifier interface {
		Classify(tx model.Transaction) model.Classification
	}

	// DetectionWriter buffers per-block scan results and flushes them to
	// storage.
	DetectionWriter interface {
		Start(ctx context.Context)
		Stop()
		WriteBlock(ctx context.Context, b BlockDetections) error
	}

	// BlockProcessor classifies a batch of heights concurrently.
	BlockProcessor interface {
		Process(ctx context.Context, heights []uint64) error
		SetCancelWriter(cancel func())
	}

	// ScannerMetrics records metrics for the scan run.
	ScannerMetrics interface {
		ObserveHeight(err error, started time.Time)
		ObserveFlush(err error, rows int, started time.Time)
		ObserveDetection(protocol string)
	}

	// ClickhouseRepository persists detections and output lookups.
	ClickhouseRepository interface {
		InsertDetections(ctx context.Context, detections []model.Detection) error
		InsertTransactionOutputsLookup(ctx context.Context, network model.Network, outputs []model.OutputLookup) error
	}
)

// BlockDetections is the scan result of a single block.
type BlockDetections struct {
	Height     uint64
	Detections []model.Detection
	Outputs    []model.OutputLookup
}
