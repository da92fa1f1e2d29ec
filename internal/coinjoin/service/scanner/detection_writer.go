package scanner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/pkg/batcher"
)

const (
	blockBatcherCapacity      = 500
	blockBatcherFlushInterval = 30 * time.Second
	blockBatcherFlushRPS      = 1

	detectionFlushThreshold = 1000
	outputFlushThreshold    = 1000
)

type detectionWriter struct {
	repo         ClickhouseRepository
	network      model.Network
	metrics      ScannerMetrics
	logger       *zap.Logger
	blockBatcher *batcher.Batcher[BlockDetections]
}

func newDetectionWriter(repo ClickhouseRepository, network model.Network, metrics ScannerMetrics, logger *zap.Logger) *detectionWriter {
	w := &detectionWriter{
		repo:    repo,
		network: network,
		metrics: metrics,
		logger:  logger,
	}
	w.blockBatcher = batcher.New[BlockDetections](
		logger.Named("blockBatcher"),
		w.flush,
		blockBatcherCapacity,
		blockBatcherFlushInterval,
		blockBatcherFlushRPS,
	)
	return w
}

func (w *detectionWriter) Start(ctx context.Context) {
	w.blockBatcher.Start(ctx)
}

func (w *detectionWriter) Stop() {
	w.blockBatcher.Stop()
}

func (w *detectionWriter) WriteBlock(ctx context.Context, b BlockDetections) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.blockBatcher.Add(ctx, b)
}

func (w *detectionWriter) flush(ctx context.Context, blocks []BlockDetections) (err error) {
	started := time.Now()
	rows := 0
	defer func() {
		w.metrics.ObserveFlush(err, rows, started)
	}()

	detections := make([]model.Detection, 0, len(blocks))
	outputs := make([]model.OutputLookup, 0, len(blocks))

	for _, block := range blocks {
		rows += len(block.Detections)

		detections = append(detections, block.Detections...)
		if len(detections) >= detectionFlushThreshold {
			if err = w.repo.InsertDetections(ctx, detections); err != nil {
				return err
			}
			w.logger.Debug("InsertDetections", zap.Int("count", len(detections)))
			detections = detections[:0]
		}

		outputs = append(outputs, block.Outputs...)
		if len(outputs) >= outputFlushThreshold {
			if err = w.repo.InsertTransactionOutputsLookup(ctx, w.network, outputs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactionOutputsLookup", zap.Int("count", len(outputs)))
			outputs = outputs[:0]
		}
	}

	if err = w.repo.InsertDetections(ctx, detections); err != nil {
		return err
	}
	if err = w.repo.InsertTransactionOutputsLookup(ctx, w.network, outputs); err != nil {
		return err
	}
	return nil
}
