package scanner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/pkg/safe"
	"github.com/goodnatureofminers/coinjoinscan-backend/pkg/workerpool"
)

type blockProcessor struct {
	workerCount  int
	source       BlockSource
	classifier   Classifier
	writer       DetectionWriter
	metrics      ScannerMetrics
	logger       *zap.Logger
	cancelWriter func()
}

func (p *blockProcessor) SetCancelWriter(cancel func()) {
	p.cancelWriter = cancel
}

func (p *blockProcessor) Process(ctx context.Context, heights []uint64) error {
	return workerpool.Process(ctx, p.workerCount, heights, p.processHeight, p.cancelWriter)
}

func (p *blockProcessor) processHeight(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveHeight(err, started)
	}()

	block, err := p.source.FetchBlock(ctx, height)
	if err != nil {
		p.logger.Error("fetch block failed", zap.Uint64("height", height), zap.Error(err))
		return fmt.Errorf("fetch block height %d: %w", height, err)
	}

	result := BlockDetections{Height: block.Height}
	for _, tx := range block.Txs {
		for idx, out := range tx.Outputs {
			index, convErr := safe.Uint32(idx)
			if convErr != nil {
				return fmt.Errorf("output index of tx %s: %w", tx.TxID, convErr)
			}
			result.Outputs = append(result.Outputs, model.OutputLookup{
				TxID:      tx.TxID,
				Index:     index,
				Value:     out.Value,
				Addresses: out.Addresses,
			})
		}

		classification := p.classifier.Classify(tx)
		if classification.Kind == model.KindNone {
			continue
		}
		p.metrics.ObserveDetection(string(classification.Kind))
		result.Detections = append(result.Detections, model.Detection{
			Classification: classification,
			Tx:             tx,
		})
	}

	if err = p.writer.WriteBlock(ctx, result); err != nil {
		p.logger.Error("write block failed", zap.Uint64("height", height), zap.Error(err))
		return fmt.Errorf("write block height %d: %w", height, err)
	}
	return nil
}
