// Package scanner implements the first-pass CoinJoin scan over a block
// height range.
package scanner

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

const (
	defaultWorkerCount = 16

	// progressChunkSize bounds how many heights are dispatched to the
	// worker pool at once and doubles as the progress logging interval.
	progressChunkSize = 1000
)

type ScannerService struct {
	logger          *zap.Logger
	network         model.Network
	source          BlockSource
	startHeight     uint64
	endHeight       uint64
	blockProcessor  BlockProcessor
	detectionWriter DetectionWriter
}

func NewScannerService(
	repo ClickhouseRepository,
	source BlockSource,
	classifier Classifier,
	metrics ScannerMetrics,
	network model.Network,
	startHeight, endHeight uint64,
	logger *zap.Logger,
) (*ScannerService, error) {
	logger = logger.With(zap.String("network", string(network)))
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}

	dw := newDetectionWriter(repo, network, metrics, logger)

	return &ScannerService{
		logger:          logger,
		network:         network,
		source:          source,
		startHeight:     startHeight,
		endHeight:       endHeight,
		detectionWriter: dw,
		blockProcessor: &blockProcessor{
			workerCount: defaultWorkerCount,
			source:      source,
			classifier:  classifier,
			writer:      dw,
			metrics:     metrics,
			logger:      logger.Named("blockProcessor"),
		},
	}, nil
}

// Run scans [startHeight, endHeight] once and returns. An endHeight of zero
// means the current chain tip.
func (s *ScannerService) Run(ctx context.Context) error {
	end := s.endHeight
	if end == 0 {
		tip, err := s.source.LatestHeight(ctx)
		if err != nil {
			return fmt.Errorf("resolve chain tip: %w", err)
		}
		end = tip
	}
	if end < s.startHeight {
		return fmt.Errorf("end height %d below start height %d", end, s.startHeight)
	}

	wCtx, wCancel := context.WithCancel(ctx)
	s.blockProcessor.SetCancelWriter(wCancel)

	s.detectionWriter.Start(wCtx)
	defer func() {
		wCancel()
		s.detectionWriter.Stop()
	}()

	s.logger.Info("scanning blocks",
		zap.Uint64("start", s.startHeight),
		zap.Uint64("end", end))

	for from := s.startHeight; from <= end; from += progressChunkSize {
		to := from + progressChunkSize - 1
		if to > end {
			to = end
		}

		heights := make([]uint64, 0, to-from+1)
		for h := from; h <= to; h++ {
			heights = append(heights, h)
		}

		if err := s.blockProcessor.Process(ctx, heights); err != nil {
			s.logger.Error("process heights failed",
				zap.Uint64("from", from),
				zap.Uint64("to", to),
				zap.Error(err))
			return err
		}

		s.logger.Info("scan progress",
			zap.Uint64("height", to),
			zap.Uint64("remaining", end-to))

		if to == end {
			break
		}
	}

	s.logger.Info("scan complete",
		zap.Uint64("start", s.startHeight),
		zap.Uint64("end", end))
	return nil
}
