package enrich

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/pkg/workerpool"
)

const (
	defaultBatchSize = 1000
	// The enrichment service is authoritative and retries would change
	// results, so the per-request timeout stays generous.
	defaultRequestTimeout = 2 * time.Minute
)

// Gateway fans transaction lookups out to a Source in fixed-size batches.
// Lookups within a batch run concurrently; batches are processed
// sequentially to bound peak concurrency and memory. A failed lookup is
// logged and skipped, leaving the transaction absent from the result so the
// refinement stage treats it as classified but unrefined. No failure short
// of context cancellation aborts the overall run.
type Gateway struct {
	source         Source
	metrics        GatewayMetrics
	logger         *zap.Logger
	batchSize      int
	requestTimeout time.Duration
}

// NewGateway constructs a Gateway. Non-positive batchSize or requestTimeout
// select the defaults.
func NewGateway(source Source, metrics GatewayMetrics, logger *zap.Logger, batchSize int, requestTimeout time.Duration) *Gateway {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	return &Gateway{
		source:         source,
		metrics:        metrics,
		logger:         logger,
		batchSize:      batchSize,
		requestTimeout: requestTimeout,
	}
}

// EnrichAll resolves input values for the given transactions and returns the
// enriched copies keyed by txid. Transactions whose lookup failed are
// missing from the map.
func (g *Gateway) EnrichAll(ctx context.Context, txs []model.Transaction) (map[string]model.Transaction, error) {
	result := make(map[string]model.Transaction, len(txs))

	for start := 0; start < len(txs); start += g.batchSize {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		end := start + g.batchSize
		if end > len(txs) {
			end = len(txs)
		}
		batch := txs[start:end]

		failed, err := g.enrichBatch(ctx, batch, result)
		if err != nil {
			return result, err
		}
		if failed > 0 {
			g.logger.Warn("enrichment batch incomplete",
				zap.Int("batch_size", len(batch)),
				zap.Int("failed", failed))
		}
		g.logger.Debug("enrichment batch done",
			zap.Int("done", end),
			zap.Int("total", len(txs)))
	}

	return result, nil
}

func (g *Gateway) enrichBatch(ctx context.Context, batch []model.Transaction, result map[string]model.Transaction) (int, error) {
	started := time.Now()
	var (
		mu     sync.Mutex
		failed int
	)

	err := workerpool.Process(ctx, len(batch), batch, func(ctx context.Context, tx model.Transaction) error {
		enriched, lookupErr := g.lookup(ctx, tx)

		mu.Lock()
		defer mu.Unlock()
		if lookupErr != nil {
			// A timeout or remote failure loses this transaction only;
			// cancellation of the run is surfaced via ctx below.
			failed++
			g.logger.Warn("enrich transaction failed",
				zap.String("txid", tx.TxID),
				zap.Error(lookupErr))
			return nil
		}
		result[enriched.TxID] = enriched
		return nil
	}, nil)

	if g.metrics != nil {
		g.metrics.ObserveBatch(failed, len(batch), started)
	}
	if err != nil {
		return failed, err
	}
	return failed, ctx.Err()
}

func (g *Gateway) lookup(ctx context.Context, tx model.Transaction) (enriched model.Transaction, err error) {
	started := time.Now()
	defer func() {
		if g.metrics != nil {
			g.metrics.ObserveLookup(err, started)
		}
	}()

	lookupCtx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()
	return g.source.EnrichTransaction(lookupCtx, tx)
}
