// Package refiner drives the second-pass refinement over stored first-pass
// detections: candidates are enriched with input spend values, run through
// the per-protocol false-positive filters and, when accepted, persisted as
// refined CoinJoins.
package refiner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/refine"
	"github.com/goodnatureofminers/coinjoinscan-backend/pkg/safe"
)

// RefinerService refines both protocols in one run. Protocol runs are
// independent: a Samourai failure does not block the Wasabi pass.
type RefinerService struct {
	repo     ClickhouseRepository
	enricher Enricher
	samourai SamouraiRefiner
	wasabi   WasabiRefiner
	metrics  RefinerMetrics
	network  model.Network
	logger   *zap.Logger
}

func NewRefinerService(
	repo ClickhouseRepository,
	enricher Enricher,
	samourai SamouraiRefiner,
	wasabi WasabiRefiner,
	metrics RefinerMetrics,
	network model.Network,
	logger *zap.Logger,
) (*RefinerService, error) {
	if metrics == nil {
		return nil, fmt.Errorf("metrics is nil")
	}
	return &RefinerService{
		repo:     repo,
		enricher: enricher,
		samourai: samourai,
		wasabi:   wasabi,
		metrics:  metrics,
		network:  network,
		logger:   logger.Named("refiner"),
	}, nil
}

// Run refines Samourai then Wasabi candidates. Enrichment gaps leave
// individual candidates unrefined; only repository and context errors fail
// a protocol pass.
func (s *RefinerService) Run(ctx context.Context) error {
	samouraiErr := s.refineSamourai(ctx)
	if samouraiErr != nil {
		s.logger.Error("samourai refinement failed", zap.Error(samouraiErr))
	}

	if err := s.refineWasabi(ctx); err != nil {
		return fmt.Errorf("refine wasabi: %w", err)
	}
	if samouraiErr != nil {
		return fmt.Errorf("refine samourai: %w", samouraiErr)
	}
	return nil
}

func (s *RefinerService) refineSamourai(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRun(string(model.KindSamourai), err, started)
	}()

	detections, err := s.repo.DetectionsByProtocol(ctx, s.network, model.KindSamourai)
	if err != nil {
		return fmt.Errorf("load samourai detections: %w", err)
	}
	if len(detections) == 0 {
		s.logger.Info("no samourai candidates to refine")
		return nil
	}

	enriched, err := s.enrichDetections(ctx, detections)
	if err != nil {
		return fmt.Errorf("enrich samourai candidates: %w", err)
	}

	var (
		refined   []model.RefinedTransaction
		outpoints []model.Tx0Outpoint
		unrefined int
	)
	for _, d := range detections {
		tx, ok := enriched[d.Tx.TxID]
		if !ok {
			unrefined++
			s.metrics.ObserveVerdict(string(model.KindSamourai), outcomeUnrefined)
			continue
		}

		verdict := s.samourai.Refine(tx)
		if !verdict.Accepted {
			s.metrics.ObserveVerdict(string(model.KindSamourai), outcomeRejected)
			continue
		}
		s.metrics.ObserveVerdict(string(model.KindSamourai), outcomeAccepted)

		row, convErr := samouraiRefined(tx, d.Classification, verdict)
		if convErr != nil {
			return fmt.Errorf("convert samourai verdict for %s: %w", tx.TxID, convErr)
		}
		refined = append(refined, row)
		for _, op := range verdict.Tx0Outpoints {
			outpoints = append(outpoints, model.Tx0Outpoint{
				Network:     tx.Network,
				TxID:        tx.TxID,
				PrevTxID:    op.TxID,
				PrevVout:    op.Index,
				BlockHeight: tx.BlockHeight,
			})
		}
	}

	if len(refined) > 0 {
		if err = s.repo.InsertRefinedTransactions(ctx, refined); err != nil {
			return fmt.Errorf("insert refined samourai transactions: %w", err)
		}
	}
	if len(outpoints) > 0 {
		if err = s.repo.InsertTx0Outpoints(ctx, outpoints); err != nil {
			return fmt.Errorf("insert tx0 outpoints: %w", err)
		}
	}

	s.logger.Info("samourai refinement done",
		zap.Int("candidates", len(detections)),
		zap.Int("accepted", len(refined)),
		zap.Int("unrefined", unrefined),
		zap.Int("tx0_outpoints", len(outpoints)))
	return nil
}

func (s *RefinerService) refineWasabi(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRun(string(model.KindWasabi), err, started)
	}()

	detections, err := s.repo.DetectionsByProtocol(ctx, s.network, model.KindWasabi)
	if err != nil {
		return fmt.Errorf("load wasabi detections: %w", err)
	}
	if len(detections) == 0 {
		s.logger.Info("no wasabi candidates to refine")
		return nil
	}

	enriched, err := s.enrichDetections(ctx, detections)
	if err != nil {
		return fmt.Errorf("enrich wasabi candidates: %w", err)
	}

	ledger := refine.NewLedger()
	var refined []model.RefinedTransaction
	for _, d := range detections {
		ledger.ObserveTotal()

		tx, ok := enriched[d.Tx.TxID]
		if !ok {
			ledger.ObserveUnrefined()
			s.metrics.ObserveVerdict(string(model.KindWasabi), outcomeUnrefined)
			continue
		}

		verdict := s.wasabi.Refine(tx, d.Classification)
		ledger.ObserveVerdict(verdict)
		s.metrics.ObserveVerdict(string(model.KindWasabi), string(verdict.Disposition))
		if verdict.Reason != model.FilterNone && d.Classification.HasDetail(model.DetailCoordAddress) {
			// A filtered coordinator-address detection means the static
			// coordinator heuristic misfired; worth a closer look.
			s.logger.Warn("coordinator address detection filtered",
				zap.String("txid", tx.TxID),
				zap.String("reason", string(verdict.Reason)))
		}
		if !verdict.Accepted {
			continue
		}
		refined = append(refined, model.RefinedTransaction{
			Network:     tx.Network,
			TxID:        tx.TxID,
			BlockHeight: tx.BlockHeight,
			Timestamp:   tx.Timestamp,
			Protocol:    model.KindWasabi,
			Details:     d.Classification.Details,
			Disposition: verdict.Disposition,
			InputValues: inputValues(tx),
		})
	}

	if len(refined) > 0 {
		if err = s.repo.InsertRefinedTransactions(ctx, refined); err != nil {
			return fmt.Errorf("insert refined wasabi transactions: %w", err)
		}
	}

	stats := ledger.Stats()
	s.logger.Info("wasabi refinement done", stats.Fields()...)
	if !ledger.Reconcile() {
		s.logger.Warn("wasabi filter counters do not reconcile", stats.Fields()...)
	}
	return nil
}

func (s *RefinerService) enrichDetections(ctx context.Context, detections []model.Detection) (map[string]model.Transaction, error) {
	txs := make([]model.Transaction, 0, len(detections))
	for _, d := range detections {
		txs = append(txs, d.Tx)
	}
	return s.enricher.EnrichAll(ctx, txs)
}

func samouraiRefined(tx model.Transaction, first model.Classification, v model.SamouraiVerdict) (model.RefinedTransaction, error) {
	remix, err := safe.Uint32(v.RemixCount)
	if err != nil {
		return model.RefinedTransaction{}, fmt.Errorf("remix count: %w", err)
	}
	premix, err := safe.Uint32(v.PremixCount)
	if err != nil {
		return model.RefinedTransaction{}, fmt.Errorf("premix count: %w", err)
	}
	return model.RefinedTransaction{
		Network:     tx.Network,
		TxID:        tx.TxID,
		BlockHeight: tx.BlockHeight,
		Timestamp:   tx.Timestamp,
		Protocol:    model.KindSamourai,
		Details:     first.Details,
		Disposition: model.DispositionTruePositive,
		PoolSize:    v.PoolSize,
		RemixCount:  remix,
		PremixCount: premix,
		InputValues: inputValues(tx),
	}, nil
}

func inputValues(tx model.Transaction) []uint64 {
	values := make([]uint64, len(tx.Inputs))
	for i, in := range tx.Inputs {
		values[i] = in.Value
	}
	return values
}
