package bitcoin

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/chain"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/pkg/safe"
)

// BlockSource reads blocks from a Bitcoin node and converts them into the
// domain model. A transaction that cannot be converted is logged and
// skipped; a block fetch failure is returned to the caller.
type BlockSource struct {
	rpc     NodeClient
	decoder ScriptDecoder
	network model.Network
	logger  *zap.Logger
}

// NewBlockSource creates a BlockSource for Bitcoin.
func NewBlockSource(rpc NodeClient, decoder ScriptDecoder, network model.Network, logger *zap.Logger) *BlockSource {
	return &BlockSource{
		rpc:     rpc,
		decoder: decoder,
		network: network,
		logger:  logger.Named("block_source"),
	}
}

// LatestHeight returns the latest block height from the node.
func (s *BlockSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves the block at the given height with its transactions.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (*chain.ScanBlock, error) {
	if height > math.MaxInt64 {
		return nil, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	src, err := s.rpc.GetBlockVerboseTx(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	blockHeight, err := safe.Uint64(src.Height)
	if err != nil {
		return nil, fmt.Errorf("block %s height overflow: %w", src.Hash, err)
	}
	timestamp := time.Unix(src.Time, 0).UTC()

	txs := make([]model.Transaction, 0, len(src.Tx))
	for _, tx := range src.Tx {
		converted, err := ConvertTransaction(s.decoder, tx, s.network, blockHeight, timestamp)
		if err != nil {
			s.logger.Warn("skipping malformed transaction",
				zap.Uint64("height", blockHeight),
				zap.String("txid", tx.Txid),
				zap.Error(err))
			continue
		}
		txs = append(txs, converted)
	}

	return &chain.ScanBlock{
		Height:    blockHeight,
		Hash:      src.Hash,
		Timestamp: timestamp,
		Txs:       txs,
	}, nil
}
