package chain

import (
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

// ScanBlock is a block prepared for first-pass classification.
type ScanBlock struct {
	Height    uint64
	Hash      string
	Timestamp time.Time
	Txs       []model.Transaction
}
