package model

import "time"

// RefinedTransaction is an accepted CoinJoin after second-pass refinement,
// shaped for persistence.
type RefinedTransaction struct {
	Network     Network
	TxID        string
	BlockHeight uint64
	Timestamp   time.Time
	Protocol    Kind
	Details     string
	Disposition Disposition
	PoolSize    uint64
	RemixCount  uint32
	PremixCount uint32
	// InputValues carries the resolved spend value of every input in input
	// order, so accepted output can be audited without re-enriching.
	InputValues []uint64
}

// Tx0Outpoint links an accepted Whirlpool mix to one of the funding
// outpoints it consumed.
type Tx0Outpoint struct {
	Network     Network
	TxID        string
	PrevTxID    string
	PrevVout    uint32
	BlockHeight uint64
}
