// Package model defines domain models for CoinJoin detection and refinement.
package model

import "time"

type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Transaction is a fully decoded Bitcoin transaction as consumed by the
// detection pipeline. Instances are treated as read-only once produced;
// enrichment returns a new copy instead of mutating input values in place.
type Transaction struct {
	Network     Network
	TxID        string
	BlockHeight uint64
	Timestamp   time.Time
	Size        uint32
	Inputs      []TransactionInput
	Outputs     []TransactionOutput
}

// TransactionInput references the output consumed by an input. Value and
// ValueKnown are populated by the enrichment gateway; a freshly scanned
// transaction carries outpoints only.
type TransactionInput struct {
	PrevTxID   string
	PrevVout   uint32
	IsCoinbase bool
	Value      uint64
	ValueKnown bool
}

// TransactionOutput carries the output value in satoshis and zero or more
// destination addresses. Multi-address outputs (bare multisig) are rare but
// occur on-chain and must be handled.
type TransactionOutput struct {
	Value     uint64
	Addresses []string
}

// Outpoint identifies a transaction output by (txid, index).
type Outpoint struct {
	TxID  string
	Index uint32
}

// OutputLookup is a previously stored transaction output consulted when
// resolving input spend values during enrichment.
type OutputLookup struct {
	TxID      string
	Index     uint32
	Value     uint64
	Addresses []string
}

// IsCoinbase reports whether the transaction is a coinbase transaction.
func (t Transaction) IsCoinbase() bool {
	return len(t.Inputs) == 1 && t.Inputs[0].IsCoinbase
}

// InputsResolved reports whether every non-coinbase input carries a resolved
// spend value. Refinement requires fully resolved transactions.
func (t Transaction) InputsResolved() bool {
	for _, in := range t.Inputs {
		if in.IsCoinbase {
			continue
		}
		if !in.ValueKnown {
			return false
		}
	}
	return true
}
