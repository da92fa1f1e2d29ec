package bitcoin

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/pkg/safe"
)

// BtcToSatoshis converts a BTC amount to satoshis with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	return safe.Uint64(int64(amt))
}

// ConvertTransaction maps a verbose RPC transaction into the domain model
// consumed by the detector. Input values are left unresolved; the
// enrichment gateway fills them during the second pass.
func ConvertTransaction(decoder ScriptDecoder, tx btcjson.TxRawResult, network model.Network, blockHeight uint64, blockTime time.Time) (model.Transaction, error) {
	size, err := safe.Uint32(tx.Size)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s size overflow: %w", tx.Txid, err)
	}

	inputs := make([]model.TransactionInput, 0, len(tx.Vin))
	for _, vin := range tx.Vin {
		inputs = append(inputs, model.TransactionInput{
			PrevTxID:   vin.Txid,
			PrevVout:   vin.Vout,
			IsCoinbase: vin.IsCoinBase(),
		})
	}

	outputs := make([]model.TransactionOutput, 0, len(tx.Vout))
	for idx, vout := range tx.Vout {
		if vout.Value < 0 {
			return model.Transaction{}, fmt.Errorf("tx %s output %d negative value: %f", tx.Txid, idx, vout.Value)
		}
		value, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s output %d convert value: %w", tx.Txid, idx, err)
		}
		addresses, err := decoder.decodeAddresses(vout)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("decode addresses for tx %s output %d: %w", tx.Txid, idx, err)
		}
		outputs = append(outputs, model.TransactionOutput{
			Value:     value,
			Addresses: addresses,
		})
	}

	return model.Transaction{
		Network:     network,
		TxID:        tx.Txid,
		BlockHeight: blockHeight,
		Timestamp:   blockTime,
		Size:        size,
		Inputs:      inputs,
		Outputs:     outputs,
	}, nil
}
