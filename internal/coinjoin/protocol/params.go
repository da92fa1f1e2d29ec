// Package protocol carries the constant tables of the supported CoinJoin
// protocols. The tables are injected into detectors and refiners at
// construction so tests can substitute fixture values.
package protocol

import "strings"

// SatoshiPerBTC is the number of satoshis in one bitcoin.
const SatoshiPerBTC = 100_000_000

// Params holds every protocol constant the heuristics depend on. Treat a
// Params value as immutable once constructed.
type Params struct {
	// SamouraiFirstBlock is the height of the first on-chain Samourai
	// Whirlpool transaction. Matches below it are false positives.
	SamouraiFirstBlock uint64
	// WhirlpoolSizes lists the fixed Whirlpool pool denominations in
	// satoshis. The 0.001 BTC pool postdates the studied era and is
	// deliberately absent.
	WhirlpoolSizes []uint64
	// MaxPoolFee bounds the fee-inclusive premium a premix input may pay
	// above the pool size.
	MaxPoolFee uint64
	// SamouraiGenesisTxIDs are the known genesis transactions of the main
	// Whirlpool pools, useful context when auditing Tx0 output.
	SamouraiGenesisTxIDs []string

	// WasabiFirstBlock is the height of the first on-chain Wasabi CoinJoin.
	WasabiFirstBlock uint64
	// WasabiFirstBlockNoStaticCoord is the first height at which Wasabi no
	// longer used the static coordinator addresses. Statistical-only
	// matches before it are unreliable.
	WasabiFirstBlockNoStaticCoord uint64
	// WasabiCoordAddresses are the static coordinator fee addresses,
	// compared case-insensitively.
	WasabiCoordAddresses []string
	// WasabiApproxBaseDenom is the nominal Wasabi mixing denomination
	// (0.1 BTC) in satoshis.
	WasabiApproxBaseDenom uint64
	// WasabiMaxPrecision is the allowed deviation of the most frequent
	// output value from the base denomination.
	WasabiMaxPrecision uint64
	// WasabiEdgePrecision is the tighter deviation band applied by the
	// edge-case refinement filter.
	WasabiEdgePrecision uint64
	// WasabiExactValues are round output values whose frequent occurrence
	// marks non-Wasabi mimicry.
	WasabiExactValues []uint64

	// GamblingAddressPrefixes mark outputs paying known gambling services,
	// compared case-insensitively.
	GamblingAddressPrefixes []string
	// GamblingCheckAllOutputs extends the gambling filter to every output.
	// The default false reproduces the historical behavior of inspecting
	// only the first output's addresses.
	GamblingCheckAllOutputs bool
}

// DefaultParams returns the production constant tables.
func DefaultParams() Params {
	return Params{
		SamouraiFirstBlock: 570000,
		WhirlpoolSizes: []uint64{
			0.01 * SatoshiPerBTC,
			0.05 * SatoshiPerBTC,
			0.5 * SatoshiPerBTC,
		},
		MaxPoolFee: 0.0011 * SatoshiPerBTC,
		SamouraiGenesisTxIDs: []string{
			"c6c27bef217583cca5f89de86e0cd7d8b546844f800da91d91a74039c3b40fba",
			"94b0da89431d8bd74f1134d8152ed1c7c4f83375e63bc79f19cf293800a83f52",
			"b42df707a3d876b24a22b0199e18dc39aba2eafa6dbeaaf9dd23d925bb379c59",
		},

		WasabiFirstBlock:              530500,
		WasabiFirstBlockNoStaticCoord: 610000,
		WasabiCoordAddresses: []string{
			"bc1qs604c7jv6amk4cxqlnvuxv26hv3e48cds4m0ew",
			"bc1qa24tsgchvuxsaccp8vrnkfd85hrcpafg20kmjw",
		},
		WasabiApproxBaseDenom: 0.1 * SatoshiPerBTC,
		WasabiMaxPrecision:    0.02 * SatoshiPerBTC,
		WasabiEdgePrecision:   0.015 * SatoshiPerBTC,
		WasabiExactValues: []uint64{
			0.08 * SatoshiPerBTC,
			0.09 * SatoshiPerBTC,
			0.10 * SatoshiPerBTC,
			0.11 * SatoshiPerBTC,
			0.12 * SatoshiPerBTC,
		},

		GamblingAddressPrefixes: []string{"1lucky", "1dice"},
	}
}

// CoordAddressSet returns the coordinator addresses as a lowercase lookup
// set.
func (p Params) CoordAddressSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.WasabiCoordAddresses))
	for _, addr := range p.WasabiCoordAddresses {
		set[strings.ToLower(addr)] = struct{}{}
	}
	return set
}

// WhirlpoolSizeSet returns the pool denominations as a lookup set.
func (p Params) WhirlpoolSizeSet() map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(p.WhirlpoolSizes))
	for _, sz := range p.WhirlpoolSizes {
		set[sz] = struct{}{}
	}
	return set
}
