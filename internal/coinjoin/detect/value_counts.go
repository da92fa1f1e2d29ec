package detect

import "github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"

// ValueCounts is the occurrence count of each output value in a transaction.
type ValueCounts map[uint64]int

// CountOutputValues tallies output values of a transaction.
func CountOutputValues(outputs []model.TransactionOutput) ValueCounts {
	counts := make(ValueCounts, len(outputs))
	for _, out := range outputs {
		counts[out.Value]++
	}
	return counts
}

// Mode returns the most frequent output value and its count. Ties between
// equally frequent values are broken by the lowest value so the result does
// not depend on map iteration order. Returns ok=false for empty counts.
func (c ValueCounts) Mode() (value uint64, count int, ok bool) {
	for v, n := range c {
		switch {
		case !ok, n > count, n == count && v < value:
			value, count, ok = v, n, true
		}
	}
	return value, count, ok
}

// Distinct returns the number of distinct output values.
func (c ValueCounts) Distinct() int {
	return len(c)
}

// HasCountOf reports whether any value occurs exactly n times.
func (c ValueCounts) HasCountOf(n int) bool {
	for _, count := range c {
		if count == n {
			return true
		}
	}
	return false
}
