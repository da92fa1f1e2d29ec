package refine

import (
	"sync"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

// Ledger accumulates refinement counters for a single run. Counters read as
// zero until first incremented and are never decremented. All methods are
// safe for concurrent use.
type Ledger struct {
	mu           sync.Mutex
	total        int
	unrefined    int
	filtered     map[model.FilterReason]int
	dispositions map[model.Disposition]int
}

// NewLedger creates an empty ledger scoped to one refinement run.
func NewLedger() *Ledger {
	return &Ledger{
		filtered:     make(map[model.FilterReason]int),
		dispositions: make(map[model.Disposition]int),
	}
}

// ObserveTotal counts a candidate entering the refinement pass.
func (l *Ledger) ObserveTotal() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.total++
}

// ObserveUnrefined counts a candidate that could not be enriched and was
// left classified but unrefined. Unrefined candidates are neither accepted
// nor rejected.
func (l *Ledger) ObserveUnrefined() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.unrefined++
}

// ObserveVerdict records a Wasabi verdict: the disposition bucket always,
// the per-reason filter counter when a filter fired.
func (l *Ledger) ObserveVerdict(v model.WasabiVerdict) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dispositions[v.Disposition]++
	if v.Reason != model.FilterNone {
		l.filtered[v.Reason]++
	}
}

// Stats snapshots the ledger into a fixed report.
func (l *Ledger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Stats{
		Total:             l.total,
		Unrefined:         l.unrefined,
		FilteredByReason:  make(map[model.FilterReason]int, len(l.filtered)),
		Filtered:          l.dispositions[model.DispositionFilteredFalsePositive],
		FalsePositive:     l.dispositions[model.DispositionUnfilteredFalsePositive],
		TruePositive:      l.dispositions[model.DispositionTruePositive],
		FalseNegative:     l.dispositions[model.DispositionFalseNegative],
		HeuristicPositive: l.dispositions[model.DispositionHeuristicPositive],
	}
	for reason, count := range l.filtered {
		s.FilteredByReason[reason] = count
	}
	s.Final = s.Total - s.Filtered - s.Unrefined
	return s
}

// Reconcile cross-checks that the per-reason filter counters sum to the
// filtered disposition count. A mismatch means a filter path was taken that
// the accounting does not know about; it is a diagnostic, never fatal.
func (l *Ledger) Reconcile() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	sum := 0
	for _, count := range l.filtered {
		sum += count
	}
	return sum == l.dispositions[model.DispositionFilteredFalsePositive]
}
