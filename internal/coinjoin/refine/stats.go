package refine

import (
	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

// Stats is the fixed counter summary reported after a refinement run.
type Stats struct {
	Total             int
	Filtered          int
	FilteredByReason  map[model.FilterReason]int
	Final             int
	Unrefined         int
	FalsePositive     int
	TruePositive      int
	FalseNegative     int
	HeuristicPositive int
}

// Fields renders the summary as structured log fields in the report order of
// the original statistics output.
func (s Stats) Fields() []zap.Field {
	fields := []zap.Field{
		zap.Int("total", s.Total),
		zap.Int("filtered", s.Filtered),
	}
	for _, reason := range model.FilterReasons() {
		fields = append(fields, zap.Int("filtered_"+string(reason), s.FilteredByReason[reason]))
	}
	return append(fields,
		zap.Int("final", s.Final),
		zap.Int("unrefined", s.Unrefined),
		zap.Int("false_positive", s.FalsePositive),
		zap.Int("true_positive", s.TruePositive),
		zap.Int("false_negative", s.FalseNegative),
		zap.Int("heuristic_positive", s.HeuristicPositive),
	)
}
