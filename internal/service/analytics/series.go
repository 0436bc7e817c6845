// Package analytics implements the pure analytic transformations over a
// user's entry history: the weighted burnout-risk score, per-indicator
// trend statistics, week-over-week aggregation, weekday-pattern detection,
// and pairwise correlation insights. Every function is a stateless pure
// function of its input slice; callers pass an immutable snapshot and an
// explicit "today" where relevant.
package analytics

import (
	"github.com/heartmarshall/mindlog-backend/internal/domain"
)

// Series extracts one indicator's values from a window, preserving entry order.
func Series(window []domain.Entry, ind domain.Indicator) []float64 {
	values := make([]float64, len(window))
	for i, e := range window {
		values[i] = float64(e.Indicator(ind))
	}
	return values
}
