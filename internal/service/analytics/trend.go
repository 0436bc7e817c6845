package analytics

import (
	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/internal/service/analytics/stats"
)

// minTrendPoints is the minimum window size for a trend-direction fit.
// Below it the direction is INSUFFICIENT_DATA, never a spurious label.
const minTrendPoints = 3

// slopeEpsilon separates "rising"/"falling" from "stable".
const slopeEpsilon = 0.1

// Summarize computes per-indicator mean, first-vs-last delta, and trend
// direction over a window, in canonical indicator order.
func Summarize(window []domain.Entry) []domain.IndicatorSummary {
	summaries := make([]domain.IndicatorSummary, 0, len(domain.Indicators()))
	for _, ind := range domain.Indicators() {
		values := Series(window, ind)

		var delta int
		if len(window) > 1 {
			delta = window[len(window)-1].Indicator(ind) - window[0].Indicator(ind)
		}

		summaries = append(summaries, domain.IndicatorSummary{
			Indicator: ind,
			Mean:      stats.Mean(values),
			Delta:     delta,
			Direction: Direction(values),
		})
	}
	return summaries
}

// Direction labels the least-squares slope of a series.
func Direction(values []float64) domain.TrendDirection {
	if len(values) < minTrendPoints {
		return domain.TrendInsufficient
	}
	slope := stats.Slope(values)
	switch {
	case slope > slopeEpsilon:
		return domain.TrendRising
	case slope < -slopeEpsilon:
		return domain.TrendFalling
	default:
		return domain.TrendStable
	}
}
