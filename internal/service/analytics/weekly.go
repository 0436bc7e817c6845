package analytics

import (
	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/internal/service/analytics/stats"
)

// minWeeklyEntries is the minimum history size for week-over-week
// aggregation to be meaningful.
const minWeeklyEntries = 7

// WeeklyAggregate partitions the full ordered history by ISO calendar week
// (year+week pair, not the raw date) and computes per-indicator means per
// week, in chronological week order. A history with fewer than seven
// entries or fewer than two distinct weeks is reported as insufficient
// instead of producing a single-week "comparison".
func WeeklyAggregate(history []domain.Entry) domain.WeeklyReport {
	if len(history) < minWeeklyEntries {
		return domain.WeeklyReport{Insufficient: true}
	}

	type weekKey struct {
		year int
		week int
	}

	// History arrives date-ordered, so first appearance order is
	// chronological week order.
	var order []weekKey
	groups := make(map[weekKey][]domain.Entry)
	for _, e := range history {
		y, w := e.Date.ISOWeek()
		k := weekKey{year: y, week: w}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}

	if len(order) < 2 {
		return domain.WeeklyReport{Insufficient: true}
	}

	weeks := make([]domain.WeekAggregate, 0, len(order))
	for _, k := range order {
		entries := groups[k]
		means := make(map[domain.Indicator]float64, len(domain.Indicators()))
		for _, ind := range domain.Indicators() {
			means[ind] = stats.Mean(Series(entries, ind))
		}
		weeks = append(weeks, domain.WeekAggregate{
			Year:  k.year,
			Week:  k.week,
			Count: len(entries),
			Means: means,
		})
	}

	return domain.WeeklyReport{Weeks: weeks}
}
