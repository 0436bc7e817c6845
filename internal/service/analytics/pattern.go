package analytics

import (
	"fmt"
	"time"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/internal/service/analytics/stats"
)

// minPatternEntries is the minimum history size for weekday-pattern
// detection. Below it the detector returns no insights (not an error).
const minPatternEntries = 7

// Weekday deviation gates, relative to the indicator's overall mean.
const (
	lowWeekdayRatio  = 0.75
	highWeekdayRatio = 1.25
)

// WeekdayPatterns flags weekdays that deviate systematically from an
// indicator's overall mean. Mood and sleep quality are flagged when a
// weekday runs low (mean < 0.75× overall); pressure when a weekday runs
// high (mean > 1.25× overall). Weekdays are grouped Monday-first.
func WeekdayPatterns(history []domain.Entry) []domain.Insight {
	if len(history) < minPatternEntries {
		return nil
	}

	byWeekday := make(map[int][]domain.Entry, 7)
	for _, e := range history {
		byWeekday[weekdayIndex(e.Date)] = append(byWeekday[weekdayIndex(e.Date)], e)
	}

	var insights []domain.Insight

	for _, ind := range []domain.Indicator{domain.IndicatorMood, domain.IndicatorSleepQuality} {
		overall := stats.Mean(Series(history, ind))
		for wd := 0; wd < 7; wd++ {
			entries := byWeekday[wd]
			if len(entries) == 0 {
				continue
			}
			if stats.Mean(Series(entries, ind)) < lowWeekdayRatio*overall {
				insights = append(insights, domain.Insight{
					Icon: "📉",
					Text: fmt.Sprintf("%s is systematically low on %ss", indicatorLabel(ind), weekdayName(wd)),
				})
			}
		}
	}

	overall := stats.Mean(Series(history, domain.IndicatorPressure))
	for wd := 0; wd < 7; wd++ {
		entries := byWeekday[wd]
		if len(entries) == 0 {
			continue
		}
		if stats.Mean(Series(entries, domain.IndicatorPressure)) > highWeekdayRatio*overall {
			insights = append(insights, domain.Insight{
				Icon: "🔺",
				Text: fmt.Sprintf("Pressure is systematically high on %ss", weekdayName(wd)),
			})
		}
	}

	return insights
}

// weekdayIndex maps a date to Monday=0..Sunday=6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func weekdayName(idx int) string {
	// time.Weekday is Sunday=0.
	return time.Weekday((idx + 1) % 7).String()
}

func indicatorLabel(ind domain.Indicator) string {
	switch ind {
	case domain.IndicatorMood:
		return "Mood"
	case domain.IndicatorIrritability:
		return "Irritability"
	case domain.IndicatorSocialBattery:
		return "Social battery"
	case domain.IndicatorSleepQuality:
		return "Sleep quality"
	case domain.IndicatorMentalFog:
		return "Mental clarity"
	case domain.IndicatorPressure:
		return "Pressure"
	}
	return string(ind)
}
