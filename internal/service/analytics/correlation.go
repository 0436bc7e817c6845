package analytics

import (
	"fmt"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/internal/service/analytics/stats"
)

// minCorrelationEntries is the minimum window size for correlation
// insights. Below it the detector returns no insights (not an error).
const minCorrelationEntries = 5

// correlationThreshold is the minimum |r| for a pair to surface.
const correlationThreshold = 0.5

// correlationPair is one of the fixed indicator pairs the detector checks.
// An insight surfaces only when the computed Pearson correlation matches
// the expected sign and exceeds the magnitude threshold.
type correlationPair struct {
	a, b           domain.Indicator
	expectPositive bool
	text           string
}

// The mental_fog scale is inverse-coded (higher = clearer), so a positive
// sleep↔mental_fog correlation means better sleep, clearer thinking.
var correlationPairs = []correlationPair{
	{domain.IndicatorSleepQuality, domain.IndicatorMood, true,
		"Better sleep tracks with better mood"},
	{domain.IndicatorPressure, domain.IndicatorMood, false,
		"Higher pressure tracks with lower mood"},
	{domain.IndicatorPressure, domain.IndicatorIrritability, true,
		"Pressure and irritability rise together"},
	{domain.IndicatorSleepQuality, domain.IndicatorMentalFog, true,
		"Better sleep tracks with clearer thinking"},
	{domain.IndicatorSocialBattery, domain.IndicatorMood, true,
		"Social energy and mood move together"},
}

// CorrelationInsights computes Pearson correlations for the fixed
// indicator pairs over the window and surfaces the ones that confirm
// their expected direction with strength above 0.5.
func CorrelationInsights(window []domain.Entry) []domain.Insight {
	if len(window) < minCorrelationEntries {
		return nil
	}

	var insights []domain.Insight
	for _, pair := range correlationPairs {
		r := stats.Pearson(Series(window, pair.a), Series(window, pair.b))

		if pair.expectPositive && r <= correlationThreshold {
			continue
		}
		if !pair.expectPositive && r >= -correlationThreshold {
			continue
		}

		insights = append(insights, domain.Insight{
			Icon: "🔗",
			Text: fmt.Sprintf("%s (strength %.2f)", pair.text, stats.Round2(r)),
		})
	}
	return insights
}
