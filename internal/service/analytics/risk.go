package analytics

import (
	"math"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/internal/service/analytics/stats"
)

// riskTailSize is the number of trailing entries the score is computed
// over. Distinct from the alert composer's 3-entry tail.
const riskTailSize = 5

// Band thresholds. Boundaries are exact: 69 is ATTENTION, 70 is HIGH_RISK.
const (
	highRiskThreshold  = 70
	attentionThreshold = 40
)

// riskWeights are the fixed per-indicator weights of the composite score.
var riskWeights = map[domain.Indicator]float64{
	domain.IndicatorPressure:      2.0,
	domain.IndicatorMood:          2.0,
	domain.IndicatorSleepQuality:  1.5,
	domain.IndicatorIrritability:  1.5,
	domain.IndicatorSocialBattery: 1.0,
	domain.IndicatorMentalFog:     1.0,
}

// Score computes the weighted composite burnout-risk percentage over the
// last five entries of the window (all of them if fewer). Direct-risk
// indicators contribute mean/5; inverse-risk indicators contribute
// (5-mean)/5. An empty window yields score 0 with the NO_DATA band, never
// STABLE, so "no data" is never mistaken for "healthy".
func Score(window []domain.Entry) domain.RiskAssessment {
	if len(window) == 0 {
		return domain.RiskAssessment{Score: 0, Band: domain.RiskBandNoData}
	}

	var weighted, totalWeight float64
	for _, ind := range domain.Indicators() {
		tail := stats.Tail(Series(window, ind), riskTailSize)
		mean := stats.Mean(tail)

		var contribution float64
		if ind.DirectRisk() {
			contribution = mean / float64(domain.MaxIndicatorValue)
		} else {
			contribution = (float64(domain.MaxIndicatorValue) - mean) / float64(domain.MaxIndicatorValue)
		}

		w := riskWeights[ind]
		weighted += contribution * w
		totalWeight += w
	}

	score := int(math.Round(100 * weighted / totalWeight))

	return domain.RiskAssessment{Score: score, Band: Band(score)}
}

// Band classifies a score into its severity band.
func Band(score int) domain.RiskBand {
	switch {
	case score >= highRiskThreshold:
		return domain.RiskBandHighRisk
	case score >= attentionThreshold:
		return domain.RiskBandAttention
	default:
		return domain.RiskBandStable
	}
}
