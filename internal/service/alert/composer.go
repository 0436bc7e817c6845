// Package alert converts scores, patterns, and raw windows into
// severity-tagged alert payloads addressed to a professional observer.
package alert

import (
	"fmt"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/internal/service/analytics"
	"github.com/heartmarshall/mindlog-backend/internal/service/analytics/stats"
)

// breachTailSize is the tail the breach checks run over. Deliberately
// shorter than the risk score's 5-entry tail: breaches react to the most
// recent days only.
const breachTailSize = 3

// highRiskWeightSum is the summed breach weight at which the payload
// escalates from ATTENTION to HIGH_RISK.
const highRiskWeightSum = 4

// breach is one fixed threshold check over the 3-entry tail mean.
type breach struct {
	indicator domain.Indicator
	// high breaches trigger on tail mean >= threshold, low ones on <=.
	high      bool
	threshold float64
	weight    int
	text      string
}

var breaches = []breach{
	{domain.IndicatorPressure, true, 4, 2, "Pressure persistently high"},
	{domain.IndicatorMood, false, 2, 2, "Mood persistently low"},
	{domain.IndicatorSleepQuality, false, 2, 1, "Sleep quality very low"},
	{domain.IndicatorIrritability, true, 4, 1, "Irritability elevated"},
	{domain.IndicatorSocialBattery, false, 2, 1, "Social battery depleted"},
	{domain.IndicatorMentalFog, false, 2, 1, "Mental fog persistent"},
}

// Compose re-derives threshold breaches over the last three entries of the
// window and builds an alert payload. The breach tier is computed
// independently of the weighted risk score and the two may disagree; both
// are included in the payload body so the reader sees the full picture.
// No breaches means no alert: Compose returns nil.
func Compose(assessment domain.RiskAssessment, patterns []domain.Insight, window []domain.Entry) *domain.AlertPayload {
	if len(window) == 0 {
		return nil
	}

	var lines []string
	weightSum := 0
	for _, b := range breaches {
		mean := stats.Mean(stats.Tail(analytics.Series(window, b.indicator), breachTailSize))
		hit := (b.high && mean >= b.threshold) || (!b.high && mean <= b.threshold)
		if !hit {
			continue
		}
		weightSum += b.weight
		lines = append(lines, fmt.Sprintf("%s (last-3 mean %.1f)", b.text, mean))
	}

	if len(lines) == 0 {
		return nil
	}

	severity := domain.AlertSeverityAttention
	title := "Early warning signs in recent entries"
	if weightSum >= highRiskWeightSum {
		severity = domain.AlertSeverityHighRisk
		title = "High-risk pattern in recent entries"
	}

	lines = append(lines, fmt.Sprintf("Weighted risk score: %d%% (%s)", assessment.Score, assessment.Band))
	for _, p := range patterns {
		lines = append(lines, p.Text)
	}

	return &domain.AlertPayload{
		Severity:  severity,
		Title:     title,
		BodyLines: lines,
	}
}
