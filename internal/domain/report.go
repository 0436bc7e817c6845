package domain

import "time"

// RiskAssessment is the weighted composite burnout-risk result for a
// trailing window. Score 0 with band NO_DATA means "nothing to assess",
// which is distinct from a genuinely low-risk STABLE window.
type RiskAssessment struct {
	Score int // percent, 0..100
	Band  RiskBand
}

// IndicatorSummary holds the per-indicator statistics over a window.
type IndicatorSummary struct {
	Indicator Indicator
	Mean      float64
	// Delta is last value minus first value in the window, a first/last
	// snapshot change rather than a rate. Zero when the window has one
	// entry or fewer.
	Delta     int
	Direction TrendDirection
}

// WeekAggregate holds per-indicator means for one ISO calendar week.
type WeekAggregate struct {
	Year  int
	Week  int
	Count int
	Means map[Indicator]float64
}

// WeeklyReport is the week-over-week aggregation of a full history.
// Insufficient is true when the history has fewer than seven entries or
// fewer than two distinct ISO weeks; Weeks is empty in that case.
type WeeklyReport struct {
	Insufficient bool
	Weeks        []WeekAggregate
}

// Insight is a short human-readable observation (weekday pattern or
// pairwise correlation) derived from history. Insights are value records:
// produced by the detector, consumed by the composer, never stored.
type Insight struct {
	Icon string
	Text string
}

// AlertPayload is the structured alert composed for a professional
// observer. Severity comes from the breach tally, not from the weighted
// risk score; the two classifications may disagree and both are surfaced.
type AlertPayload struct {
	Severity  AlertSeverity
	Title     string
	BodyLines []string
}

// Report is everything one analytic request returns.
type Report struct {
	UserID      string
	GeneratedAt time.Time
	Today       time.Time

	EntryCount  int
	WindowCount int
	SkippedRows []RowError

	Assessment   RiskAssessment
	Summaries    []IndicatorSummary
	Weekly       WeeklyReport
	Patterns     []Insight
	Correlations []Insight
	Alert        *AlertPayload

	LatestMedicationNote string
}
