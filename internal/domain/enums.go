package domain

// MinIndicatorValue and MaxIndicatorValue bound every questionnaire rating.
const (
	MinIndicatorValue = 1
	MaxIndicatorValue = 5
)

// Indicator identifies one of the six daily questionnaire scales.
// Higher is always "more" of the labeled pole: a higher mood is happier,
// a higher pressure is more exhausted, a higher mental_fog is clearer.
type Indicator string

const (
	IndicatorMood          Indicator = "mood"
	IndicatorIrritability  Indicator = "irritability"
	IndicatorSocialBattery Indicator = "social_battery"
	IndicatorSleepQuality  Indicator = "sleep_quality"
	IndicatorMentalFog     Indicator = "mental_fog"
	IndicatorPressure      Indicator = "pressure"
)

func (i Indicator) String() string { return string(i) }

func (i Indicator) IsValid() bool {
	switch i {
	case IndicatorMood, IndicatorIrritability, IndicatorSocialBattery,
		IndicatorSleepQuality, IndicatorMentalFog, IndicatorPressure:
		return true
	}
	return false
}

// DirectRisk reports whether a higher value of the indicator means higher
// burnout risk. The remaining four indicators are inverse-risk.
func (i Indicator) DirectRisk() bool {
	return i == IndicatorPressure || i == IndicatorIrritability
}

// Indicators returns all six indicators in canonical row order.
func Indicators() []Indicator {
	return []Indicator{
		IndicatorMood,
		IndicatorIrritability,
		IndicatorSocialBattery,
		IndicatorSleepQuality,
		IndicatorMentalFog,
		IndicatorPressure,
	}
}

// RiskBand is the three-level risk classification, plus a distinguished
// NO_DATA band so that an empty history is never reported as healthy.
type RiskBand string

const (
	RiskBandNoData    RiskBand = "NO_DATA"
	RiskBandStable    RiskBand = "STABLE"
	RiskBandAttention RiskBand = "ATTENTION"
	RiskBandHighRisk  RiskBand = "HIGH_RISK"
)

func (b RiskBand) String() string { return string(b) }

func (b RiskBand) IsValid() bool {
	switch b {
	case RiskBandNoData, RiskBandStable, RiskBandAttention, RiskBandHighRisk:
		return true
	}
	return false
}

// TrendDirection labels the fitted slope of an indicator over a window.
type TrendDirection string

const (
	TrendRising       TrendDirection = "RISING"
	TrendFalling      TrendDirection = "FALLING"
	TrendStable       TrendDirection = "STABLE"
	TrendInsufficient TrendDirection = "INSUFFICIENT_DATA"
)

func (d TrendDirection) String() string { return string(d) }

// AlertSeverity is the presentation tier of a composed alert.
// It is derived from breach weights, independently of the weighted risk
// score, and the two may disagree on the same window.
type AlertSeverity string

const (
	AlertSeverityAttention AlertSeverity = "ATTENTION"
	AlertSeverityHighRisk  AlertSeverity = "HIGH_RISK"
)

func (s AlertSeverity) String() string { return string(s) }
