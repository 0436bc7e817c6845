package domain

import "testing"

func TestIndicator_IsValid(t *testing.T) {
	t.Parallel()

	for _, ind := range Indicators() {
		if !ind.IsValid() {
			t.Errorf("Indicator %q should be valid", ind)
		}
	}
	if Indicator("happiness").IsValid() {
		t.Error("unknown indicator should be invalid")
	}
}

func TestIndicator_DirectRisk(t *testing.T) {
	t.Parallel()

	direct := map[Indicator]bool{
		IndicatorPressure:      true,
		IndicatorIrritability:  true,
		IndicatorMood:          false,
		IndicatorSleepQuality:  false,
		IndicatorSocialBattery: false,
		IndicatorMentalFog:     false,
	}
	for ind, want := range direct {
		if got := ind.DirectRisk(); got != want {
			t.Errorf("%s.DirectRisk() = %v, want %v", ind, got, want)
		}
	}
}

func TestRiskBand_IsValid(t *testing.T) {
	t.Parallel()

	for _, b := range []RiskBand{RiskBandNoData, RiskBandStable, RiskBandAttention, RiskBandHighRisk} {
		if !b.IsValid() {
			t.Errorf("band %q should be valid", b)
		}
	}
	if RiskBand("PANIC").IsValid() {
		t.Error("unknown band should be invalid")
	}
}
