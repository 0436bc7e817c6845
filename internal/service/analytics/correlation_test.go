package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
)

// window builds entries day by day from parallel indicator slices.
func window(mood, irr, social, sleep, fog, pressure []int) []domain.Entry {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	entries := make([]domain.Entry, len(mood))
	for i := range entries {
		entries[i] = domain.Entry{
			Date:          start.AddDate(0, 0, i),
			UserID:        "a1b2c3d4",
			Mood:          mood[i],
			Irritability:  irr[i],
			SocialBattery: social[i],
			SleepQuality:  sleep[i],
			MentalFog:     fog[i],
			Pressure:      pressure[i],
		}
	}
	return entries
}

func TestCorrelationInsights_ShortWindow(t *testing.T) {
	if got := CorrelationInsights(flatWindow(4, 3)); got != nil {
		t.Errorf("window below five entries should yield no insights, got %v", got)
	}
}

func TestCorrelationInsights_SleepMoodPerfect(t *testing.T) {
	// Sleep and mood co-vary perfectly; everything else is constant, so no
	// other pair can reach the threshold.
	entries := window(
		[]int{1, 2, 3, 4, 5}, // mood
		[]int{3, 3, 3, 3, 3}, // irritability
		[]int{3, 3, 3, 3, 3}, // social battery
		[]int{1, 2, 3, 4, 5}, // sleep
		[]int{3, 3, 3, 3, 3}, // fog
		[]int{3, 3, 3, 3, 3}, // pressure
	)

	insights := CorrelationInsights(entries)
	if len(insights) != 1 {
		t.Fatalf("got %d insights, want 1: %v", len(insights), insights)
	}
	if !strings.Contains(insights[0].Text, "sleep") {
		t.Errorf("insight %q should describe the sleep–mood link", insights[0].Text)
	}
	if !strings.Contains(insights[0].Text, "1.00") {
		t.Errorf("insight %q should report strength 1.00", insights[0].Text)
	}
}

func TestCorrelationInsights_PressureMoodNegative(t *testing.T) {
	entries := window(
		[]int{5, 4, 3, 2, 1}, // mood falls...
		[]int{3, 3, 3, 3, 3},
		[]int{3, 3, 3, 3, 3},
		[]int{3, 3, 3, 3, 3},
		[]int{3, 3, 3, 3, 3},
		[]int{1, 2, 3, 4, 5}, // ...as pressure rises
	)

	insights := CorrelationInsights(entries)
	if len(insights) != 1 {
		t.Fatalf("got %d insights, want 1: %v", len(insights), insights)
	}
	if !strings.Contains(insights[0].Text, "pressure") && !strings.Contains(insights[0].Text, "Pressure") {
		t.Errorf("insight %q should describe the pressure–mood link", insights[0].Text)
	}
	if !strings.Contains(insights[0].Text, "-1.00") {
		t.Errorf("insight %q should report strength -1.00", insights[0].Text)
	}
}

func TestCorrelationInsights_WrongSignSuppressed(t *testing.T) {
	// Sleep and mood anti-correlate: the pair expects a positive link, so
	// no insight may surface even though |r| = 1.
	entries := window(
		[]int{5, 4, 3, 2, 1},
		[]int{3, 3, 3, 3, 3},
		[]int{3, 3, 3, 3, 3},
		[]int{1, 2, 3, 4, 5},
		[]int{3, 3, 3, 3, 3},
		[]int{3, 3, 3, 3, 3},
	)

	for _, ins := range CorrelationInsights(entries) {
		if strings.Contains(ins.Text, "sleep tracks with better mood") {
			t.Errorf("sign-mismatched pair surfaced: %q", ins.Text)
		}
	}
}

func TestCorrelationInsights_ConstantData(t *testing.T) {
	if got := CorrelationInsights(flatWindow(10, 3)); len(got) != 0 {
		t.Errorf("constant data should yield no insights, got %v", got)
	}
}
