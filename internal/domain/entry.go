package domain

import (
	"time"
)

// DateLayout is the wire format for entry dates (ISO calendar date, no time).
const DateLayout = "2006-01-02"

// Entry is one daily questionnaire submission by a user.
// Entries are immutable once created: corrections are new appended entries,
// and multiple entries on the same date are all retained.
type Entry struct {
	Date           time.Time
	UserID         string
	DisplayName    string
	Mood           int
	Irritability   int
	SocialBattery  int
	SleepQuality   int
	MentalFog      int
	Pressure       int
	MedicationNote string
}

// Indicator returns the entry's value for the given indicator.
// Panics on an unknown indicator; callers iterate over Indicators().
func (e Entry) Indicator(ind Indicator) int {
	switch ind {
	case IndicatorMood:
		return e.Mood
	case IndicatorIrritability:
		return e.Irritability
	case IndicatorSocialBattery:
		return e.SocialBattery
	case IndicatorSleepQuality:
		return e.SleepQuality
	case IndicatorMentalFog:
		return e.MentalFog
	case IndicatorPressure:
		return e.Pressure
	}
	panic("domain: unknown indicator " + string(ind))
}

// Validate checks the entry invariants: a non-empty user id, a non-zero
// date, and every indicator within [1,5]. Out-of-range values are rejected,
// never clamped.
func (e Entry) Validate() error {
	var errs []FieldError

	if e.UserID == "" {
		errs = append(errs, FieldError{Field: "user_id", Message: "is required"})
	}
	if e.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "is required"})
	}
	for _, ind := range Indicators() {
		v := e.Indicator(ind)
		if v < MinIndicatorValue || v > MaxIndicatorValue {
			errs = append(errs, FieldError{
				Field:   ind.String(),
				Message: "must be between 1 and 5",
			})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Day truncates a timestamp to its calendar day in UTC.
// All entry dates are stored day-truncated.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
