package journal

import (
	"time"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
)

// SubmitInput carries one daily questionnaire submission.
type SubmitInput struct {
	// Date of the entry; zero means "today" per the service clock.
	Date          time.Time
	DisplayName   string
	Mood          int
	Irritability  int
	SocialBattery int
	SleepQuality  int
	MentalFog     int
	Pressure      int
	// MedicationNote left empty carries the user's latest stored note
	// forward unchanged.
	MedicationNote string
}

// Validate checks every indicator is within [1,5]. Out-of-range values
// are rejected at the boundary, never clamped.
func (in SubmitInput) Validate() error {
	var errs []domain.FieldError

	check := func(field string, v int) {
		if v < domain.MinIndicatorValue || v > domain.MaxIndicatorValue {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be between 1 and 5"})
		}
	}
	check("mood", in.Mood)
	check("irritability", in.Irritability)
	check("social_battery", in.SocialBattery)
	check("sleep_quality", in.SleepQuality)
	check("mental_fog", in.MentalFog)
	check("pressure", in.Pressure)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
