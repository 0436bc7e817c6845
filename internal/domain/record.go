package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is the canonical tabular row exchanged with a record store.
// The column set is fixed; stores must never reorder or rename fields
// when round-tripping. All values travel as strings, the way they live
// in a spreadsheet.
type Record struct {
	Date           string
	UserIdentity   string // display name, presentation only
	UserID         string
	Mood           string
	Irritability   string
	SocialBattery  string
	SleepQuality   string
	MentalFog      string
	Pressure       string
	MedicationNote string
}

// Columns is the canonical header, in row order.
var Columns = []string{
	"date",
	"user_identity",
	"user_id",
	"mood",
	"irritability",
	"social_battery",
	"sleep_quality",
	"mental_fog",
	"pressure",
	"medication_note",
}

// Fields returns the record values in canonical column order.
func (r Record) Fields() []string {
	return []string{
		r.Date,
		r.UserIdentity,
		r.UserID,
		r.Mood,
		r.Irritability,
		r.SocialBattery,
		r.SleepQuality,
		r.MentalFog,
		r.Pressure,
		r.MedicationNote,
	}
}

// RecordFromFields builds a Record from raw field values. Missing trailing
// columns are backfilled with the empty string so every downstream component
// sees a stable schema regardless of store heterogeneity.
func RecordFromFields(fields []string) Record {
	padded := make([]string, len(Columns))
	copy(padded, fields)
	return Record{
		Date:           padded[0],
		UserIdentity:   padded[1],
		UserID:         padded[2],
		Mood:           padded[3],
		Irritability:   padded[4],
		SocialBattery:  padded[5],
		SleepQuality:   padded[6],
		MentalFog:      padded[7],
		Pressure:       padded[8],
		MedicationNote: padded[9],
	}
}

// IsBlank reports whether every field of the record is empty.
// Entirely blank rows are dropped by store adapters.
func (r Record) IsBlank() bool {
	for _, f := range r.Fields() {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ToRecord serializes an entry into the canonical row schema.
func (e Entry) ToRecord() Record {
	return Record{
		Date:           e.Date.Format(DateLayout),
		UserIdentity:   e.DisplayName,
		UserID:         e.UserID,
		Mood:           strconv.Itoa(e.Mood),
		Irritability:   strconv.Itoa(e.Irritability),
		SocialBattery:  strconv.Itoa(e.SocialBattery),
		SleepQuality:   strconv.Itoa(e.SleepQuality),
		MentalFog:      strconv.Itoa(e.MentalFog),
		Pressure:       strconv.Itoa(e.Pressure),
		MedicationNote: e.MedicationNote,
	}
}

// ParseEntry converts a canonical record into a validated Entry.
// It fails on a missing user id, an unparseable date, a non-integer
// indicator, or an indicator outside [1,5].
func ParseEntry(r Record) (Entry, error) {
	if strings.TrimSpace(r.UserID) == "" {
		return Entry{}, NewValidationError("user_id", "is required")
	}

	date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(r.Date), time.UTC)
	if err != nil {
		return Entry{}, fmt.Errorf("parse date %q: %w", r.Date, ErrValidation)
	}

	entry := Entry{
		Date:           date,
		UserID:         strings.TrimSpace(r.UserID),
		DisplayName:    strings.TrimSpace(r.UserIdentity),
		MedicationNote: strings.TrimSpace(r.MedicationNote),
	}

	values := map[Indicator]string{
		IndicatorMood:          r.Mood,
		IndicatorIrritability:  r.Irritability,
		IndicatorSocialBattery: r.SocialBattery,
		IndicatorSleepQuality:  r.SleepQuality,
		IndicatorMentalFog:     r.MentalFog,
		IndicatorPressure:      r.Pressure,
	}
	for ind, raw := range values {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Entry{}, fmt.Errorf("parse %s %q: %w", ind, raw, ErrValidation)
		}
		switch ind {
		case IndicatorMood:
			entry.Mood = v
		case IndicatorIrritability:
			entry.Irritability = v
		case IndicatorSocialBattery:
			entry.SocialBattery = v
		case IndicatorSleepQuality:
			entry.SleepQuality = v
		case IndicatorMentalFog:
			entry.MentalFog = v
		case IndicatorPressure:
			entry.Pressure = v
		}
	}

	if err := entry.Validate(); err != nil {
		return Entry{}, err
	}
	return entry, nil
}
