package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/pkg/ctxutil"
)

// Submit validates and appends one daily entry for the calling user.
// Entries are immutable once appended: a correction is a new entry, and a
// second submission on the same date is retained alongside the first.
// An empty medication note is replaced with the latest stored note, so an
// unchanged prescription carries forward without retyping.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (domain.Entry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Entry{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Entry{}, err
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}

	entry := domain.Entry{
		Date:           domain.Day(date),
		UserID:         userID,
		DisplayName:    input.DisplayName,
		Mood:           input.Mood,
		Irritability:   input.Irritability,
		SocialBattery:  input.SocialBattery,
		SleepQuality:   input.SleepQuality,
		MentalFog:      input.MentalFog,
		Pressure:       input.Pressure,
		MedicationNote: input.MedicationNote,
	}

	if entry.MedicationNote == "" {
		records, err := s.store.ReadAll(ctx)
		if err != nil {
			return domain.Entry{}, fmt.Errorf("read store: %w", err)
		}
		entry.MedicationNote = LatestMedicationNote(ForUser(records, userID).Entries)
	}

	if err := entry.Validate(); err != nil {
		return domain.Entry{}, err
	}

	if err := s.store.Append(ctx, entry.ToRecord()); err != nil {
		return domain.Entry{}, fmt.Errorf("append entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry submitted",
		slog.String("user_id", userID),
		slog.String("date", entry.Date.Format(domain.DateLayout)),
	)

	return entry, nil
}
