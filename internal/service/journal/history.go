package journal

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/pkg/ctxutil"
)

// TrailingWindowDays is the span of the rolling analytic window.
const TrailingWindowDays = 7

// History reads the full store snapshot and reconstructs the calling
// user's chronological entry sequence. A store read failure surfaces as
// ErrStoreUnavailable (wrapped); callers decide between retry and an
// empty state.
func (s *Service) History(ctx context.Context) (History, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return History{}, domain.ErrUnauthorized
	}

	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return History{}, fmt.Errorf("read store: %w", err)
	}

	history := ForUser(records, userID)

	if len(history.Skipped) > 0 {
		s.log.WarnContext(ctx, "rows excluded from history",
			slog.String("user_id", userID),
			slog.Int("skipped", len(history.Skipped)),
		)
	}

	s.log.InfoContext(ctx, "history loaded",
		slog.String("user_id", userID),
		slog.Int("entries", len(history.Entries)),
	)

	return history, nil
}

// ForUser filters a raw snapshot to one user's entries, sorted ascending
// by date. The sort is stable: entries on the same date keep their
// original row order, so repeated filtering of the same snapshot yields
// the same sequence. Rows that fail to parse are excluded and reported.
func ForUser(records []domain.Record, userID string) History {
	var history History
	for i, r := range records {
		if r.IsBlank() {
			continue
		}
		if r.UserID != userID {
			continue
		}
		entry, err := domain.ParseEntry(r)
		if err != nil {
			history.Skipped = append(history.Skipped, domain.RowError{Row: i, Reason: err.Error()})
			continue
		}
		history.Entries = append(history.Entries, entry)
	}

	slices.SortStableFunc(history.Entries, func(a, b domain.Entry) int {
		return a.Date.Compare(b.Date)
	})

	return history
}

// TrailingWindow returns the entries dated within the last
// TrailingWindowDays days of today, inclusive. today is passed in
// explicitly; the engine never reads ambient time.
func TrailingWindow(entries []domain.Entry, today time.Time) []domain.Entry {
	cutoff := domain.Day(today).AddDate(0, 0, -TrailingWindowDays)

	var window []domain.Entry
	for _, e := range entries {
		if !e.Date.Before(cutoff) {
			window = append(window, e)
		}
	}
	return window
}

// LatestMedicationNote returns the most recent non-empty medication note
// in a date-ordered history, or "" if none exists. It pre-fills the next
// submission when the user does not update the note.
func LatestMedicationNote(entries []domain.Entry) string {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].MedicationNote != "" {
			return entries[i].MedicationNote
		}
	}
	return ""
}
