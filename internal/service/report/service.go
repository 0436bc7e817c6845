// Package report assembles the full 7-day analytic report for one user:
// risk assessment, trend summaries, weekly aggregates, pattern and
// correlation insights, and the composed alert. Each request rebuilds
// everything from a single immutable store snapshot.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
	"github.com/heartmarshall/mindlog-backend/internal/service/alert"
	"github.com/heartmarshall/mindlog-backend/internal/service/analytics"
	"github.com/heartmarshall/mindlog-backend/internal/service/journal"
	"github.com/heartmarshall/mindlog-backend/pkg/ctxutil"
)

// historyProvider reconstructs the calling user's entry history.
type historyProvider interface {
	History(ctx context.Context) (journal.History, error)
}

// Service implements the analytic report generation.
type Service struct {
	journal historyProvider
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new report service. now may be nil, in which case
// time.Now is used; tests inject a fixed clock.
func NewService(log *slog.Logger, journalSvc historyProvider, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		journal: journalSvc,
		log:     log.With("service", "report"),
		now:     now,
	}
}

// Generate produces the full report for the calling user. today bounds
// the trailing window; a zero value means the service clock's current
// day. All derived values come from one history snapshot; no state is
// shared between requests. An empty history yields a well-defined
// "no data" report rather than an error.
func (s *Service) Generate(ctx context.Context, today time.Time) (*domain.Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if today.IsZero() {
		today = s.now()
	}
	today = domain.Day(today)

	history, err := s.journal.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	window := journal.TrailingWindow(history.Entries, today)

	assessment := analytics.Score(window)
	patterns := analytics.WeekdayPatterns(history.Entries)

	rep := &domain.Report{
		UserID:      userID,
		GeneratedAt: s.now(),
		Today:       today,

		EntryCount:  len(history.Entries),
		WindowCount: len(window),
		SkippedRows: history.Skipped,

		Assessment:   assessment,
		Summaries:    analytics.Summarize(window),
		Weekly:       analytics.WeeklyAggregate(history.Entries),
		Patterns:     patterns,
		Correlations: analytics.CorrelationInsights(window),
		Alert:        alert.Compose(assessment, patterns, window),

		LatestMedicationNote: journal.LatestMedicationNote(history.Entries),
	}

	s.log.InfoContext(ctx, "report generated",
		slog.String("user_id", userID),
		slog.Int("entries", rep.EntryCount),
		slog.Int("window", rep.WindowCount),
		slog.Int("score", rep.Assessment.Score),
		slog.String("band", rep.Assessment.Band.String()),
	)

	return rep, nil
}
