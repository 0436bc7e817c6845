package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

// recordStore is the append-only tabular store the journal reads and writes.
// Implementations: the CSV file adapter and the PostgreSQL adapter.
type recordStore interface {
	ReadAll(ctx context.Context) ([]domain.Record, error)
	Append(ctx context.Context, record domain.Record) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the journal business logic: submitting daily entries
// and reconstructing one user's chronological history from the store.
// Histories are rebuilt from a full store read on every request; nothing
// is cached between requests.
type Service struct {
	store recordStore
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new journal service. now may be nil, in which case
// time.Now is used; tests inject a fixed clock.
func NewService(log *slog.Logger, store recordStore, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store: store,
		log:   log.With("service", "journal"),
		now:   now,
	}
}

// History is one user's reconstructed entry sequence plus the rows that
// were excluded while building it. Skipped rows are a data-quality
// warning for the caller, not a failure.
type History struct {
	Entries []domain.Entry
	Skipped []domain.RowError
}
