// Package entry implements the record store on PostgreSQL. Rows keep the
// same all-text schema as the CSV store: the table is an append-only row
// log and all parsing stays in the journal layer, so both stores behave
// identically behind the recordStore interface.
package entry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mindlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mindlog-backend/internal/domain"
)

const table = "entries"

var columns = []string{
	"entry_date",
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

// Repo provides entry row persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ReadAll returns every stored row in insertion order. Blank rows are
// dropped; everything else comes back verbatim for the journal layer
// to parse and validate.
func (r *Repo) ReadAll(ctx context.Context) ([]domain.Record, error) {
	query, args, err := r.sb.
		Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select entries: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "read entries")
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(
			&rec.Date,
			&rec.UserIdentity,
			&rec.UserID,
			&rec.Mood,
			&rec.Irritability,
			&rec.SocialBattery,
			&rec.SleepQuality,
			&rec.MentalFog,
			&rec.Pressure,
			&rec.MedicationNote,
		); err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		if rec.IsBlank() {
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "iterate entries")
	}

	return records, nil
}

// Append inserts one row at the end of the log.
func (r *Repo) Append(ctx context.Context, rec domain.Record) error {
	query, args, err := r.sb.
		Insert(table).
		Columns(append([]string{"id", "created_at"}, columns...)...).
		Values(append([]any{uuid.New(), time.Now().UTC()}, fieldsAsAny(rec)...)...).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert entry: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "append entry")
	}
	return nil
}

func fieldsAsAny(rec domain.Record) []any {
	fields := rec.Fields()
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}
