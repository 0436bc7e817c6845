// Package csv implements the record store on a single CSV file with the
// canonical column schema. The file is the source of truth shared with
// spreadsheet tooling, so the adapter preserves whatever rows it finds
// and only ever appends.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/heartmarshall/mindlog-backend/internal/domain"
)

// Store reads and appends canonical records in one CSV file.
// A missing file is an empty journal, not an error. Writes go through a
// temp file plus rename so a crash never leaves a half-written journal,
// and a process-local mutex serializes concurrent appends.
type Store struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewStore creates a CSV store over the file at path. The file does not
// need to exist yet; the first append creates it with a header row.
func NewStore(log *slog.Logger, path string) *Store {
	return &Store{
		path: path,
		log:  log.With("adapter", "csv"),
	}
}

// ReadAll returns every data row of the file in physical order. A header
// row is recognized by its first cell and skipped; short rows are
// backfilled to the canonical column count; entirely blank rows are
// dropped. Everything else is returned as-is, malformed or not, so the
// journal layer can count what it skips.
func (s *Store) ReadAll(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, domain.ErrStoreUnavailable)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, domain.ErrStoreUnavailable)
	}

	var records []domain.Record
	for i, fields := range rows {
		if i == 0 && isHeader(fields) {
			continue
		}
		rec := domain.RecordFromFields(fields)
		if rec.IsBlank() {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Append adds one record to the end of the file, creating it with a
// header when absent. The whole file is rewritten to a temp file and
// renamed into place.
func (s *Store) Append(ctx context.Context, rec domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readRaw()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(existing)+2)
	rows = append(rows, domain.Columns)
	rows = append(rows, existing...)
	rows = append(rows, rec.Fields())

	if err := s.writeAtomic(rows); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "record appended",
		slog.String("path", s.path),
		slog.Int("rows", len(rows)-1),
	)
	return nil
}

// readRaw returns the file's data rows without schema backfill, so a
// rewrite preserves rows exactly as they were.
func (s *Store) readRaw() ([][]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, domain.ErrStoreUnavailable)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, domain.ErrStoreUnavailable)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}
	return rows, nil
}

func (s *Store) writeAtomic(rows [][]string) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".journal-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", domain.ErrStoreUnavailable)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, domain.ErrStoreUnavailable)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, domain.ErrStoreUnavailable)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into %s: %w", s.path, domain.ErrStoreUnavailable)
	}
	return nil
}

func isHeader(fields []string) bool {
	return len(fields) > 0 && fields[0] == domain.Columns[0]
}
