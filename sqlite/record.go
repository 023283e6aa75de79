package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/sitegraph"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitegraph.SearchIndex = (*RecordService)(nil)

// RecordService implements sitegraph.SearchIndex using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// ReplaceAll atomically replaces the index contents with the given records.
func (s *RecordService) ReplaceAll(ctx context.Context, records []sitegraph.SearchRecord) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM search_records"); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}

	for i, rec := range records {
		if rec.URL == "" {
			return sitegraph.Errorf(sitegraph.EINVALID, "search record %d has no URL", i)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO search_records (id, title, url, keywords, position)
			VALUES (?, ?, ?, ?, ?)
		`, uuid.New().String(), rec.Title, rec.URL, strings.Join(rec.Keywords, "\n"), i)
		if err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Search returns up to limit records with a positive score for the query,
// best first. Scoring happens in process so that accent folding matches the
// in-memory search path exactly.
func (s *RecordService) Search(ctx context.Context, query string, limit int) ([]sitegraph.SearchRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, url, keywords
		FROM search_records
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []sitegraph.SearchRecord
	for rows.Next() {
		var rec sitegraph.SearchRecord
		var keywords string
		if err := rows.Scan(&rec.Title, &rec.URL, &keywords); err != nil {
			return nil, err
		}
		if keywords != "" {
			rec.Keywords = strings.Split(keywords, "\n")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sitegraph.SearchRecords(records, query, limit), nil
}

// Count returns the number of records in the index.
func (s *RecordService) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM search_records").Scan(&n)
	return n, err
}
