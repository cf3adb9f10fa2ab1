package sqlite

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/gmfreire/cnesbeds"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cnesbeds.DatasetAppender = (*BedService)(nil)

// BedService implements cnesbeds.DatasetAppender using SQLite. It is
// strictly append-only: rows are inserted into an existing table (created
// on first use) and never replaced or deleted.
type BedService struct {
	db *DB
}

// NewBedService creates a new BedService.
func NewBedService(db *DB) *BedService {
	return &BedService{db: db}
}

// tableNameRE limits table names to plain identifiers, since the name is
// interpolated into DDL/DML text.
var tableNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// AppendDataset appends every record of the dataset to the named table,
// creating the table if it does not exist yet.
func (s *BedService) AppendDataset(ctx context.Context, table string, ds cnesbeds.Dataset) error {
	if !tableNameRE.MatchString(table) {
		return cnesbeds.Errorf(cnesbeds.EINVALID, "invalid table name %q", table)
	}

	createStmt := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %q (
			id TEXT PRIMARY KEY,
			cnes TEXT NOT NULL,
			estabelecimento TEXT NOT NULL,
			uf TEXT NOT NULL,
			municipio TEXT NOT NULL,
			tipo TEXT NOT NULL,
			especialidade TEXT NOT NULL,
			existentes INTEGER NOT NULL,
			sus INTEGER NOT NULL,
			nao_sus INTEGER NOT NULL,
			collected_at TEXT NOT NULL
		)
	`, table)
	if _, err := s.db.ExecContext(ctx, createStmt); err != nil {
		return fmt.Errorf("failed to create table %q: %w", table, err)
	}

	insertStmt := fmt.Sprintf(`
		INSERT INTO %q (id, cnes, estabelecimento, uf, municipio, tipo, especialidade, existentes, sus, nao_sus, collected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, table)

	collectedAt := time.Now().UTC().Format(time.RFC3339)
	for _, r := range ds {
		if err := r.Validate(); err != nil {
			return err
		}
		_, err := s.db.ExecContext(ctx, insertStmt,
			uuid.New().String(), r.CNES, r.Facility, string(r.Region), r.Municipality,
			r.BedType, r.Specialty, r.Existing, r.SUS, r.NonSUS, collectedAt)
		if err != nil {
			return fmt.Errorf("failed to insert bed record: %w", err)
		}
	}

	return nil
}

// CountRows returns the number of rows in the named table.
func (s *BedService) CountRows(ctx context.Context, table string) (int, error) {
	if !tableNameRE.MatchString(table) {
		return 0, cnesbeds.Errorf(cnesbeds.EINVALID, "invalid table name %q", table)
	}
	var n int
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %q`, table)).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
