package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"wacomsync/internal/domain"
	"wacomsync/internal/repository"
)

// timeLayout is fixed width so stored timestamps sort lexically. The column
// is TEXT so the driver hands the string back unchanged.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Repository implements repository.HistoryRepository using SQLite
type Repository struct {
	db *sql.DB
}

var _ repository.HistoryRepository = (*Repository)(nil)

// New opens (and creates if needed) the history database at dbPath.
// ":memory:" opens a private in-memory database.
func New(dbPath string) (*Repository, error) {
	dsn := ":memory:"
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database dir: %w", err)
		}
		dsn = "file:" + dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS applies (
		id TEXT PRIMARY KEY,
		profile_name TEXT,
		target TEXT NOT NULL,
		mode TEXT NOT NULL,
		keep_ratio INTEGER NOT NULL DEFAULT 0,
		applied_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS apply_results (
		apply_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		device TEXT NOT NULL,
		kind TEXT,
		outcome TEXT NOT NULL,
		error TEXT,
		area_x1 INTEGER,
		area_y1 INTEGER,
		area_x2 INTEGER,
		area_y2 INTEGER,
		PRIMARY KEY (apply_id, position),
		FOREIGN KEY (apply_id) REFERENCES applies(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_applies_applied_at ON applies(applied_at);
	`

	_, err := r.db.Exec(schema)
	return err
}

// RecordApply stores a report and its per-device results in one transaction
func (r *Repository) RecordApply(ctx context.Context, report *domain.ApplyReport) (string, error) {
	id := uuid.NewString()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	appliedAt := report.AppliedAt
	if appliedAt.IsZero() {
		appliedAt = time.Now()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO applies (id, profile_name, target, mode, keep_ratio, applied_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, stringToNull(report.ProfileName), report.Profile.Target, string(report.Profile.Mode),
		boolToInt(report.Profile.KeepRatio), appliedAt.UTC().Format(timeLayout))
	if err != nil {
		return "", fmt.Errorf("failed to insert apply: %w", err)
	}

	for i, res := range report.Results {
		args := resultInsertArgs(id, i, res)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO apply_results (apply_id, position, device, kind, outcome, error, area_x1, area_y1, area_x2, area_y2)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, args...); err != nil {
			return "", fmt.Errorf("failed to insert result for %s: %w", res.Device.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit apply: %w", err)
	}
	return id, nil
}

// ListApplies returns the most recent runs first
func (r *Repository) ListApplies(ctx context.Context, limit int) ([]repository.ApplyRecord, error) {
	query := `
		SELECT id, profile_name, target, mode, keep_ratio, applied_at
		FROM applies
		ORDER BY applied_at DESC, rowid DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applies: %w", err)
	}
	defer rows.Close()

	var records []repository.ApplyRecord
	for rows.Next() {
		var row applyRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan apply: %w", err)
		}
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applies: %w", err)
	}
	rows.Close()

	for i := range records {
		results, err := r.listResults(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
		records[i].Results = results
	}

	return records, nil
}

func (r *Repository) listResults(ctx context.Context, applyID string) ([]repository.ResultRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT device, kind, outcome, error, area_x1, area_y1, area_x2, area_y2
		FROM apply_results WHERE apply_id = ?
		ORDER BY position
	`, applyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []repository.ResultRecord
	for rows.Next() {
		var row resultRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, row.toRecord())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}
	return results, nil
}

// Close closes the database
func (r *Repository) Close() error {
	return r.db.Close()
}
