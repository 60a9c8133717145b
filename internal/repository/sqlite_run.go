package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/creative-h/aopplan/internal/db"
)

// SQLiteRunRepo implements RunRepo over the runs table.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(dbtx db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: dbtx}
}

func (r *SQLiteRunRepo) Create(ctx context.Context, run *RunRecord) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO runs (id, year, created_at, narrative_source, result_json)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		run.ID, run.Year, run.CreatedAt.Format(time.RFC3339), run.NarrativeSource, string(run.ResultJSON),
	); err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetLatest(ctx context.Context, year int) (*RunRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, year, created_at, narrative_source, result_json
		FROM runs WHERE year = ? ORDER BY created_at DESC, id DESC LIMIT 1`, year)
	run, err := scanRun(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run for %d: %w", year, ErrNotFound)
		}
		return nil, fmt.Errorf("loading latest run: %w", err)
	}
	return run, nil
}

func (r *SQLiteRunRepo) List(ctx context.Context, year int) ([]*RunRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, year, created_at, narrative_source, result_json
		FROM runs WHERE year = ? ORDER BY created_at DESC, id DESC`, year)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []*RunRecord
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

func scanRun(scan func(...any) error) (*RunRecord, error) {
	var (
		run       RunRecord
		createdAt string
		result    string
	)
	if err := scan(&run.ID, &run.Year, &createdAt, &run.NarrativeSource, &result); err != nil {
		return nil, err
	}
	run.CreatedAt = parseStoredTime(createdAt)
	run.ResultJSON = []byte(result)
	return &run, nil
}
