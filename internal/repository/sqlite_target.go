package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/creative-h/aopplan/internal/db"
	"github.com/creative-h/aopplan/internal/domain"
)

// SQLiteTargetRepo implements TargetRepo over annual_targets and
// competency_targets.
type SQLiteTargetRepo struct {
	db db.DBTX
}

// NewSQLiteTargetRepo creates a new SQLiteTargetRepo.
func NewSQLiteTargetRepo(dbtx db.DBTX) *SQLiteTargetRepo {
	return &SQLiteTargetRepo{db: dbtx}
}

func (r *SQLiteTargetRepo) Upsert(ctx context.Context, year int, target domain.AnnualTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}

	now := nowUTC()
	id := uuid.NewString()
	query := `INSERT INTO annual_targets (id, year, vilt_sessions, ilt_sessions, learning_hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET
			vilt_sessions = excluded.vilt_sessions,
			ilt_sessions = excluded.ilt_sessions,
			learning_hours = excluded.learning_hours,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		id, year, target.VILTSessions, target.ILTSessions, target.LearningHours, now, now,
	); err != nil {
		return fmt.Errorf("upserting annual target: %w", err)
	}

	// Resolve the row id actually stored (an update keeps the original).
	var targetID string
	if err := r.db.QueryRowContext(ctx,
		`SELECT id FROM annual_targets WHERE year = ?`, year,
	).Scan(&targetID); err != nil {
		return fmt.Errorf("resolving target id: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM competency_targets WHERE target_id = ?`, targetID,
	); err != nil {
		return fmt.Errorf("clearing competency targets: %w", err)
	}
	for _, area := range target.Areas() {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO competency_targets (target_id, area, hours) VALUES (?, ?, ?)`,
			targetID, area, target.CompetencyHours[area],
		); err != nil {
			return fmt.Errorf("inserting competency target %s: %w", area, err)
		}
	}
	return nil
}

func (r *SQLiteTargetRepo) GetByYear(ctx context.Context, year int) (*domain.AnnualTarget, error) {
	var (
		id     string
		target domain.AnnualTarget
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, vilt_sessions, ilt_sessions, learning_hours FROM annual_targets WHERE year = ?`, year,
	).Scan(&id, &target.VILTSessions, &target.ILTSessions, &target.LearningHours)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("annual target for %d: %w", year, ErrNotFound)
		}
		return nil, fmt.Errorf("loading annual target: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT area, hours FROM competency_targets WHERE target_id = ? ORDER BY area`, id)
	if err != nil {
		return nil, fmt.Errorf("loading competency targets: %w", err)
	}
	defer rows.Close()

	target.CompetencyHours = map[string]float64{}
	for rows.Next() {
		var (
			area  string
			hours float64
		)
		if err := rows.Scan(&area, &hours); err != nil {
			return nil, fmt.Errorf("scanning competency target: %w", err)
		}
		target.CompetencyHours[area] = hours
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating competency targets: %w", err)
	}
	return &target, nil
}

func (r *SQLiteTargetRepo) ListYears(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT year FROM annual_targets ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("listing target years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scanning target year: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating target years: %w", err)
	}
	return years, nil
}

func (r *SQLiteTargetRepo) Delete(ctx context.Context, year int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM annual_targets WHERE year = ?`, year); err != nil {
		return fmt.Errorf("deleting annual target: %w", err)
	}
	return nil
}
