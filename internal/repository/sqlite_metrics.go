package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/creative-h/aopplan/internal/db"
	"github.com/creative-h/aopplan/internal/domain"
)

// SQLiteMetricsRepo implements MetricsRepo over metrics and
// metric_competency_hours. Each row carries one source's extract for one
// period; reads aggregate across sources.
type SQLiteMetricsRepo struct {
	db db.DBTX
}

// NewSQLiteMetricsRepo creates a new SQLiteMetricsRepo.
func NewSQLiteMetricsRepo(dbtx db.DBTX) *SQLiteMetricsRepo {
	return &SQLiteMetricsRepo{db: dbtx}
}

func (r *SQLiteMetricsRepo) Upsert(ctx context.Context, row *MetricRow) error {
	if err := row.Period.Validate(); err != nil {
		return err
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.ImportedAt.IsZero() {
		row.ImportedAt = time.Now().UTC()
	}

	query := `INSERT INTO metrics (
			id, year, granularity, period_index, source,
			vilt_scheduled, vilt_completed, ilt_scheduled, ilt_completed,
			learning_hours, registrations, capacity, closure_ratio, imported_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(year, granularity, period_index, source) DO UPDATE SET
			vilt_scheduled = excluded.vilt_scheduled,
			vilt_completed = excluded.vilt_completed,
			ilt_scheduled = excluded.ilt_scheduled,
			ilt_completed = excluded.ilt_completed,
			learning_hours = excluded.learning_hours,
			registrations = excluded.registrations,
			capacity = excluded.capacity,
			closure_ratio = excluded.closure_ratio,
			imported_at = excluded.imported_at`
	if _, err := r.db.ExecContext(ctx, query,
		row.ID, row.Period.Year, string(row.Period.Granularity), row.Period.Index, string(row.Source),
		row.VILTScheduled, row.VILTCompleted, row.ILTScheduled, row.ILTCompleted,
		row.LearningHours, row.Registrations, row.Capacity, row.ClosureRatio,
		row.ImportedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("upserting metric row: %w", err)
	}

	var storedID string
	if err := r.db.QueryRowContext(ctx,
		`SELECT id FROM metrics WHERE year = ? AND granularity = ? AND period_index = ? AND source = ?`,
		row.Period.Year, string(row.Period.Granularity), row.Period.Index, string(row.Source),
	).Scan(&storedID); err != nil {
		return fmt.Errorf("resolving metric id: %w", err)
	}
	row.ID = storedID

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM metric_competency_hours WHERE metric_id = ?`, storedID,
	); err != nil {
		return fmt.Errorf("clearing competency hours: %w", err)
	}
	for area, hours := range row.CompetencyHours {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO metric_competency_hours (metric_id, area, hours) VALUES (?, ?, ?)`,
			storedID, area, hours,
		); err != nil {
			return fmt.Errorf("inserting competency hours %s: %w", area, err)
		}
	}
	return nil
}

func (r *SQLiteMetricsRepo) GetPeriod(ctx context.Context, period domain.Period) (*domain.ActualMetrics, error) {
	metrics, err := r.aggregatePeriods(ctx, period.Granularity, period.Year, period.Index, period.Index)
	if err != nil {
		return nil, err
	}
	if len(metrics) == 0 {
		return nil, fmt.Errorf("metrics for %s %d: %w", period.Label(), period.Year, ErrNotFound)
	}
	return &metrics[0], nil
}

func (r *SQLiteMetricsRepo) ListHistory(ctx context.Context, before domain.Period) ([]domain.ActualMetrics, error) {
	return r.aggregatePeriods(ctx, before.Granularity, before.Year, 1, before.Index-1)
}

// aggregatePeriods folds per-source rows into one ActualMetrics per period
// for indexes in [from, to]. Counts and hours sum; the closure ratio is a
// registration-weighted average so large sources dominate.
func (r *SQLiteMetricsRepo) aggregatePeriods(ctx context.Context, g domain.Granularity, year, from, to int) ([]domain.ActualMetrics, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, period_index, source,
			vilt_scheduled, vilt_completed, ilt_scheduled, ilt_completed,
			learning_hours, registrations, capacity, closure_ratio
		FROM metrics
		WHERE granularity = ? AND year = ? AND period_index BETWEEN ? AND ?
		ORDER BY period_index, source`,
		string(g), year, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing metric rows: %w", err)
	}
	defer rows.Close()

	var (
		out          []domain.ActualMetrics
		current       *domain.ActualMetrics
		weightedAccum float64
		weightAccum   int
		plainAccum    float64
		plainRows     int
		metricIDs     = map[string]int{} // metric row id -> index in out
	)

	// Registration-weighted average across sources; rows without
	// registrations only count when no source reported any.
	flushClosure := func() {
		if current == nil {
			return
		}
		if weightAccum > 0 {
			current.ClosureRatio = weightedAccum / float64(weightAccum)
		} else if plainRows > 0 {
			current.ClosureRatio = plainAccum / float64(plainRows)
		}
	}

	for rows.Next() {
		var (
			id, source   string
			index        int
			viltS, viltC int
			iltS, iltC   int
			hours        float64
			regs, seats  int
			closure      float64
		)
		if err := rows.Scan(&id, &index, &source,
			&viltS, &viltC, &iltS, &iltC, &hours, &regs, &seats, &closure); err != nil {
			return nil, fmt.Errorf("scanning metric row: %w", err)
		}

		if current == nil || current.Period.Index != index {
			flushClosure()
			out = append(out, domain.ActualMetrics{
				Period: domain.Period{Granularity: g, Year: year, Index: index},
			})
			current = &out[len(out)-1]
			weightedAccum, weightAccum = 0, 0
			plainAccum, plainRows = 0, 0
		}

		current.Sources = append(current.Sources, domain.MetricSource(source))
		current.VILTScheduled += viltS
		current.VILTCompleted += viltC
		current.ILTScheduled += iltS
		current.ILTCompleted += iltC
		current.LearningHours += hours
		current.Registrations += regs
		current.Capacity += seats
		if regs > 0 {
			weightedAccum += closure * float64(regs)
			weightAccum += regs
		} else {
			plainAccum += closure
			plainRows++
		}
		metricIDs[id] = len(out) - 1
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating metric rows: %w", err)
	}
	flushClosure()

	if len(out) == 0 {
		return nil, nil
	}
	if err := r.attachCompetencyHours(ctx, metricIDs, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLiteMetricsRepo) attachCompetencyHours(ctx context.Context, metricIDs map[string]int, out []domain.ActualMetrics) error {
	for id, idx := range metricIDs {
		rows, err := r.db.QueryContext(ctx,
			`SELECT area, hours FROM metric_competency_hours WHERE metric_id = ?`, id)
		if err != nil {
			return fmt.Errorf("loading competency hours: %w", err)
		}
		for rows.Next() {
			var (
				area  string
				hours float64
			)
			if err := rows.Scan(&area, &hours); err != nil {
				rows.Close()
				return fmt.Errorf("scanning competency hours: %w", err)
			}
			if out[idx].CompetencyHours == nil {
				out[idx].CompetencyHours = map[string]float64{}
			}
			out[idx].CompetencyHours[area] += hours
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("iterating competency hours: %w", err)
		}
		rows.Close()
	}
	return nil
}
