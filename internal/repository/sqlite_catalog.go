package repository

import (
	"context"
	"fmt"

	"github.com/creative-h/aopplan/internal/db"
	"github.com/creative-h/aopplan/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo over catalog_actions and
// catalog_competency_effects.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(dbtx db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: dbtx}
}

func (r *SQLiteCatalogRepo) Upsert(ctx context.Context, name string, effect domain.ActionEffect) error {
	query := `INSERT INTO catalog_actions (name, learning_hours, vilt_sessions, ilt_sessions, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			learning_hours = excluded.learning_hours,
			vilt_sessions = excluded.vilt_sessions,
			ilt_sessions = excluded.ilt_sessions,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		name, effect.LearningHours, effect.VILTSessions, effect.ILTSessions, nowUTC(),
	); err != nil {
		return fmt.Errorf("upserting catalog action: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM catalog_competency_effects WHERE action_name = ?`, name,
	); err != nil {
		return fmt.Errorf("clearing competency effects: %w", err)
	}
	for area, hours := range effect.CompetencyHours {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO catalog_competency_effects (action_name, area, hours) VALUES (?, ?, ?)`,
			name, area, hours,
		); err != nil {
			return fmt.Errorf("inserting competency effect %s: %w", area, err)
		}
	}
	return nil
}

func (r *SQLiteCatalogRepo) Get(ctx context.Context) (domain.ActionCatalog, error) {
	catalog := domain.ActionCatalog{Actions: map[string]domain.ActionEffect{}}

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, learning_hours, vilt_sessions, ilt_sessions FROM catalog_actions`)
	if err != nil {
		return catalog, fmt.Errorf("listing catalog actions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name   string
			effect domain.ActionEffect
		)
		if err := rows.Scan(&name, &effect.LearningHours, &effect.VILTSessions, &effect.ILTSessions); err != nil {
			return catalog, fmt.Errorf("scanning catalog action: %w", err)
		}
		catalog.Actions[name] = effect
	}
	if err := rows.Err(); err != nil {
		return catalog, fmt.Errorf("iterating catalog actions: %w", err)
	}

	compRows, err := r.db.QueryContext(ctx,
		`SELECT action_name, area, hours FROM catalog_competency_effects`)
	if err != nil {
		return catalog, fmt.Errorf("listing competency effects: %w", err)
	}
	defer compRows.Close()

	for compRows.Next() {
		var (
			name, area string
			hours      float64
		)
		if err := compRows.Scan(&name, &area, &hours); err != nil {
			return catalog, fmt.Errorf("scanning competency effect: %w", err)
		}
		effect, ok := catalog.Actions[name]
		if !ok {
			continue
		}
		if effect.CompetencyHours == nil {
			effect.CompetencyHours = map[string]float64{}
		}
		effect.CompetencyHours[area] = hours
		catalog.Actions[name] = effect
	}
	if err := compRows.Err(); err != nil {
		return catalog, fmt.Errorf("iterating competency effects: %w", err)
	}
	return catalog, nil
}

func (r *SQLiteCatalogRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM catalog_actions WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting catalog action: %w", err)
	}
	return nil
}
