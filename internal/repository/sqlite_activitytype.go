package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arshjul/yearwheel/internal/db"
	"github.com/arshjul/yearwheel/internal/domain"
)

// SQLiteActivityTypeRepo implements ActivityTypeRepo on a SQLite
// database or transaction.
type SQLiteActivityTypeRepo struct {
	db db.DBTX
}

// NewSQLiteActivityTypeRepo creates a new SQLiteActivityTypeRepo.
func NewSQLiteActivityTypeRepo(dbtx db.DBTX) *SQLiteActivityTypeRepo {
	return &SQLiteActivityTypeRepo{db: dbtx}
}

const activityTypeColumns = `key, organization_id, label, icon, color, highlight_color,
	description, is_system, sort_order`

func (r *SQLiteActivityTypeRepo) Upsert(ctx context.Context, t *domain.ActivityTypeConfig) error {
	query := `INSERT INTO activity_types (` + activityTypeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (organization_id, key) DO UPDATE SET
			label = excluded.label,
			icon = excluded.icon,
			color = excluded.color,
			highlight_color = excluded.highlight_color,
			description = excluded.description,
			sort_order = excluded.sort_order`
	_, err := r.db.ExecContext(ctx, query,
		t.Key,
		t.OrganizationID,
		t.Label,
		t.Icon,
		t.Color,
		t.HighlightColor,
		t.Description,
		boolToInt(t.IsSystem),
		t.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("upserting activity type: %w", err)
	}
	return nil
}

func (r *SQLiteActivityTypeRepo) Get(ctx context.Context, organizationID, key string) (*domain.ActivityTypeConfig, error) {
	query := `SELECT ` + activityTypeColumns + ` FROM activity_types
		WHERE organization_id = ? AND key = ?`
	t, err := scanActivityType(r.db.QueryRowContext(ctx, query, organizationID, key))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning activity type: %w", err)
	}
	return t, nil
}

func (r *SQLiteActivityTypeRepo) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.ActivityTypeConfig, error) {
	query := `SELECT ` + activityTypeColumns + ` FROM activity_types
		WHERE organization_id = ? ORDER BY sort_order, key`
	rows, err := r.db.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("listing activity types: %w", err)
	}
	defer rows.Close()

	var types []*domain.ActivityTypeConfig
	for rows.Next() {
		t, err := scanActivityType(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning activity type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity types: %w", err)
	}
	return types, nil
}

func (r *SQLiteActivityTypeRepo) Delete(ctx context.Context, organizationID, key string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM activity_types WHERE organization_id = ? AND key = ? AND is_system = 0`,
		organizationID, key)
	if err != nil {
		return fmt.Errorf("deleting activity type: %w", err)
	}
	return requireAffected(res, "activity type")
}

func scanActivityType(s rowScanner) (*domain.ActivityTypeConfig, error) {
	var t domain.ActivityTypeConfig
	var system int

	err := s.Scan(
		&t.Key, &t.OrganizationID, &t.Label, &t.Icon, &t.Color, &t.HighlightColor,
		&t.Description, &system, &t.SortOrder,
	)
	if err != nil {
		return nil, err
	}
	t.IsSystem = intToBool(system)
	return &t, nil
}
