package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arshjul/yearwheel/internal/db"
	"github.com/arshjul/yearwheel/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo on a SQLite database or
// transaction.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(dbtx db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: dbtx}
}

const activityColumns = `id, title, start_date, end_date, type_key, color, highlight_color,
	description, layer_id, repeat_group_id, organization_id, created_by, created_at, updated_at`

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Title,
		domain.DateOnly(a.StartDate).Format(dateLayout),
		domain.DateOnly(a.EndDate).Format(dateLayout),
		a.TypeKey,
		a.Color,
		a.HighlightColor,
		a.Description,
		a.LayerID,
		nullableString(a.RepeatGroupID),
		a.OrganizationID,
		a.CreatedBy,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, organizationID, id string) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE organization_id = ? AND id = ?`
	a, err := scanActivity(r.db.QueryRowContext(ctx, query, organizationID, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning activity: %w", err)
	}
	return a, nil
}

func (r *SQLiteActivityRepo) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE organization_id = ? ORDER BY start_date, id`
	return r.list(ctx, query, organizationID)
}

func (r *SQLiteActivityRepo) ListByLayer(ctx context.Context, organizationID, layerID string) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE organization_id = ? AND layer_id = ? ORDER BY start_date, id`
	return r.list(ctx, query, organizationID, layerID)
}

func (r *SQLiteActivityRepo) ListWindow(ctx context.Context, organizationID string, start, end time.Time) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities
		WHERE organization_id = ? AND end_date >= ? AND start_date <= ?
		ORDER BY start_date, id`
	return r.list(ctx, query,
		organizationID,
		domain.DateOnly(start).Format(dateLayout),
		domain.DateOnly(end).Format(dateLayout),
	)
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities SET title = ?, start_date = ?, end_date = ?, type_key = ?,
		color = ?, highlight_color = ?, description = ?, layer_id = ?, updated_at = ?
		WHERE organization_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Title,
		domain.DateOnly(a.StartDate).Format(dateLayout),
		domain.DateOnly(a.EndDate).Format(dateLayout),
		a.TypeKey,
		a.Color,
		a.HighlightColor,
		a.Description,
		a.LayerID,
		a.UpdatedAt.Format(time.RFC3339),
		a.OrganizationID,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	return requireAffected(res, "activity")
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, organizationID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM activities WHERE organization_id = ? AND id = ?`, organizationID, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return requireAffected(res, "activity")
}

func (r *SQLiteActivityRepo) DeleteRepeatGroup(ctx context.Context, organizationID, repeatGroupID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM activities WHERE organization_id = ? AND repeat_group_id = ?`,
		organizationID, repeatGroupID)
	if err != nil {
		return 0, fmt.Errorf("deleting repeat group: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted rows: %w", err)
	}
	return n, nil
}

func (r *SQLiteActivityRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(s rowScanner) (*domain.Activity, error) {
	var a domain.Activity
	var startStr, endStr, createdStr, updatedStr string
	var repeatGroup sql.NullString

	err := s.Scan(
		&a.ID, &a.Title, &startStr, &endStr, &a.TypeKey, &a.Color, &a.HighlightColor,
		&a.Description, &a.LayerID, &repeatGroup, &a.OrganizationID, &a.CreatedBy,
		&createdStr, &updatedStr,
	)
	if err != nil {
		return nil, err
	}

	a.StartDate, _ = time.Parse(dateLayout, startStr)
	a.EndDate, _ = time.Parse(dateLayout, endStr)
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	a.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)
	if repeatGroup.Valid {
		a.RepeatGroupID = repeatGroup.String
	}
	return &a, nil
}

// requireAffected maps zero-row writes to ErrNotFound.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
