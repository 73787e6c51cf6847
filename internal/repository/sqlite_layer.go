package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arshjul/yearwheel/internal/db"
	"github.com/arshjul/yearwheel/internal/domain"
)

// SQLiteLayerRepo implements LayerRepo on a SQLite database or
// transaction.
type SQLiteLayerRepo struct {
	db db.DBTX
}

// NewSQLiteLayerRepo creates a new SQLiteLayerRepo.
func NewSQLiteLayerRepo(dbtx db.DBTX) *SQLiteLayerRepo {
	return &SQLiteLayerRepo{db: dbtx}
}

const layerColumns = `id, name, description, type, color, ring_index, is_visible,
	organization_id, created_by, created_at, updated_at`

func (r *SQLiteLayerRepo) Create(ctx context.Context, l *domain.Layer) error {
	query := `INSERT INTO layers (` + layerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.Name,
		l.Description,
		string(l.Type),
		l.Color,
		l.RingIndex,
		boolToInt(l.IsVisible),
		l.OrganizationID,
		l.CreatedBy,
		l.CreatedAt.Format(time.RFC3339),
		l.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting layer: %w", err)
	}
	return nil
}

func (r *SQLiteLayerRepo) GetByID(ctx context.Context, organizationID, id string) (*domain.Layer, error) {
	query := `SELECT ` + layerColumns + ` FROM layers WHERE organization_id = ? AND id = ?`
	l, err := scanLayer(r.db.QueryRowContext(ctx, query, organizationID, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning layer: %w", err)
	}
	return l, nil
}

func (r *SQLiteLayerRepo) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Layer, error) {
	query := `SELECT ` + layerColumns + ` FROM layers
		WHERE organization_id = ? ORDER BY ring_index, created_at, id`
	rows, err := r.db.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("listing layers: %w", err)
	}
	defer rows.Close()

	var layers []*domain.Layer
	for rows.Next() {
		l, err := scanLayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning layer: %w", err)
		}
		layers = append(layers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating layers: %w", err)
	}
	return layers, nil
}

func (r *SQLiteLayerRepo) Update(ctx context.Context, l *domain.Layer) error {
	query := `UPDATE layers SET name = ?, description = ?, type = ?, color = ?,
		ring_index = ?, is_visible = ?, updated_at = ?
		WHERE organization_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query,
		l.Name,
		l.Description,
		string(l.Type),
		l.Color,
		l.RingIndex,
		boolToInt(l.IsVisible),
		l.UpdatedAt.Format(time.RFC3339),
		l.OrganizationID,
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating layer: %w", err)
	}
	return requireAffected(res, "layer")
}

func (r *SQLiteLayerRepo) Delete(ctx context.Context, organizationID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM layers WHERE organization_id = ? AND id = ?`, organizationID, id)
	if err != nil {
		return fmt.Errorf("deleting layer: %w", err)
	}
	return requireAffected(res, "layer")
}

func scanLayer(s rowScanner) (*domain.Layer, error) {
	var l domain.Layer
	var typeStr, createdStr, updatedStr string
	var visible int

	err := s.Scan(
		&l.ID, &l.Name, &l.Description, &typeStr, &l.Color, &l.RingIndex,
		&visible, &l.OrganizationID, &l.CreatedBy, &createdStr, &updatedStr,
	)
	if err != nil {
		return nil, err
	}

	l.Type = domain.LayerType(typeStr)
	l.IsVisible = intToBool(visible)
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	l.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)
	return &l, nil
}
