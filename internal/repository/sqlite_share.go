package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arshjul/yearwheel/internal/db"
	"github.com/arshjul/yearwheel/internal/domain"
)

// SQLiteShareRepo implements ShareRepo on a SQLite database or
// transaction. Layer config and view settings are stored as JSON text
// columns.
type SQLiteShareRepo struct {
	db db.DBTX
}

// NewSQLiteShareRepo creates a new SQLiteShareRepo.
func NewSQLiteShareRepo(dbtx db.DBTX) *SQLiteShareRepo {
	return &SQLiteShareRepo{db: dbtx}
}

const shareColumns = `id, share_key, short_code, visibility, organization_id, created_by,
	created_at, expires_at, renewed_at, name, description, layer_config, view_settings,
	view_count, last_accessed_at, is_active`

func (r *SQLiteShareRepo) Create(ctx context.Context, s *domain.ShareLink) error {
	layerConfig, err := json.Marshal(s.LayerConfig)
	if err != nil {
		return fmt.Errorf("marshaling layer config: %w", err)
	}
	viewSettings, err := json.Marshal(s.ViewSettings)
	if err != nil {
		return fmt.Errorf("marshaling view settings: %w", err)
	}

	query := `INSERT INTO shares (` + shareColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.ShareKey,
		s.ShortCode,
		string(s.Visibility),
		s.OrganizationID,
		s.CreatedBy,
		s.CreatedAt.Format(time.RFC3339),
		s.ExpiresAt.Format(time.RFC3339),
		nullableTimeToString(s.RenewedAt, time.RFC3339),
		s.Name,
		s.Description,
		string(layerConfig),
		string(viewSettings),
		s.Stats.ViewCount,
		nullableTimeToString(s.Stats.LastAccessedAt, time.RFC3339),
		boolToInt(s.IsActive),
	)
	if err != nil {
		return fmt.Errorf("inserting share: %w", err)
	}
	return nil
}

func (r *SQLiteShareRepo) GetByID(ctx context.Context, organizationID, id string) (*domain.ShareLink, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE organization_id = ? AND id = ?`
	return r.get(ctx, query, organizationID, id)
}

func (r *SQLiteShareRepo) GetByShortCode(ctx context.Context, shortCode string) (*domain.ShareLink, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE short_code = ?`
	return r.get(ctx, query, shortCode)
}

func (r *SQLiteShareRepo) get(ctx context.Context, query string, args ...any) (*domain.ShareLink, error) {
	s, err := scanShare(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning share: %w", err)
	}
	return s, nil
}

func (r *SQLiteShareRepo) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.ShareLink, error) {
	query := `SELECT ` + shareColumns + ` FROM shares
		WHERE organization_id = ? ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("listing shares: %w", err)
	}
	defer rows.Close()

	var shares []*domain.ShareLink
	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning share: %w", err)
		}
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shares: %w", err)
	}
	return shares, nil
}

func (r *SQLiteShareRepo) Update(ctx context.Context, s *domain.ShareLink) error {
	layerConfig, err := json.Marshal(s.LayerConfig)
	if err != nil {
		return fmt.Errorf("marshaling layer config: %w", err)
	}
	viewSettings, err := json.Marshal(s.ViewSettings)
	if err != nil {
		return fmt.Errorf("marshaling view settings: %w", err)
	}

	query := `UPDATE shares SET visibility = ?, expires_at = ?, renewed_at = ?, name = ?,
		description = ?, layer_config = ?, view_settings = ?, is_active = ?
		WHERE organization_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(s.Visibility),
		s.ExpiresAt.Format(time.RFC3339),
		nullableTimeToString(s.RenewedAt, time.RFC3339),
		s.Name,
		s.Description,
		string(layerConfig),
		string(viewSettings),
		boolToInt(s.IsActive),
		s.OrganizationID,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating share: %w", err)
	}
	return requireAffected(res, "share")
}

func (r *SQLiteShareRepo) Delete(ctx context.Context, organizationID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM shares WHERE organization_id = ? AND id = ?`, organizationID, id)
	if err != nil {
		return fmt.Errorf("deleting share: %w", err)
	}
	return requireAffected(res, "share")
}

func (r *SQLiteShareRepo) IncrementViews(ctx context.Context, id string, accessedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE shares SET view_count = view_count + 1, last_accessed_at = ? WHERE id = ?`,
		accessedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("incrementing share views: %w", err)
	}
	return requireAffected(res, "share")
}

func scanShare(sc rowScanner) (*domain.ShareLink, error) {
	var s domain.ShareLink
	var visibility, createdStr, expiresStr, layerConfig, viewSettings string
	var renewed, lastAccessed sql.NullString
	var active int

	err := sc.Scan(
		&s.ID, &s.ShareKey, &s.ShortCode, &visibility, &s.OrganizationID, &s.CreatedBy,
		&createdStr, &expiresStr, &renewed, &s.Name, &s.Description, &layerConfig,
		&viewSettings, &s.Stats.ViewCount, &lastAccessed, &active,
	)
	if err != nil {
		return nil, err
	}

	s.Visibility = domain.ShareVisibility(visibility)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	s.ExpiresAt, _ = time.Parse(time.RFC3339, expiresStr)
	s.RenewedAt = parseNullableTime(renewed, time.RFC3339)
	s.Stats.LastAccessedAt = parseNullableTime(lastAccessed, time.RFC3339)
	s.IsActive = intToBool(active)

	if err := json.Unmarshal([]byte(layerConfig), &s.LayerConfig); err != nil {
		return nil, fmt.Errorf("unmarshaling layer config: %w", err)
	}
	if err := json.Unmarshal([]byte(viewSettings), &s.ViewSettings); err != nil {
		return nil, fmt.Errorf("unmarshaling view settings: %w", err)
	}
	return &s, nil
}
