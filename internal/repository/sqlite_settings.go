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

// SQLiteUserSettingsRepo implements UserSettingsRepo on a SQLite
// database or transaction.
type SQLiteUserSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteUserSettingsRepo creates a new SQLiteUserSettingsRepo.
func NewSQLiteUserSettingsRepo(dbtx db.DBTX) *SQLiteUserSettingsRepo {
	return &SQLiteUserSettingsRepo{db: dbtx}
}

func (r *SQLiteUserSettingsRepo) Get(ctx context.Context, organizationID, userID string) (*domain.UserSettings, error) {
	query := `SELECT user_id, organization_id, layer_order, layer_visibility, theme, updated_at
		FROM user_settings WHERE organization_id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, organizationID, userID)

	var s domain.UserSettings
	var layerOrder, layerVisibility, theme, updatedStr string
	err := row.Scan(&s.UserID, &s.OrganizationID, &layerOrder, &layerVisibility, &theme, &updatedStr)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user settings: %w", err)
	}

	if err := json.Unmarshal([]byte(layerOrder), &s.LayerOrder); err != nil {
		return nil, fmt.Errorf("unmarshaling layer order: %w", err)
	}
	if err := json.Unmarshal([]byte(layerVisibility), &s.LayerVisibility); err != nil {
		return nil, fmt.Errorf("unmarshaling layer visibility: %w", err)
	}
	s.Theme = domain.ShareTheme(theme)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)
	return &s, nil
}

func (r *SQLiteUserSettingsRepo) Upsert(ctx context.Context, s *domain.UserSettings) error {
	layerOrder := s.LayerOrder
	if layerOrder == nil {
		layerOrder = []string{}
	}
	layerVisibility := s.LayerVisibility
	if layerVisibility == nil {
		layerVisibility = domain.ScopeFilters{}
	}

	orderJSON, err := json.Marshal(layerOrder)
	if err != nil {
		return fmt.Errorf("marshaling layer order: %w", err)
	}
	visibilityJSON, err := json.Marshal(layerVisibility)
	if err != nil {
		return fmt.Errorf("marshaling layer visibility: %w", err)
	}

	query := `INSERT INTO user_settings (user_id, organization_id, layer_order, layer_visibility, theme, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (organization_id, user_id) DO UPDATE SET
			layer_order = excluded.layer_order,
			layer_visibility = excluded.layer_visibility,
			theme = excluded.theme,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		s.UserID,
		s.OrganizationID,
		string(orderJSON),
		string(visibilityJSON),
		string(s.Theme),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting user settings: %w", err)
	}
	return nil
}
