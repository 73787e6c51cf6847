package service

import (
	"context"
	"errors"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/repository"
)

type settingsService struct {
	settings repository.UserSettingsRepo
}

func NewSettingsService(settings repository.UserSettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context, organizationID, userID string) (*domain.UserSettings, error) {
	settings, err := s.settings.Get(ctx, organizationID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewUserSettings(userID, organizationID, time.Now().UTC()), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, settings *domain.UserSettings) error {
	if settings.UserID == "" || settings.OrganizationID == "" {
		return validationErrorf("user and organization ids are required")
	}
	switch settings.Theme {
	case domain.ThemeLight, domain.ThemeDark, domain.ThemeAuto:
	case "":
		settings.Theme = domain.ThemeAuto
	default:
		return validationErrorf("unknown theme %q", settings.Theme)
	}
	settings.UpdatedAt = time.Now().UTC()
	return s.settings.Upsert(ctx, settings)
}
