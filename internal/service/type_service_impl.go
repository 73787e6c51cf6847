package service

import (
	"context"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/repository"
)

type typeService struct {
	types repository.ActivityTypeRepo
}

func NewTypeService(types repository.ActivityTypeRepo) TypeService {
	return &typeService{types: types}
}

func (s *typeService) SeedDefaults(ctx context.Context, organizationID string) error {
	if organizationID == "" {
		return validationErrorf("organization id is required")
	}
	for _, t := range domain.DefaultActivityTypes(organizationID) {
		t := t
		if err := s.types.Upsert(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}

func (s *typeService) List(ctx context.Context, organizationID string) ([]*domain.ActivityTypeConfig, error) {
	return s.types.ListByOrganization(ctx, organizationID)
}

func (s *typeService) Upsert(ctx context.Context, t *domain.ActivityTypeConfig) error {
	if t.Key == "" {
		return validationErrorf("type key is required")
	}
	if err := validateName("label", t.Label); err != nil {
		return err
	}
	if err := validateDescription(t.Description); err != nil {
		return err
	}
	if t.OrganizationID == "" {
		return validationErrorf("organization id is required")
	}
	// Built-in keys stay system-owned.
	if domain.ValidActivityTypes[t.Key] {
		t.IsSystem = true
	}
	return s.types.Upsert(ctx, t)
}

func (s *typeService) Delete(ctx context.Context, organizationID, key string) error {
	if domain.ValidActivityTypes[key] {
		return validationErrorf("built-in type %q cannot be deleted", key)
	}
	return s.types.Delete(ctx, organizationID, key)
}
