package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arshjul/yearwheel/internal/db"
	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
	layers     repository.LayerRepo
	types      repository.ActivityTypeRepo
	uow        db.UnitOfWork
}

func NewActivityService(activities repository.ActivityRepo, layers repository.LayerRepo, types repository.ActivityTypeRepo, uow db.UnitOfWork) ActivityService {
	return &activityService{activities: activities, layers: layers, types: types, uow: uow}
}

func (s *activityService) Create(ctx context.Context, a *domain.Activity) error {
	if err := s.prepare(ctx, a); err != nil {
		return err
	}
	return s.activities.Create(ctx, a)
}

func (s *activityService) CreateRepeating(ctx context.Context, a *domain.Activity, interval domain.RepeatInterval, count int) ([]*domain.Activity, error) {
	switch interval {
	case domain.RepeatWeekly, domain.RepeatMonthly, domain.RepeatYearly:
	default:
		return nil, validationErrorf("unknown repeat interval %q", interval)
	}
	if count < 2 || count > maxRepeatCount {
		return nil, validationErrorf("repeat count must be between 2 and %d", maxRepeatCount)
	}
	if err := s.prepare(ctx, a); err != nil {
		return nil, err
	}

	a.RepeatGroupID = uuid.New().String()
	occurrences := make([]*domain.Activity, 0, count)
	for i := 0; i < count; i++ {
		occ := *a
		if i > 0 {
			occ.ID = uuid.New().String()
			occ.StartDate = shiftDate(a.StartDate, interval, i)
			occ.EndDate = shiftDate(a.EndDate, interval, i)
		}
		occurrences = append(occurrences, &occ)
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)
		for _, occ := range occurrences {
			if err := txActivities.Create(ctx, occ); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return occurrences, nil
}

func (s *activityService) GetByID(ctx context.Context, organizationID, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, organizationID, id)
}

func (s *activityService) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Activity, error) {
	return s.activities.ListByOrganization(ctx, organizationID)
}

func (s *activityService) ListByLayer(ctx context.Context, organizationID, layerID string) ([]*domain.Activity, error) {
	return s.activities.ListByLayer(ctx, organizationID, layerID)
}

func (s *activityService) Update(ctx context.Context, a *domain.Activity) error {
	if err := validateActivity(a); err != nil {
		return err
	}
	if err := s.checkTypeKey(ctx, a.OrganizationID, a.TypeKey); err != nil {
		return err
	}
	a.StartDate = domain.DateOnly(a.StartDate)
	a.EndDate = domain.DateOnly(a.EndDate)
	a.UpdatedAt = time.Now().UTC()
	return s.activities.Update(ctx, a)
}

func (s *activityService) Delete(ctx context.Context, organizationID, id string) error {
	return s.activities.Delete(ctx, organizationID, id)
}

func (s *activityService) DeleteGroup(ctx context.Context, organizationID, id string) (int64, error) {
	a, err := s.activities.GetByID(ctx, organizationID, id)
	if err != nil {
		return 0, err
	}
	if a.RepeatGroupID == "" {
		if err := s.activities.Delete(ctx, organizationID, id); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return s.activities.DeleteRepeatGroup(ctx, organizationID, a.RepeatGroupID)
}

// prepare validates, stamps identity and timestamps, and checks the
// referenced layer and type key.
func (s *activityService) prepare(ctx context.Context, a *domain.Activity) error {
	if err := validateActivity(a); err != nil {
		return err
	}
	if _, err := s.layers.GetByID(ctx, a.OrganizationID, a.LayerID); err != nil {
		return err
	}
	if a.TypeKey == "" {
		a.TypeKey = "other"
	}
	if err := s.checkTypeKey(ctx, a.OrganizationID, a.TypeKey); err != nil {
		return err
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.StartDate = domain.DateOnly(a.StartDate)
	a.EndDate = domain.DateOnly(a.EndDate)
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

// checkTypeKey accepts built-in keys and any custom type registered
// for the organization.
func (s *activityService) checkTypeKey(ctx context.Context, organizationID, key string) error {
	if domain.ValidActivityTypes[key] {
		return nil
	}
	if _, err := s.types.Get(ctx, organizationID, key); err != nil {
		return validationErrorf("unknown activity type %q", key)
	}
	return nil
}

func shiftDate(d time.Time, interval domain.RepeatInterval, n int) time.Time {
	switch interval {
	case domain.RepeatWeekly:
		return d.AddDate(0, 0, 7*n)
	case domain.RepeatMonthly:
		return d.AddDate(0, n, 0)
	default:
		return d.AddDate(n, 0, 0)
	}
}
