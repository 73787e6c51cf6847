package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/repository"
	"github.com/arshjul/yearwheel/internal/testutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type serviceEnv struct {
	activities repository.ActivityRepo
	layers     repository.LayerRepo
	types      repository.ActivityTypeRepo
	shares     repository.ShareRepo
	settings   repository.UserSettingsRepo

	activitySvc ActivityService
	layerSvc    LayerService
	typeSvc     TypeService
	shareSvc    ShareService
	settingsSvc SettingsService
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	env := &serviceEnv{
		activities: repository.NewSQLiteActivityRepo(database),
		layers:     repository.NewSQLiteLayerRepo(database),
		types:      repository.NewSQLiteActivityTypeRepo(database),
		shares:     repository.NewSQLiteShareRepo(database),
		settings:   repository.NewSQLiteUserSettingsRepo(database),
	}
	env.activitySvc = NewActivityService(env.activities, env.layers, env.types, uow)
	env.layerSvc = NewLayerService(env.layers, uow)
	env.typeSvc = NewTypeService(env.types)
	env.shareSvc = NewShareService(env.shares, env.layers, env.activities)
	env.settingsSvc = NewSettingsService(env.settings)
	return env
}

func (e *serviceEnv) createLayer(t *testing.T, name string) *domain.Layer {
	t.Helper()
	layer := testutil.NewTestLayer(name)
	require.NoError(t, e.layers.Create(context.Background(), layer))
	return layer
}

func TestActivityService_Create_StampsIdentity(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	layer := env.createLayer(t, "Operations")

	a := &domain.Activity{
		Title:          "Budget review",
		StartDate:      date(2025, time.October, 1),
		EndDate:        date(2025, time.October, 3),
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	require.NoError(t, env.activitySvc.Create(ctx, a))
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "other", a.TypeKey)
	assert.False(t, a.CreatedAt.IsZero())

	fetched, err := env.activitySvc.GetByID(ctx, testutil.TestOrgID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budget review", fetched.Title)
}

func TestActivityService_Create_RejectsMissingLayer(t *testing.T) {
	env := newServiceEnv(t)

	a := &domain.Activity{
		Title:          "Orphan",
		StartDate:      date(2025, time.October, 1),
		EndDate:        date(2025, time.October, 1),
		LayerID:        "nonexistent",
		OrganizationID: testutil.TestOrgID,
	}
	err := env.activitySvc.Create(context.Background(), a)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityService_Create_RejectsUnknownType(t *testing.T) {
	env := newServiceEnv(t)
	layer := env.createLayer(t, "Operations")

	a := &domain.Activity{
		Title:          "Mystery",
		StartDate:      date(2025, time.October, 1),
		EndDate:        date(2025, time.October, 1),
		TypeKey:        "mystery",
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	err := env.activitySvc.Create(context.Background(), a)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestActivityService_Create_AcceptsCustomType(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	layer := env.createLayer(t, "Operations")

	require.NoError(t, env.typeSvc.Upsert(ctx, &domain.ActivityTypeConfig{
		Key: "audit", Label: "Audit", OrganizationID: testutil.TestOrgID,
	}))

	a := &domain.Activity{
		Title:          "Annual audit",
		StartDate:      date(2025, time.November, 1),
		EndDate:        date(2025, time.November, 5),
		TypeKey:        "audit",
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	assert.NoError(t, env.activitySvc.Create(ctx, a))
}

func TestActivityService_Create_RejectsLongTitle(t *testing.T) {
	env := newServiceEnv(t)
	layer := env.createLayer(t, "Operations")

	long := make([]rune, 201)
	for i := range long {
		long[i] = 'x'
	}
	a := &domain.Activity{
		Title:          string(long),
		StartDate:      date(2025, time.October, 1),
		EndDate:        date(2025, time.October, 1),
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	err := env.activitySvc.Create(context.Background(), a)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestActivityService_CreateRepeating_Weekly(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	layer := env.createLayer(t, "Operations")

	a := &domain.Activity{
		Title:          "Standup",
		StartDate:      date(2025, time.March, 3),
		EndDate:        date(2025, time.March, 3),
		TypeKey:        "meeting",
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	occurrences, err := env.activitySvc.CreateRepeating(ctx, a, domain.RepeatWeekly, 4)
	require.NoError(t, err)
	require.Len(t, occurrences, 4)

	group := occurrences[0].RepeatGroupID
	require.NotEmpty(t, group)
	for i, occ := range occurrences {
		assert.Equal(t, group, occ.RepeatGroupID)
		assert.Equal(t, date(2025, time.March, 3+7*i), occ.StartDate)
	}

	stored, err := env.activitySvc.ListByOrganization(ctx, testutil.TestOrgID)
	require.NoError(t, err)
	assert.Len(t, stored, 4)
}

func TestActivityService_CreateRepeating_MonthlyAndYearlyShift(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	layer := env.createLayer(t, "Operations")

	a := &domain.Activity{
		Title:          "Board meeting",
		StartDate:      date(2025, time.January, 15),
		EndDate:        date(2025, time.January, 15),
		TypeKey:        "meeting",
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	monthly, err := env.activitySvc.CreateRepeating(ctx, a, domain.RepeatMonthly, 3)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.February, 15), monthly[1].StartDate)
	assert.Equal(t, date(2025, time.March, 15), monthly[2].StartDate)

	b := &domain.Activity{
		Title:          "Annual meeting",
		StartDate:      date(2025, time.June, 1),
		EndDate:        date(2025, time.June, 1),
		TypeKey:        "meeting",
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	yearly, err := env.activitySvc.CreateRepeating(ctx, b, domain.RepeatYearly, 2)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.June, 1), yearly[1].StartDate)
}

func TestActivityService_CreateRepeating_InvalidInput(t *testing.T) {
	env := newServiceEnv(t)
	layer := env.createLayer(t, "Operations")

	a := &domain.Activity{
		Title:          "Bad",
		StartDate:      date(2025, time.March, 3),
		EndDate:        date(2025, time.March, 3),
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	_, err := env.activitySvc.CreateRepeating(context.Background(), a, "daily", 4)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.activitySvc.CreateRepeating(context.Background(), a, domain.RepeatWeekly, 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.activitySvc.CreateRepeating(context.Background(), a, domain.RepeatWeekly, 54)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestActivityService_CreateRepeating_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	activities := repository.NewSQLiteActivityRepo(database)
	layers := repository.NewSQLiteLayerRepo(database)
	types := repository.NewSQLiteActivityTypeRepo(database)

	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: injected}
	svc := NewActivityService(activities, layers, types, uow)
	ctx := context.Background()

	layer := testutil.NewTestLayer("Operations")
	require.NoError(t, layers.Create(ctx, layer))

	a := &domain.Activity{
		Title:          "Standup",
		StartDate:      date(2025, time.March, 3),
		EndDate:        date(2025, time.March, 3),
		TypeKey:        "meeting",
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	_, err := svc.CreateRepeating(ctx, a, domain.RepeatWeekly, 4)
	require.ErrorIs(t, err, injected)

	stored, err := activities.ListByOrganization(ctx, testutil.TestOrgID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestActivityService_DeleteGroup(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	layer := env.createLayer(t, "Operations")

	a := &domain.Activity{
		Title:          "Standup",
		StartDate:      date(2025, time.March, 3),
		EndDate:        date(2025, time.March, 3),
		TypeKey:        "meeting",
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	occurrences, err := env.activitySvc.CreateRepeating(ctx, a, domain.RepeatWeekly, 4)
	require.NoError(t, err)

	n, err := env.activitySvc.DeleteGroup(ctx, testutil.TestOrgID, occurrences[2].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	remaining, err := env.activitySvc.ListByOrganization(ctx, testutil.TestOrgID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestActivityService_DeleteGroup_OneOff(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	layer := env.createLayer(t, "Operations")

	a := &domain.Activity{
		Title:          "One-off",
		StartDate:      date(2025, time.April, 1),
		EndDate:        date(2025, time.April, 1),
		LayerID:        layer.ID,
		OrganizationID: testutil.TestOrgID,
	}
	require.NoError(t, env.activitySvc.Create(ctx, a))

	n, err := env.activitySvc.DeleteGroup(ctx, testutil.TestOrgID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
