package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/testutil"
)

func TestLayerService_Create_AssignsOutermostRing(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	first := &domain.Layer{Name: "Inner", Type: domain.LayerCustom, OrganizationID: testutil.TestOrgID}
	require.NoError(t, env.layerSvc.Create(ctx, first))
	assert.Equal(t, 0, first.RingIndex)

	second := &domain.Layer{Name: "Next", Type: domain.LayerCustom, OrganizationID: testutil.TestOrgID}
	require.NoError(t, env.layerSvc.Create(ctx, second))
	assert.Equal(t, 1, second.RingIndex)

	third := &domain.Layer{Name: "Outer", Type: domain.LayerCustom, OrganizationID: testutil.TestOrgID}
	require.NoError(t, env.layerSvc.Create(ctx, third))
	assert.Equal(t, 2, third.RingIndex)
}

func TestLayerService_Create_RejectsUnknownType(t *testing.T) {
	env := newServiceEnv(t)

	l := &domain.Layer{Name: "Bad", Type: "banana", OrganizationID: testutil.TestOrgID}
	err := env.layerSvc.Create(context.Background(), l)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLayerService_Reorder(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	a := env.createLayer(t, "A")
	b := env.createLayer(t, "B")
	c := env.createLayer(t, "C")

	require.NoError(t, env.layerSvc.Reorder(ctx, testutil.TestOrgID, []string{c.ID, a.ID, b.ID}))

	list, err := env.layerSvc.ListByOrganization(ctx, testutil.TestOrgID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "C", list[0].Name)
	assert.Equal(t, "A", list[1].Name)
	assert.Equal(t, "B", list[2].Name)
}

func TestLayerService_Reorder_RejectsDuplicates(t *testing.T) {
	env := newServiceEnv(t)
	a := env.createLayer(t, "A")

	err := env.layerSvc.Reorder(context.Background(), testutil.TestOrgID, []string{a.ID, a.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLayerService_Reorder_UnknownLayerRollsBack(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()

	a := env.createLayer(t, "A")
	a.RingIndex = 5
	require.NoError(t, env.layers.Update(ctx, a))

	err := env.layerSvc.Reorder(ctx, testutil.TestOrgID, []string{a.ID, "nonexistent"})
	require.Error(t, err)

	fetched, err := env.layerSvc.GetByID(ctx, testutil.TestOrgID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fetched.RingIndex)
}
