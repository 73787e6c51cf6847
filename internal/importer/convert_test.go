package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/repository"
	"github.com/arshjul/yearwheel/internal/testutil"
)

func TestConvert(t *testing.T) {
	now := time.Date(2026, 2, 7, 10, 30, 0, 0, time.UTC)

	layers, activities, err := Convert(validSchema(), "org-1", "user-1", now)
	require.NoError(t, err)
	require.Len(t, layers, 2)
	require.Len(t, activities, 2)

	assert.Equal(t, 0, layers[0].RingIndex)
	assert.Equal(t, 1, layers[1].RingIndex, "missing ring_index counts up")
	assert.Equal(t, domain.LayerCustom, layers[1].Type, "type defaults to custom")
	assert.True(t, layers[0].IsVisible)
	assert.Equal(t, "org-1", layers[0].OrganizationID)

	assert.Equal(t, layers[0].ID, activities[0].LayerID)
	assert.Equal(t, "other", activities[0].TypeKey)
	assert.Equal(t, activities[0].StartDate, activities[0].EndDate, "end defaults to start")
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), activities[1].EndDate)
}

func TestConvertHonorsExplicitRingIndex(t *testing.T) {
	five := 5
	schema := &WheelImport{
		Layers: []LayerImport{{Ref: "a", Name: "A", RingIndex: &five, Hidden: true}},
	}

	layers, _, err := Convert(schema, "org-1", "user-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 5, layers[0].RingIndex)
	assert.False(t, layers[0].IsVisible)
}

func TestImportWritesEverything(t *testing.T) {
	database := testutil.NewTestDB(t)
	imp := NewImporter(testutil.NewTestUoW(database))

	result, err := imp.Import(context.Background(), validSchema(), testutil.TestOrgID, testutil.TestUserID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Layers)
	assert.Equal(t, 2, result.Activities)

	layers, err := repository.NewSQLiteLayerRepo(database).ListByOrganization(context.Background(), testutil.TestOrgID)
	require.NoError(t, err)
	assert.Len(t, layers, 2)

	activities, err := repository.NewSQLiteActivityRepo(database).ListByOrganization(context.Background(), testutil.TestOrgID)
	require.NoError(t, err)
	assert.Len(t, activities, 2)
}

func TestImportRejectsInvalidSchema(t *testing.T) {
	database := testutil.NewTestDB(t)
	imp := NewImporter(testutil.NewTestUoW(database))

	_, err := imp.Import(context.Background(), &WheelImport{}, testutil.TestOrgID, testutil.TestUserID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one layer")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	content := `
layers:
  - ref: drift
    name: Drift
    color: "#458588"
activities:
  - layer_ref: drift
    title: Sommerfest
    start_date: "2026-06-12"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	schema, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, schema.Layers, 1)
	require.Len(t, schema.Activities, 1)
	assert.Equal(t, "Drift", schema.Layers[0].Name)
	assert.Empty(t, Validate(schema))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
