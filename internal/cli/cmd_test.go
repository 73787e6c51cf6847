package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/importer"
	"github.com/arshjul/yearwheel/internal/repository"
	"github.com/arshjul/yearwheel/internal/service"
	"github.com/arshjul/yearwheel/internal/testutil"
)

type fixedHolidays []domain.Holiday

func (f fixedHolidays) Holidays(context.Context, time.Time, time.Time) ([]domain.Holiday, error) {
	return f, nil
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	activities := repository.NewSQLiteActivityRepo(database)
	layers := repository.NewSQLiteLayerRepo(database)
	types := repository.NewSQLiteActivityTypeRepo(database)
	shares := repository.NewSQLiteShareRepo(database)
	settings := repository.NewSQLiteUserSettingsRepo(database)

	return &App{
		Activities:     service.NewActivityService(activities, layers, types, uow),
		Layers:         service.NewLayerService(layers, uow),
		Types:          service.NewTypeService(types),
		Shares:         service.NewShareService(shares, layers, activities),
		Settings:       service.NewSettingsService(settings),
		Wheel:          service.NewWheelService(activities, layers, settings, fixedHolidays(nil), service.NoopUseCaseObserver{}),
		Importer:       importer.NewImporter(uow),
		OrganizationID: testutil.TestOrgID,
		UserID:         testutil.TestUserID,
		IsInteractive:  func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedLayer(t *testing.T, app *App, name string) *domain.Layer {
	t.Helper()
	l := &domain.Layer{
		Name:           name,
		Type:           domain.LayerCustom,
		Color:          "#458588",
		IsVisible:      true,
		OrganizationID: app.OrganizationID,
		CreatedBy:      app.UserID,
	}
	require.NoError(t, app.Layers.Create(context.Background(), l))
	return l
}

func seedActivity(t *testing.T, app *App, layerID, title string) *domain.Activity {
	t.Helper()
	a := &domain.Activity{
		Title:          title,
		LayerID:        layerID,
		TypeKey:        "event",
		StartDate:      time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		OrganizationID: app.OrganizationID,
		CreatedBy:      app.UserID,
	}
	require.NoError(t, app.Activities.Create(context.Background(), a))
	return a
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "yearwheel")
}

func TestLayerAddCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "layer", "add", "--name", "Drift")
	require.NoError(t, err)

	layers, err := app.Layers.ListByOrganization(context.Background(), app.OrganizationID)
	require.NoError(t, err)
	require.Len(t, layers, 1)
	assert.Equal(t, "Drift", layers[0].Name)
}

func TestLayerAddCmd_RequiresName(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "layer", "add")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestLayerListCmd_EmptyDB(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "layer", "list")
	require.NoError(t, err)
}

func TestLayerReorderCmd(t *testing.T) {
	app := testApp(t)
	first := seedLayer(t, app, "Drift")
	second := seedLayer(t, app, "Marked")

	_, err := executeCmd(t, app, "layer", "reorder", second.ID, first.ID)
	require.NoError(t, err)

	layers, err := app.Layers.ListByOrganization(context.Background(), app.OrganizationID)
	require.NoError(t, err)
	require.Len(t, layers, 2)
	assert.Equal(t, second.ID, layers[0].ID)
}

func TestActivityAddCmd(t *testing.T) {
	app := testApp(t)
	layer := seedLayer(t, app, "Drift")

	_, err := executeCmd(t, app, "activity", "add",
		"--title", "Sommerfest",
		"--start", "2026-06-12",
		"--layer", layer.ID,
		"--type", "event",
	)
	require.NoError(t, err)

	activities, err := app.Activities.ListByOrganization(context.Background(), app.OrganizationID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Sommerfest", activities[0].Title)
	assert.Equal(t, activities[0].StartDate, activities[0].EndDate, "end defaults to start")
}

func TestActivityShowCmd(t *testing.T) {
	app := testApp(t)
	layer := seedLayer(t, app, "Drift")
	a := seedActivity(t, app, layer.ID, "Sommerfest")

	output, err := executeCmd(t, app, "activity", "show", a.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, output, "Sommerfest")
	assert.Contains(t, output, "Drift")
}

func TestActivityAddCmd_ResolvesLayerByName(t *testing.T) {
	app := testApp(t)
	layer := seedLayer(t, app, "Drift")

	_, err := executeCmd(t, app, "activity", "add",
		"--title", "Styremøte",
		"--start", "2026-03-02",
		"--layer", "drift",
	)
	require.NoError(t, err)

	activities, err := app.Activities.ListByOrganization(context.Background(), app.OrganizationID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, layer.ID, activities[0].LayerID)
}

func TestActivityAddCmd_Repeating(t *testing.T) {
	app := testApp(t)
	layer := seedLayer(t, app, "Drift")

	_, err := executeCmd(t, app, "activity", "add",
		"--title", "Månedsrapport",
		"--start", "2026-01-05",
		"--layer", layer.ID,
		"--repeat", "monthly",
		"--count", "6",
	)
	require.NoError(t, err)

	activities, err := app.Activities.ListByOrganization(context.Background(), app.OrganizationID)
	require.NoError(t, err)
	assert.Len(t, activities, 6)
}

func TestActivityAddCmd_BadDate(t *testing.T) {
	app := testApp(t)
	seedLayer(t, app, "Drift")

	_, err := executeCmd(t, app, "activity", "add",
		"--title", "Sommerfest",
		"--start", "12.06.2026",
		"--layer", "Drift",
	)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
}

func TestActivityRemoveCmd_ByPrefix(t *testing.T) {
	app := testApp(t)
	layer := seedLayer(t, app, "Drift")
	ctx := context.Background()

	a := testutil.NewTestActivity("Sommerfest", layer.ID)
	require.NoError(t, app.Activities.Create(ctx, a))

	_, err := executeCmd(t, app, "activity", "remove", a.ID[:8])
	require.NoError(t, err)

	activities, err := app.Activities.ListByOrganization(ctx, app.OrganizationID)
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestShareCreateAndRevokeCmd(t *testing.T) {
	app := testApp(t)
	layer := seedLayer(t, app, "Drift")
	ctx := context.Background()

	_, err := executeCmd(t, app, "share", "create",
		"--name", "Styret",
		"--layer", layer.ID,
	)
	require.NoError(t, err)

	shares, err := app.Shares.List(ctx, app.OrganizationID)
	require.NoError(t, err)
	require.Len(t, shares, 1)

	_, err = executeCmd(t, app, "share", "revoke", shares[0].ShortCode)
	require.NoError(t, err)

	shares, err = app.Shares.List(ctx, app.OrganizationID)
	require.NoError(t, err)
	assert.False(t, shares[0].IsActive)
}

func TestTypesSeedAndListCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "types", "seed")
	require.NoError(t, err)

	types, err := app.Types.List(context.Background(), app.OrganizationID)
	require.NoError(t, err)
	assert.NotEmpty(t, types)

	_, err = executeCmd(t, app, "types", "list")
	require.NoError(t, err)
}

func TestRenderCmd_WritesSVGToStdout(t *testing.T) {
	app := testApp(t)
	layer := seedLayer(t, app, "Drift")
	ctx := context.Background()

	a := testutil.NewTestActivity("Budsjett", layer.ID)
	require.NoError(t, app.Activities.Create(ctx, a))

	output, err := executeCmd(t, app, "render", "--today", "2026-08-26")
	require.NoError(t, err)
	assert.Contains(t, output, "<svg")
}

func TestImportCmd(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "wheel.yaml")
	content := `
layers:
  - ref: drift
    name: Drift
activities:
  - layer_ref: drift
    title: Sommerfest
    start_date: "2026-06-12"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)

	layers, err := app.Layers.ListByOrganization(context.Background(), app.OrganizationID)
	require.NoError(t, err)
	assert.Len(t, layers, 1)
}

func TestImportCmd_InvalidFile(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "wheel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layers: []\n"), 0o644))

	output, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.Contains(t, output, "at least one layer")
}

func TestRenderCmd_BadToday(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "render", "--today", "26.08.2026")
	assert.Error(t, err)
}
