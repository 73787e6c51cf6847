package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/arshjul/yearwheel/internal/config"
	"github.com/arshjul/yearwheel/internal/importer"
	"github.com/arshjul/yearwheel/internal/service"
)

// App holds references to all service interfaces used by CLI commands,
// plus the HTTP router for the serve command.
type App struct {
	Activities service.ActivityService
	Layers     service.LayerService
	Types      service.TypeService
	Shares     service.ShareService
	Settings   service.SettingsService
	Wheel      service.WheelService
	Importer   *importer.Importer

	Config config.Config
	Router http.Handler

	// OrganizationID and UserID identify who local commands act as.
	// The HTTP API takes these from the bearer token instead.
	OrganizationID string
	UserID         string

	// IsInteractive reports whether stdin is a terminal, gating the
	// interactive activity form.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "yearwheel" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "yearwheel",
		Short: "Annual wheel planner: layers, activities and shareable radial timelines",
	}

	root.PersistentFlags().StringVar(&app.OrganizationID, "org", app.OrganizationID, "Organization ID local commands act on")
	root.PersistentFlags().StringVar(&app.UserID, "user", app.UserID, "User ID local commands act as")

	root.AddCommand(
		newServeCmd(app),
		newRenderCmd(app),
		newActivityCmd(app),
		newLayerCmd(app),
		newShareCmd(app),
		newTypesCmd(app),
		newImportCmd(app),
	)

	return root
}
