package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arshjul/yearwheel/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import layers and activities from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadFile(args[0])
			if err != nil {
				return err
			}

			if errs := importer.Validate(schema); len(errs) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Import file has %d problems:\n", len(errs))
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", e)
				}
				return fmt.Errorf("import aborted")
			}

			result, err := app.Importer.Import(cmd.Context(), schema, app.OrganizationID, app.UserID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d layers and %d activities\n", result.Layers, result.Activities)
			return nil
		},
	}
}
