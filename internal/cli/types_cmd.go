package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arshjul/yearwheel/internal/cli/formatter"
)

func newTypesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Manage activity types",
	}

	cmd.AddCommand(
		newTypesSeedCmd(app),
		newTypesListCmd(app),
	)

	return cmd
}

func newTypesSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the built-in activity types",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Types.SeedDefaults(cmd.Context(), app.OrganizationID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Seeded built-in activity types")
			return nil
		},
	}
}

func newTypesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List activity types",
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := app.Types.List(cmd.Context(), app.OrganizationID)
			if err != nil {
				return err
			}
			if len(types) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activity types configured. Run: yearwheel types seed")
				return nil
			}

			headers := []string{"KEY", "LABEL", "ICON", "COLOR", "SYSTEM"}
			rows := make([][]string, 0, len(types))
			for _, t := range types {
				system := formatter.Dim("no")
				if t.IsSystem {
					system = formatter.StyleGreen.Render("yes")
				}
				rows = append(rows, []string{
					formatter.Bold(t.Key),
					t.Label,
					t.Icon,
					formatter.Swatch(t.Color),
					system,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.RenderBox("Activity types", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}
