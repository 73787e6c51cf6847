package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arshjul/yearwheel/internal/cli/formatter"
	"github.com/arshjul/yearwheel/internal/domain"
)

func newLayerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layer",
		Short: "Manage layers (the wheel's rings)",
	}

	cmd.AddCommand(
		newLayerAddCmd(app),
		newLayerListCmd(app),
		newLayerReorderCmd(app),
		newLayerRemoveCmd(app),
	)

	return cmd
}

func newLayerAddCmd(app *App) *cobra.Command {
	var name, layerType, color, desc string
	var hidden bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a layer",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := &domain.Layer{
				Name:           name,
				Description:    desc,
				Type:           domain.LayerType(layerType),
				Color:          color,
				IsVisible:      !hidden,
				OrganizationID: app.OrganizationID,
				CreatedBy:      app.UserID,
			}

			if err := app.Layers.Create(cmd.Context(), l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created layer %s on ring %d [%s]\n", l.Name, l.RingIndex, l.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Layer name")
	cmd.Flags().StringVar(&layerType, "type", "custom", "Layer type (holidays|organization|custom)")
	cmd.Flags().StringVar(&color, "color", "#8ec07c", "Layer color (hex)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Create the layer hidden")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLayerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List layers inside-out",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			layers, err := app.Layers.ListByOrganization(ctx, app.OrganizationID)
			if err != nil {
				return err
			}
			if len(layers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No layers found.")
				return nil
			}

			activities, err := app.Activities.ListByOrganization(ctx, app.OrganizationID)
			if err != nil {
				return err
			}
			counts := make(map[string]int)
			for _, a := range activities {
				counts[a.LayerID]++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatLayerList(layers, counts))
			return nil
		},
	}
}

func newLayerReorderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder <id>...",
		Short: "Rewrite ring order, innermost first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ids := make([]string, 0, len(args))
			for _, ref := range args {
				id, err := app.resolveLayerID(ctx, ref)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			if err := app.Layers.Reorder(ctx, app.OrganizationID, ids); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reordered %d layers\n", len(ids))
			return nil
		},
	}

	return cmd
}

func newLayerRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a layer and its activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := app.resolveLayerID(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Layers.Delete(ctx, app.OrganizationID, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted layer")
			return nil
		},
	}
}
