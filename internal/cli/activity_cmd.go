package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arshjul/yearwheel/internal/cli/formatter"
	"github.com/arshjul/yearwheel/internal/domain"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage activities",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityShowCmd(app),
		newActivityUpdateCmd(app),
		newActivityRemoveCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var (
		title, start, end, layerRef, typeKey, color, desc string
		repeat                                            string
		count                                             int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an activity",
		Long: `Create an activity on a layer. Without flags an interactive form
opens when stdin is a terminal. With --repeat the activity is expanded
into a series (weekly, monthly or yearly).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				form, err := app.activityForm(ctx, &title, &start, &end, &layerRef, &typeKey, &desc)
				if err != nil {
					return err
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate := startDate
			if end != "" {
				endDate, err = time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
			}

			layerID, err := app.resolveLayerID(ctx, layerRef)
			if err != nil {
				return err
			}

			a := &domain.Activity{
				Title:          title,
				StartDate:      startDate,
				EndDate:        endDate,
				TypeKey:        typeKey,
				Color:          color,
				Description:    desc,
				LayerID:        layerID,
				OrganizationID: app.OrganizationID,
				CreatedBy:      app.UserID,
			}

			if repeat != "" {
				occurrences, err := app.Activities.CreateRepeating(ctx, a, domain.RepeatInterval(repeat), count)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %d occurrences of %s (%s)\n", len(occurrences), a.Title, repeat)
				return nil
			}

			if err := app.Activities.Create(ctx, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created activity %s [%s]\n", a.Title, a.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Activity title")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, defaults to start)")
	cmd.Flags().StringVar(&layerRef, "layer", "", "Layer ID, ID prefix or name")
	cmd.Flags().StringVar(&typeKey, "type", "", "Activity type key (defaults to other)")
	cmd.Flags().StringVar(&color, "color", "", "Override color (hex)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&repeat, "repeat", "", "Repeat interval (weekly|monthly|yearly)")
	cmd.Flags().IntVar(&count, "count", 0, "Number of occurrences when repeating")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var layerRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			layers, err := app.Layers.ListByOrganization(ctx, app.OrganizationID)
			if err != nil {
				return err
			}
			layerNames := make(map[string]string, len(layers))
			for _, l := range layers {
				layerNames[l.ID] = l.Name
			}

			var activities []*domain.Activity
			if layerRef != "" {
				layerID, err := app.resolveLayerID(ctx, layerRef)
				if err != nil {
					return err
				}
				activities, err = app.Activities.ListByLayer(ctx, app.OrganizationID, layerID)
				if err != nil {
					return err
				}
			} else {
				activities, err = app.Activities.ListByOrganization(ctx, app.OrganizationID)
				if err != nil {
					return err
				}
			}

			if len(activities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activities found.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatActivityList(activities, layerNames))
			return nil
		},
	}

	cmd.Flags().StringVar(&layerRef, "layer", "", "Only activities on this layer")

	return cmd
}

func newActivityShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := app.resolveActivityID(ctx, args[0])
			if err != nil {
				return err
			}
			a, err := app.Activities.GetByID(ctx, app.OrganizationID, id)
			if err != nil {
				return err
			}

			layerName := a.LayerID
			if l, err := app.Layers.GetByID(ctx, app.OrganizationID, a.LayerID); err == nil {
				layerName = l.Name
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatActivityDetail(a, layerName))
			return nil
		},
	}

	return cmd
}

func newActivityUpdateCmd(app *App) *cobra.Command {
	var title, start, end, typeKey, color, desc string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := app.resolveActivityID(ctx, args[0])
			if err != nil {
				return err
			}
			a, err := app.Activities.GetByID(ctx, app.OrganizationID, id)
			if err != nil {
				return err
			}

			if title != "" {
				a.Title = title
			}
			if start != "" {
				a.StartDate, err = time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
			}
			if end != "" {
				a.EndDate, err = time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
			}
			if typeKey != "" {
				a.TypeKey = typeKey
			}
			if color != "" {
				a.Color = color
			}
			if desc != "" {
				a.Description = desc
			}

			if err := app.Activities.Update(ctx, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated activity %s\n", a.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&typeKey, "type", "", "New activity type key")
	cmd.Flags().StringVar(&color, "color", "", "New color (hex)")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")

	return cmd
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	var group bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := app.resolveActivityID(ctx, args[0])
			if err != nil {
				return err
			}

			if group {
				n, err := app.Activities.DeleteGroup(ctx, app.OrganizationID, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d occurrences\n", n)
				return nil
			}

			if err := app.Activities.Delete(ctx, app.OrganizationID, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted activity")
			return nil
		},
	}

	cmd.Flags().BoolVar(&group, "group", false, "Delete the whole repeat series")

	return cmd
}
