package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arshjul/yearwheel/internal/cli/formatter"
	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/service"
)

func newShareCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Manage share links",
	}

	cmd.AddCommand(
		newShareCreateCmd(app),
		newShareListCmd(app),
		newShareRenewCmd(app),
		newShareRevokeCmd(app),
	)

	return cmd
}

func newShareCreateCmd(app *App) *cobra.Command {
	var name, desc, visibility string
	var layerRefs []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a share link for selected layers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			layerIDs := make([]string, 0, len(layerRefs))
			for _, ref := range layerRefs {
				id, err := app.resolveLayerID(ctx, ref)
				if err != nil {
					return err
				}
				layerIDs = append(layerIDs, id)
			}

			share, err := app.Shares.Create(ctx, service.CreateShareParams{
				OrganizationID: app.OrganizationID,
				CreatedBy:      app.UserID,
				Name:           name,
				Description:    desc,
				Visibility:     domain.ShareVisibility(visibility),
				LayerConfig:    domain.ShareLayerConfig{LayerIDs: layerIDs},
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatShareCreated(share, app.Config.BaseURL))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Share name")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&visibility, "visibility", "public", "Visibility (public|users)")
	cmd.Flags().StringSliceVar(&layerRefs, "layer", nil, "Layer to expose (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("layer")

	return cmd
}

func newShareListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List share links",
		RunE: func(cmd *cobra.Command, args []string) error {
			shares, err := app.Shares.List(cmd.Context(), app.OrganizationID)
			if err != nil {
				return err
			}
			if len(shares) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No share links found.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatShareList(shares, time.Now().UTC()))
			return nil
		},
	}
}

func newShareRenewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "renew <id>",
		Short: "Extend a share that is close to expiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := app.resolveShareID(ctx, args[0])
			if err != nil {
				return err
			}
			share, err := app.Shares.Renew(ctx, app.OrganizationID, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renewed %s until %s\n", share.Name, share.ExpiresAt.Format("Jan 2, 2006"))
			return nil
		},
	}
}

func newShareRevokeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <id>",
		Short: "Deactivate a share link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := app.resolveShareID(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Shares.Revoke(ctx, app.OrganizationID, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Revoked share link")
			return nil
		},
	}
}
