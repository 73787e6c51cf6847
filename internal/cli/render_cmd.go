package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/render"
	"github.com/arshjul/yearwheel/internal/service"
	"github.com/arshjul/yearwheel/internal/wheel"
)

func newRenderCmd(app *App) *cobra.Command {
	var (
		today     string
		compact   bool
		focus     string
		stylePath string
		theme     string
		out       string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the wheel to SVG or PNG",
		Long: `Render the organization's annual wheel. Output format follows the
--out extension: .svg writes markup directly, .png renders through a
headless browser. Without --out the SVG goes to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := service.WheelParams{
				OrganizationID: app.OrganizationID,
				UserID:         app.UserID,
				Viewport:       wheel.ViewportFull,
				HighlightedID:  focus,
			}
			if compact {
				params.Viewport = wheel.ViewportCompact
			}
			if today != "" {
				t, err := time.Parse("2006-01-02", today)
				if err != nil {
					return fmt.Errorf("invalid --today %q: %w", today, err)
				}
				params.Today = t
			}

			frame, err := app.Wheel.Frame(cmd.Context(), params)
			if err != nil {
				return err
			}

			style := render.StyleForTheme(domain.ShareTheme(theme))
			if stylePath != "" {
				style, err = render.LoadStyle(stylePath)
				if err != nil {
					return fmt.Errorf("loading style: %w", err)
				}
			}

			renderFrame := render.Frame{
				Layout:   frame.Layout,
				ViewBox:  frame.ViewBox,
				Rotation: frame.Rotation,
			}

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), render.SVG(renderFrame, style))
				return nil
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			if strings.HasSuffix(strings.ToLower(out), ".png") {
				if err := render.PNG(cmd.Context(), renderFrame, style, f); err != nil {
					return fmt.Errorf("rendering png: %w", err)
				}
			} else {
				if _, err := f.WriteString(render.SVG(renderFrame, style)); err != nil {
					return fmt.Errorf("writing svg: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&today, "today", "", "Anchor date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Use the compact viewport")
	cmd.Flags().StringVar(&focus, "focus", "", "Activity ID to rotate into view")
	cmd.Flags().StringVar(&stylePath, "style", "", "YAML style file overriding the theme")
	cmd.Flags().StringVar(&theme, "theme", "light", "Theme when no style file is given (light|dark)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (.svg or .png); stdout when omitted")

	return cmd
}
