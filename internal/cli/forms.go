package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/arshjul/yearwheel/internal/cli/formatter"
)

// wheelHuhTheme styles huh forms to match the formatter palette.
func wheelHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateDate(s)
}

// activityForm builds the interactive form for "activity add". The
// layer select is populated from the organization's rings and the type
// select from its configured activity types.
func (app *App) activityForm(ctx context.Context, title, start, end, layerRef, typeKey, desc *string) (*huh.Form, error) {
	layers, err := app.Layers.ListByOrganization(ctx, app.OrganizationID)
	if err != nil {
		return nil, err
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers exist yet; create one with: yearwheel layer add")
	}
	layerOptions := make([]huh.Option[string], 0, len(layers))
	for _, l := range layers {
		layerOptions = append(layerOptions, huh.NewOption(l.Name, l.ID))
	}

	types, err := app.Types.List(ctx, app.OrganizationID)
	if err != nil {
		return nil, err
	}
	typeOptions := make([]huh.Option[string], 0, len(types))
	for _, t := range types {
		typeOptions = append(typeOptions, huh.NewOption(t.Label, t.Key))
	}
	if len(typeOptions) == 0 {
		typeOptions = append(typeOptions, huh.NewOption("Other", "other"))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Styremøte").
				Value(title).
				Validate(validateRequired),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Placeholder("2026-06-12").
				Value(start).
				Validate(validateDate),
			huh.NewInput().
				Title("End date (blank for single day)").
				Value(end).
				Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Layer").
				Options(layerOptions...).
				Value(layerRef),
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOptions...).
				Value(typeKey),
			huh.NewInput().
				Title("Description (optional)").
				Value(desc),
		),
	).WithTheme(wheelHuhTheme()).WithShowHelp(false), nil
}
