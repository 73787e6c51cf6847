package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveID matches user input against a list of IDs: exact match
// first, then unique prefix. Mirrored across activities, layers and
// shares so short IDs from list output work everywhere.
func resolveID(input, entity string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", entity)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", entity, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", entity, input, len(matches))
	}
}

func (app *App) resolveActivityID(ctx context.Context, input string) (string, error) {
	activities, err := app.Activities.ListByOrganization(ctx, app.OrganizationID)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return resolveID(input, "activity", ids)
}

func (app *App) resolveLayerID(ctx context.Context, input string) (string, error) {
	layers, err := app.Layers.ListByOrganization(ctx, app.OrganizationID)
	if err != nil {
		return "", err
	}

	// Layers also resolve by name, case-insensitive.
	for _, l := range layers {
		if strings.EqualFold(l.Name, input) {
			return l.ID, nil
		}
	}

	ids := make([]string, 0, len(layers))
	for _, l := range layers {
		ids = append(ids, l.ID)
	}
	return resolveID(input, "layer", ids)
}

func (app *App) resolveShareID(ctx context.Context, input string) (string, error) {
	shares, err := app.Shares.List(ctx, app.OrganizationID)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(shares))
	for _, s := range shares {
		if s.ShortCode == input {
			return s.ID, nil
		}
		ids = append(ids, s.ID)
	}
	return resolveID(input, "share", ids)
}
