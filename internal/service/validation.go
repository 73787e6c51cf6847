package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/arshjul/yearwheel/internal/domain"
)

// Validation limits for caller-supplied fields.
const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
	maxShareLayers       = 100
	maxLayersPerOrg      = 100
	maxRepeatCount       = 53
)

// ErrValidation wraps all input validation failures so transports can
// map them to a 400 uniformly.
var ErrValidation = errors.New("validation failed")

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func validateName(field, name string) error {
	if name == "" {
		return validationErrorf("%s is required", field)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return validationErrorf("%s exceeds %d characters", field, maxNameLength)
	}
	return nil
}

func validateDescription(desc string) error {
	if utf8.RuneCountInString(desc) > maxDescriptionLength {
		return validationErrorf("description exceeds %d characters", maxDescriptionLength)
	}
	return nil
}

func validateActivity(a *domain.Activity) error {
	if err := validateName("title", a.Title); err != nil {
		return err
	}
	if err := validateDescription(a.Description); err != nil {
		return err
	}
	if a.OrganizationID == "" {
		return validationErrorf("organization id is required")
	}
	if a.LayerID == "" {
		return validationErrorf("layer id is required")
	}
	if a.StartDate.IsZero() || a.EndDate.IsZero() {
		return validationErrorf("start and end dates are required")
	}
	return nil
}

func validateLayer(l *domain.Layer) error {
	if err := validateName("name", l.Name); err != nil {
		return err
	}
	if err := validateDescription(l.Description); err != nil {
		return err
	}
	if l.OrganizationID == "" {
		return validationErrorf("organization id is required")
	}
	switch l.Type {
	case domain.LayerHolidays, domain.LayerOrganization, domain.LayerCustom:
	default:
		return validationErrorf("unknown layer type %q", l.Type)
	}
	return nil
}
