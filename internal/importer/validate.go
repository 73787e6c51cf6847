package importer

import (
	"fmt"
	"time"
)

var validLayerTypes = map[string]bool{"": true, "holidays": true, "organization": true, "custom": true}

// Validate checks the import schema before conversion. All problems
// are collected so a file can be fixed in one pass.
func Validate(schema *WheelImport) []error {
	var errs []error

	if len(schema.Layers) == 0 {
		errs = append(errs, fmt.Errorf("at least one layer is required"))
	}

	layerRefs := make(map[string]bool, len(schema.Layers))
	for i, l := range schema.Layers {
		prefix := fmt.Sprintf("layers[%d]", i)
		if l.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if layerRefs[l.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref %q is duplicated", prefix, l.Ref))
		}
		layerRefs[l.Ref] = true

		if l.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if !validLayerTypes[l.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, l.Type))
		}
	}

	for i, a := range schema.Activities {
		prefix := fmt.Sprintf("activities[%d]", i)
		if a.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if a.LayerRef == "" {
			errs = append(errs, fmt.Errorf("%s.layer_ref is required", prefix))
		} else if !layerRefs[a.LayerRef] {
			errs = append(errs, fmt.Errorf("%s.layer_ref %q does not match any layer", prefix, a.LayerRef))
		}

		start, startErr := parseImportDate(prefix+".start_date", a.StartDate, true)
		if startErr != nil {
			errs = append(errs, startErr)
		}
		if a.EndDate != "" {
			end, endErr := parseImportDate(prefix+".end_date", a.EndDate, false)
			if endErr != nil {
				errs = append(errs, endErr)
			} else if startErr == nil && end.Before(start) {
				errs = append(errs, fmt.Errorf("%s: end_date %q is before start_date %q", prefix, a.EndDate, a.StartDate))
			}
		}
	}

	return errs
}

func parseImportDate(field, value string, required bool) (time.Time, error) {
	if value == "" {
		if required {
			return time.Time{}, fmt.Errorf("%s is required", field)
		}
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD)", field, value)
	}
	return t, nil
}
