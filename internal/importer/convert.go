package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arshjul/yearwheel/internal/db"
	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/repository"
)

// Result summarizes a completed import.
type Result struct {
	Layers     int
	Activities int
}

// Importer writes validated import files in a single transaction.
type Importer struct {
	uow db.UnitOfWork
}

func NewImporter(uow db.UnitOfWork) *Importer {
	return &Importer{uow: uow}
}

// Convert turns a validated schema into domain objects. Layer refs are
// resolved to generated IDs; missing ring indexes count up from base.
func Convert(schema *WheelImport, organizationID, userID string, now time.Time) ([]*domain.Layer, []*domain.Activity, error) {
	now = now.UTC()

	layerByRef := make(map[string]*domain.Layer, len(schema.Layers))
	layers := make([]*domain.Layer, 0, len(schema.Layers))
	for i, li := range schema.Layers {
		layerType := domain.LayerType(li.Type)
		if li.Type == "" {
			layerType = domain.LayerCustom
		}
		ringIndex := i
		if li.RingIndex != nil {
			ringIndex = *li.RingIndex
		}
		l := &domain.Layer{
			ID:             uuid.New().String(),
			Name:           li.Name,
			Description:    li.Description,
			Type:           layerType,
			Color:          li.Color,
			RingIndex:      ringIndex,
			IsVisible:      !li.Hidden,
			OrganizationID: organizationID,
			CreatedBy:      userID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		layerByRef[li.Ref] = l
		layers = append(layers, l)
	}

	activities := make([]*domain.Activity, 0, len(schema.Activities))
	for i, ai := range schema.Activities {
		layer, ok := layerByRef[ai.LayerRef]
		if !ok {
			return nil, nil, fmt.Errorf("activities[%d]: unresolved layer_ref %q", i, ai.LayerRef)
		}

		start, err := time.Parse("2006-01-02", ai.StartDate)
		if err != nil {
			return nil, nil, fmt.Errorf("activities[%d].start_date: %w", i, err)
		}
		end := start
		if ai.EndDate != "" {
			end, err = time.Parse("2006-01-02", ai.EndDate)
			if err != nil {
				return nil, nil, fmt.Errorf("activities[%d].end_date: %w", i, err)
			}
		}

		typeKey := ai.Type
		if typeKey == "" {
			typeKey = "other"
		}

		activities = append(activities, &domain.Activity{
			ID:             uuid.New().String(),
			Title:          ai.Title,
			StartDate:      domain.DateOnly(start),
			EndDate:        domain.DateOnly(end),
			TypeKey:        typeKey,
			Color:          ai.Color,
			Description:    ai.Description,
			LayerID:        layer.ID,
			OrganizationID: organizationID,
			CreatedBy:      userID,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	return layers, activities, nil
}

// Import validates, converts and writes the schema. Either every layer
// and activity lands or none do.
func (imp *Importer) Import(ctx context.Context, schema *WheelImport, organizationID, userID string) (*Result, error) {
	if errs := Validate(schema); len(errs) > 0 {
		return nil, fmt.Errorf("import file has %d problems, first: %w", len(errs), errs[0])
	}

	layers, activities, err := Convert(schema, organizationID, userID, time.Now())
	if err != nil {
		return nil, err
	}

	err = imp.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		layerRepo := repository.NewSQLiteLayerRepo(tx)
		for _, l := range layers {
			if err := layerRepo.Create(ctx, l); err != nil {
				return fmt.Errorf("importing layer %q: %w", l.Name, err)
			}
		}
		activityRepo := repository.NewSQLiteActivityRepo(tx)
		for _, a := range activities {
			if err := activityRepo.Create(ctx, a); err != nil {
				return fmt.Errorf("importing activity %q: %w", a.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{Layers: len(layers), Activities: len(activities)}, nil
}
