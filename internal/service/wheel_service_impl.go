package service

import (
	"context"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/repository"
	"github.com/arshjul/yearwheel/internal/wheel"
)

// HolidaySource supplies public holidays for a date window. Feed
// outages must not break layout passes; implementations return what
// they have and the service degrades to an empty holiday set on error.
type HolidaySource interface {
	Holidays(ctx context.Context, from, to time.Time) ([]domain.Holiday, error)
}

type wheelService struct {
	activities repository.ActivityRepo
	layers     repository.LayerRepo
	settings   repository.UserSettingsRepo
	holidays   HolidaySource
	observer   UseCaseObserver
}

func NewWheelService(activities repository.ActivityRepo, layers repository.LayerRepo, settings repository.UserSettingsRepo, holidays HolidaySource, observer UseCaseObserver) WheelService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &wheelService{
		activities: activities,
		layers:     layers,
		settings:   settings,
		holidays:   holidays,
		observer:   observer,
	}
}

func (s *wheelService) Frame(ctx context.Context, p WheelParams) (frame *WheelFrame, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "wheel_frame", startedAt, err, map[string]any{
			"organization_id": p.OrganizationID,
			"viewport":        string(p.Viewport),
		})
	}()

	if p.OrganizationID == "" {
		return nil, validationErrorf("organization id is required")
	}
	today := domain.DateOnly(p.Today)
	if p.Today.IsZero() {
		today = domain.DateOnly(time.Now().UTC())
	}
	if p.Viewport == "" {
		p.Viewport = wheel.ViewportFull
	}

	layers, err := s.layers.ListByOrganization(ctx, p.OrganizationID)
	if err != nil {
		return nil, err
	}

	filters := p.Filters
	if filters == nil && p.UserID != "" {
		if saved, serr := s.settings.Get(ctx, p.OrganizationID, p.UserID); serr == nil {
			filters = saved.LayerVisibility
		}
	}

	window := wheel.NewAxis(today, wheel.WheelCenter).Window(wheel.DefaultWindowHalfWidthDays)
	activities, err := s.activities.ListWindow(ctx, p.OrganizationID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	activities = append(activities, s.holidayActivities(ctx, layers, window)...)

	layout := wheel.Layout(wheel.LayoutInput{
		Today:      today,
		Activities: activities,
		Layers:     layers,
		Filters:    filters,
	})

	return &WheelFrame{
		Layout:   layout,
		Rotation: wheel.RotationFor(wheel.NewAxis(today, wheel.WheelCenter), p.HighlightedID, activities, p.Viewport),
		ViewBox:  wheel.ViewBox(p.Viewport),
		Layers:   domain.SortLayers(layers),
	}, nil
}

// holidayActivities turns feed entries into activity records on the
// organization's holidays layer. Returns nil when no holidays layer
// exists or the feed is unavailable.
func (s *wheelService) holidayActivities(ctx context.Context, layers []*domain.Layer, window wheel.Window) []*domain.Activity {
	if s.holidays == nil {
		return nil
	}
	var holidayLayer *domain.Layer
	for _, l := range layers {
		if l.Type == domain.LayerHolidays {
			holidayLayer = l
			break
		}
	}
	if holidayLayer == nil {
		return nil
	}

	entries, err := s.holidays.Holidays(ctx, window.Start, window.End)
	if err != nil {
		return nil
	}

	activities := make([]*domain.Activity, 0, len(entries))
	for _, h := range entries {
		activities = append(activities, h.AsActivity(holidayLayer.ID, holidayLayer.OrganizationID))
	}
	return activities
}
