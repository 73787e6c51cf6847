package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arshjul/yearwheel/internal/db"
	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/repository"
)

type layerService struct {
	layers repository.LayerRepo
	uow    db.UnitOfWork
}

func NewLayerService(layers repository.LayerRepo, uow db.UnitOfWork) LayerService {
	return &layerService{layers: layers, uow: uow}
}

func (s *layerService) Create(ctx context.Context, l *domain.Layer) error {
	if err := validateLayer(l); err != nil {
		return err
	}

	existing, err := s.layers.ListByOrganization(ctx, l.OrganizationID)
	if err != nil {
		return err
	}
	if len(existing) >= maxLayersPerOrg {
		return validationErrorf("organization already has %d layers", maxLayersPerOrg)
	}

	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.RingIndex == 0 {
		// New layers land outside the existing rings.
		for _, e := range existing {
			if e.RingIndex >= l.RingIndex {
				l.RingIndex = e.RingIndex + 1
			}
		}
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	return s.layers.Create(ctx, l)
}

func (s *layerService) GetByID(ctx context.Context, organizationID, id string) (*domain.Layer, error) {
	return s.layers.GetByID(ctx, organizationID, id)
}

func (s *layerService) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Layer, error) {
	return s.layers.ListByOrganization(ctx, organizationID)
}

func (s *layerService) Update(ctx context.Context, l *domain.Layer) error {
	if err := validateLayer(l); err != nil {
		return err
	}
	l.UpdatedAt = time.Now().UTC()
	return s.layers.Update(ctx, l)
}

func (s *layerService) Reorder(ctx context.Context, organizationID string, layerIDs []string) error {
	if len(layerIDs) == 0 {
		return validationErrorf("layer order is empty")
	}
	seen := make(map[string]bool, len(layerIDs))
	for _, id := range layerIDs {
		if seen[id] {
			return validationErrorf("duplicate layer id %q in order", id)
		}
		seen[id] = true
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txLayers := repository.NewSQLiteLayerRepo(tx)
		now := time.Now().UTC()
		for i, id := range layerIDs {
			l, err := txLayers.GetByID(ctx, organizationID, id)
			if err != nil {
				return err
			}
			l.RingIndex = i
			l.UpdatedAt = now
			if err := txLayers.Update(ctx, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *layerService) Delete(ctx context.Context, organizationID, id string) error {
	return s.layers.Delete(ctx, organizationID, id)
}
