package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/arshjul/yearwheel/internal/domain"
	"github.com/arshjul/yearwheel/internal/repository"
)

// Share lifecycle errors surfaced to transports.
var (
	ErrShareExpired   = errors.New("share expired")
	ErrShareRevoked   = errors.New("share revoked")
	ErrShareKeyWrong  = errors.New("share key mismatch")
	ErrShareNotDueYet = errors.New("share not due for renewal")
)

const shareLifetime = 365 * 24 * time.Hour

type shareService struct {
	shares     repository.ShareRepo
	layers     repository.LayerRepo
	activities repository.ActivityRepo
	now        func() time.Time
}

func NewShareService(shares repository.ShareRepo, layers repository.LayerRepo, activities repository.ActivityRepo) ShareService {
	return &shareService{shares: shares, layers: layers, activities: activities, now: func() time.Time { return time.Now().UTC() }}
}

func (s *shareService) Create(ctx context.Context, p CreateShareParams) (*domain.ShareLink, error) {
	if err := validateName("name", p.Name); err != nil {
		return nil, err
	}
	if err := validateDescription(p.Description); err != nil {
		return nil, err
	}
	if p.OrganizationID == "" {
		return nil, validationErrorf("organization id is required")
	}
	if len(p.LayerConfig.LayerIDs) == 0 {
		return nil, validationErrorf("share must expose at least one layer")
	}
	if len(p.LayerConfig.LayerIDs) > maxShareLayers {
		return nil, validationErrorf("share exposes more than %d layers", maxShareLayers)
	}
	switch p.Visibility {
	case domain.ShareUsers, domain.SharePublic:
	case "":
		p.Visibility = domain.ShareUsers
	default:
		return nil, validationErrorf("unknown visibility %q", p.Visibility)
	}

	// Every exposed layer must exist in the organization.
	for _, layerID := range p.LayerConfig.LayerIDs {
		if _, err := s.layers.GetByID(ctx, p.OrganizationID, layerID); err != nil {
			return nil, err
		}
	}

	key, err := GenerateShareKey()
	if err != nil {
		return nil, err
	}
	code, err := GenerateShortCode()
	if err != nil {
		return nil, err
	}

	viewSettings := domain.DefaultShareViewSettings()
	if p.ViewSettings != nil {
		viewSettings = *p.ViewSettings
	}

	now := s.now()
	share := &domain.ShareLink{
		ID:             uuid.New().String(),
		ShareKey:       key,
		ShortCode:      code,
		Visibility:     p.Visibility,
		OrganizationID: p.OrganizationID,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      now,
		ExpiresAt:      now.Add(shareLifetime),
		Name:           p.Name,
		Description:    p.Description,
		LayerConfig:    p.LayerConfig,
		ViewSettings:   viewSettings,
		IsActive:       true,
	}
	if err := s.shares.Create(ctx, share); err != nil {
		return nil, err
	}
	return share, nil
}

func (s *shareService) GetByID(ctx context.Context, organizationID, id string) (*domain.ShareLink, error) {
	return s.shares.GetByID(ctx, organizationID, id)
}

func (s *shareService) List(ctx context.Context, organizationID string) ([]*domain.ShareLink, error) {
	return s.shares.ListByOrganization(ctx, organizationID)
}

func (s *shareService) Access(ctx context.Context, shortCode, shareKey string) (*ShareAccess, error) {
	// Shape checks run before the lookup so malformed input never
	// touches the database.
	if !IsValidShortCode(shortCode) || !IsValidShareKey(shareKey) {
		return nil, repository.ErrNotFound
	}

	share, err := s.shares.GetByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}
	if !SecureCompare(share.ShareKey, shareKey) {
		return nil, ErrShareKeyWrong
	}
	if !share.IsActive {
		return nil, ErrShareRevoked
	}
	now := s.now()
	if share.IsExpired(now) {
		return nil, ErrShareExpired
	}

	exposed := make(map[string]bool, len(share.LayerConfig.LayerIDs))
	for _, id := range share.LayerConfig.LayerIDs {
		exposed[id] = true
	}

	all, err := s.layers.ListByOrganization(ctx, share.OrganizationID)
	if err != nil {
		return nil, err
	}
	layers := make([]*domain.Layer, 0, len(exposed))
	for _, l := range all {
		if exposed[l.ID] {
			layers = append(layers, l)
		}
	}

	activities := make([]*domain.Activity, 0)
	for _, l := range layers {
		acts, err := s.activities.ListByLayer(ctx, share.OrganizationID, l.ID)
		if err != nil {
			return nil, err
		}
		activities = append(activities, acts...)
	}

	if err := s.shares.IncrementViews(ctx, share.ID, now); err != nil {
		return nil, err
	}
	share.Stats.ViewCount++
	share.Stats.LastAccessedAt = &now

	return &ShareAccess{Share: share, Layers: layers, Activities: activities}, nil
}

func (s *shareService) Renew(ctx context.Context, organizationID, id string) (*domain.ShareLink, error) {
	share, err := s.shares.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !share.NeedsRenewal(now) {
		return nil, ErrShareNotDueYet
	}

	share.ExpiresAt = now.Add(shareLifetime)
	share.RenewedAt = &now
	share.IsActive = true
	if err := s.shares.Update(ctx, share); err != nil {
		return nil, err
	}
	return share, nil
}

func (s *shareService) Revoke(ctx context.Context, organizationID, id string) error {
	share, err := s.shares.GetByID(ctx, organizationID, id)
	if err != nil {
		return err
	}
	share.IsActive = false
	return s.shares.Update(ctx, share)
}
