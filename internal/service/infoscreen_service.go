package service

import (
	"context"
	"fmt"
	"time"

	apperrors "eventadmin/internal/errors"
	"eventadmin/internal/model"
	"eventadmin/internal/repository"
)

// InfoScreenInput carries the writable fields of an info-screen slot.
type InfoScreenInput struct {
	Comment        string
	Position       int
	CampaignStart  *time.Time
	CampaignEnd    *time.Time
	MediaDeID      *string
	MediaEnID      *string
	ExternalLinkDe *string
	ExternalLinkEn *string
}

// InfoScreenService handles digital-signage campaign slots.
type InfoScreenService interface {
	ListInfoScreens(ctx context.Context) ([]model.InfoScreen, error)
	CreateInfoScreen(ctx context.Context, in InfoScreenInput) (uint, error)
	UpdateInfoScreen(ctx context.Context, id uint, in InfoScreenInput) error
	DeleteInfoScreen(ctx context.Context, id uint) error
}

type infoScreenService struct {
	screens repository.InfoScreenRepository
}

// NewInfoScreenService creates a new info-screen service.
func NewInfoScreenService(screens repository.InfoScreenRepository) InfoScreenService {
	return &infoScreenService{screens: screens}
}

func (s *infoScreenService) ListInfoScreens(ctx context.Context) ([]model.InfoScreen, error) {
	return s.screens.List(ctx)
}

func (s *infoScreenService) CreateInfoScreen(ctx context.Context, in InfoScreenInput) (uint, error) {
	screen := &model.InfoScreen{
		Comment:        in.Comment,
		Position:       in.Position,
		CampaignStart:  in.CampaignStart,
		CampaignEnd:    in.CampaignEnd,
		MediaDeID:      in.MediaDeID,
		MediaEnID:      in.MediaEnID,
		ExternalLinkDe: in.ExternalLinkDe,
		ExternalLinkEn: in.ExternalLinkEn,
	}
	if err := s.screens.Create(ctx, screen); err != nil {
		return 0, fmt.Errorf("create info screen: %w", err)
	}
	return screen.ID, nil
}

func (s *infoScreenService) UpdateInfoScreen(ctx context.Context, id uint, in InfoScreenInput) error {
	values := map[string]interface{}{
		"comment":          in.Comment,
		"position":         in.Position,
		"campaign_start":   in.CampaignStart,
		"campaign_end":     in.CampaignEnd,
		"media_de_id":      in.MediaDeID,
		"media_en_id":      in.MediaEnID,
		"external_link_de": in.ExternalLinkDe,
		"external_link_en": in.ExternalLinkEn,
	}
	count, err := s.screens.Update(ctx, id, values)
	if err != nil {
		return fmt.Errorf("update info screen: %w", err)
	}
	if count != 1 {
		return apperrors.ErrInfoScreenNotFound
	}
	return nil
}

func (s *infoScreenService) DeleteInfoScreen(ctx context.Context, id uint) error {
	count, err := s.screens.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete info screen: %w", err)
	}
	if count != 1 {
		return apperrors.ErrInfoScreenNotFound
	}
	return nil
}
