package service

import (
	"context"
	"fmt"

	apperrors "eventadmin/internal/errors"
	"eventadmin/internal/model"
	"eventadmin/internal/repository"
)

// OrganizerInput carries the writable fields of an organizer profile.
type OrganizerInput struct {
	Name         string
	Description  string
	LogoImageID  *string
	CoverImageID *string
	Website      *string
	Email        *string
	Phone        *string
	Facebook     *string
	Instagram    *string
	Twitter      *string
	LinkedIn     *string
	TikTok       *string
	YouTube      *string
	Telegram     *string
}

// OrganizerOption is one row of the organizer picker offered to admins.
type OrganizerOption struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// OrganizerService reads and updates the organizer profile the caller
// administers, and lets admins switch which organizer that is.
type OrganizerService interface {
	GetProfile(ctx context.Context, userID uint) (*model.Organizer, error)
	UpdateProfile(ctx context.Context, userID uint, in OrganizerInput) error
	ListOrganizers(ctx context.Context, userID uint) ([]OrganizerOption, error)
	SelectOrganizer(ctx context.Context, userID, organizerID uint) error
}

type organizerService struct {
	users      repository.UserRepository
	organizers repository.OrganizerRepository
}

// NewOrganizerService creates a new organizer service.
func NewOrganizerService(users repository.UserRepository, organizers repository.OrganizerRepository) OrganizerService {
	return &organizerService{
		users:      users,
		organizers: organizers,
	}
}

func (s *organizerService) organizerFor(ctx context.Context, userID uint) (uint, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("load user: %w", err)
	}
	if user.OrganizerID == nil {
		return 0, apperrors.ErrNoOrganizer
	}
	return *user.OrganizerID, nil
}

func (s *organizerService) GetProfile(ctx context.Context, userID uint) (*model.Organizer, error) {
	organizerID, err := s.organizerFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.organizers.FindByID(ctx, organizerID)
}

func (s *organizerService) UpdateProfile(ctx context.Context, userID uint, in OrganizerInput) error {
	organizerID, err := s.organizerFor(ctx, userID)
	if err != nil {
		return err
	}
	values := map[string]interface{}{
		"name":           in.Name,
		"description":    in.Description,
		"logo_image_id":  in.LogoImageID,
		"cover_image_id": in.CoverImageID,
		"website":        in.Website,
		"email":          in.Email,
		"phone":          in.Phone,
		"facebook":       in.Facebook,
		"instagram":      in.Instagram,
		"twitter":        in.Twitter,
		"linkedin":       in.LinkedIn,
		"tiktok":         in.TikTok,
		"youtube":        in.YouTube,
		"telegram":       in.Telegram,
	}
	if err := s.organizers.Update(ctx, organizerID, values); err != nil {
		return fmt.Errorf("update organizer: %w", err)
	}
	return nil
}

// ListOrganizers returns all organizers with the caller's current one marked.
func (s *organizerService) ListOrganizers(ctx context.Context, userID uint) ([]OrganizerOption, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	organizers, err := s.organizers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organizers: %w", err)
	}

	options := make([]OrganizerOption, 0, len(organizers))
	for _, organizer := range organizers {
		options = append(options, OrganizerOption{
			ID:       organizer.ID,
			Name:     organizer.Name,
			Selected: user.OrganizerID != nil && *user.OrganizerID == organizer.ID,
		})
	}
	return options, nil
}

// SelectOrganizer re-points the caller at another organizer. The target must
// exist.
func (s *organizerService) SelectOrganizer(ctx context.Context, userID, organizerID uint) error {
	if _, err := s.organizers.FindByID(ctx, organizerID); err != nil {
		if isNotFound(err) {
			return apperrors.ErrOrganizerNotFound
		}
		return fmt.Errorf("load organizer: %w", err)
	}
	if err := s.users.SetOrganizer(ctx, userID, organizerID); err != nil {
		return fmt.Errorf("set organizer: %w", err)
	}
	return nil
}
