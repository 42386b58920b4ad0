package announcement

import (
	"context"

	"github.com/emptrack/tracker-backend-go/internal/domain/announcement"
	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
)

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
}

func NewAnnouncementService(announcementRepository announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{AnnouncementRepository: announcementRepository}
}

// ListActive implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) ListActive(ctx context.Context) ([]announcement.AnnouncementResponse, error) {
	items, err := s.AnnouncementRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return announcement.NewAnnouncementResponses(items), nil
}

// GetByID implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) GetByID(ctx context.Context, id string) (announcement.AnnouncementResponse, error) {
	if !validator.IsValidUUID(id) {
		return announcement.AnnouncementResponse{}, announcement.ErrAnnouncementNotFound
	}

	a, err := s.AnnouncementRepository.GetByID(ctx, id)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	return announcement.NewAnnouncementResponse(a), nil
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest, createdBy string) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	created, err := s.AnnouncementRepository.Create(ctx, announcement.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: &createdBy,
		IsActive:  true,
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	return announcement.NewAnnouncementResponse(created), nil
}

// Update implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Update(ctx context.Context, id string, req announcement.UpdateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if !validator.IsValidUUID(id) {
		return announcement.AnnouncementResponse{}, announcement.ErrAnnouncementNotFound
	}

	current, err := s.AnnouncementRepository.GetByID(ctx, id)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	req.Apply(&current)

	updated, err := s.AnnouncementRepository.Update(ctx, current)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	return announcement.NewAnnouncementResponse(updated), nil
}

// Delete implements announcement.AnnouncementService. Rows are retained;
// only the active flag is cleared.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return announcement.ErrAnnouncementNotFound
	}
	return s.AnnouncementRepository.Deactivate(ctx, id)
}
