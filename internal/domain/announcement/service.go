package announcement

import "context"

type AnnouncementService interface {
	ListActive(ctx context.Context) ([]AnnouncementResponse, error)
	GetByID(ctx context.Context, id string) (AnnouncementResponse, error)
	Create(ctx context.Context, req CreateAnnouncementRequest, createdBy string) (AnnouncementResponse, error)
	Update(ctx context.Context, id string, req UpdateAnnouncementRequest) (AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}
