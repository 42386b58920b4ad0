package announcement

import "context"

type AnnouncementRepository interface {
	// ListActive returns active announcements, newest first.
	ListActive(ctx context.Context) ([]Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	Create(ctx context.Context, newAnnouncement Announcement) (Announcement, error)
	Update(ctx context.Context, updated Announcement) (Announcement, error)
	// Deactivate soft-deletes by flipping is_active off.
	Deactivate(ctx context.Context, id string) error
}
