package announcement

import "time"

// Announcement is never physically removed; deletion flips IsActive off.
type Announcement struct {
	ID        string
	Title     string
	Body      string
	CreatedBy *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join field
	CreatedByEmail *string
}
