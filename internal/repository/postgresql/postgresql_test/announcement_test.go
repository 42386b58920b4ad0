package postgresql_test

import (
	"context"
	"testing"

	"github.com/emptrack/tracker-backend-go/internal/domain/announcement"
	"github.com/emptrack/tracker-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAnnouncement(t *testing.T, ctx context.Context, title string) announcement.Announcement {
	repo := postgresql.NewAnnouncementRepository(testDB)
	created, err := repo.Create(ctx, announcement.Announcement{
		Title: title,
		Body:  "Body of " + title,
	})
	require.NoError(t, err)
	return created
}

func TestAnnouncementCreateAndList(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewAnnouncementRepository(testDB)

	created := createTestAnnouncement(t, ctx, "Quarterly meeting")
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.ID)

	items, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Quarterly meeting", items[0].Title)
}

func TestAnnouncementDeactivate_SoftDelete(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewAnnouncementRepository(testDB)

	created := createTestAnnouncement(t, ctx, "Office closure")

	require.NoError(t, repo.Deactivate(ctx, created.ID))

	// Gone from the active list but the row is still there.
	items, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestAnnouncementDeactivate_AlreadyGone(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewAnnouncementRepository(testDB)

	err := repo.Deactivate(ctx, "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b")
	assert.ErrorIs(t, err, announcement.ErrAnnouncementNotFound)
}

func TestAnnouncementListActive_NewestFirst(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewAnnouncementRepository(testDB)

	createTestAnnouncement(t, ctx, "First")
	createTestAnnouncement(t, ctx, "Second")

	items, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Second", items[0].Title)
	assert.Equal(t, "First", items[1].Title)
}
