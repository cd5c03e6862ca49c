package services

import (
	"context"
	"testing"
	"time"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementCreateDefaultsToDraft(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(repositories.NewAnnouncementRepository(db))

	a, err := svc.Create(context.Background(), &AnnouncementRequest{
		Title:   "Harvest Sunday",
		Content: "Harvest service holds on the first Sunday.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Draft", a.Status)
	assert.Nil(t, a.PublishedAt)
}

func TestAnnouncementCreatePublishedStampsTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(repositories.NewAnnouncementRepository(db))

	a, err := svc.Create(context.Background(), &AnnouncementRequest{
		Title:   "Service Moved",
		Content: "This week's service starts at 8am.",
		Status:  "Published",
	})
	require.NoError(t, err)
	require.NotNil(t, a.PublishedAt)
	assert.WithinDuration(t, time.Now(), *a.PublishedAt, time.Minute)
}

func TestAnnouncementPublishTransition(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(repositories.NewAnnouncementRepository(db))
	ctx := context.Background()

	a, err := svc.Create(ctx, &AnnouncementRequest{
		Title:   "Choir Auditions",
		Content: "Auditions open next week.",
	})
	require.NoError(t, err)

	published, err := svc.Publish(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Published", published.Status)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// Publishing again is a no-op; the original stamp survives
	again, err := svc.Publish(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Published", again.Status)
	require.NotNil(t, again.PublishedAt)
	assert.WithinDuration(t, firstStamp, *again.PublishedAt, time.Second)
}

func TestAnnouncementPublishUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(repositories.NewAnnouncementRepository(db))

	_, err := svc.Publish(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrAnnouncementNotFound)
}

func TestAnnouncementListRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(repositories.NewAnnouncementRepository(db))

	_, _, err := svc.List(context.Background(), "Archived", 0, 10)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "status")
}
