package services

import (
	"context"
	"testing"
	"time"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func eventStatus(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()
	var e models.Event
	require.NoError(t, db.First(&e, id).Error)
	return e.Status
}

func TestRefreshEventStatuses(t *testing.T) {
	db := newTestDB(t)
	svc := NewCronService(db)
	ctx := context.Background()

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	started := &models.Event{Name: "Convention", StartDate: yesterday, EndDate: &tomorrow, Status: "Upcoming"}
	openEnded := &models.Event{Name: "Revival", StartDate: yesterday, Status: "Upcoming"}
	ended := &models.Event{Name: "Retreat", StartDate: lastWeek, EndDate: &yesterday, Status: "Ongoing"}
	notStarted := &models.Event{Name: "Harvest", StartDate: tomorrow, Status: "Upcoming"}
	cancelled := &models.Event{Name: "Picnic", StartDate: yesterday, EndDate: &tomorrow, Status: "Cancelled"}

	for _, e := range []*models.Event{started, openEnded, ended, notStarted, cancelled} {
		require.NoError(t, db.Create(e).Error)
	}

	require.NoError(t, svc.RefreshEventStatuses(ctx))

	assert.Equal(t, "Ongoing", eventStatus(t, db, started.ID))
	assert.Equal(t, "Ongoing", eventStatus(t, db, openEnded.ID))
	assert.Equal(t, "Completed", eventStatus(t, db, ended.ID))
	assert.Equal(t, "Upcoming", eventStatus(t, db, notStarted.ID))
	assert.Equal(t, "Cancelled", eventStatus(t, db, cancelled.ID), "cancelled events never move")
}

func TestPublishDueAnnouncements(t *testing.T) {
	db := newTestDB(t)
	svc := NewCronService(db)
	ctx := context.Background()

	yesterday := time.Now().Add(-24 * time.Hour)
	tomorrow := time.Now().Add(24 * time.Hour)

	due := &models.Announcement{Title: "Due", Content: "x", Status: "Draft", PublishedAt: &yesterday}
	scheduled := &models.Announcement{Title: "Later", Content: "x", Status: "Draft", PublishedAt: &tomorrow}
	unscheduled := &models.Announcement{Title: "No Date", Content: "x", Status: "Draft"}

	for _, a := range []*models.Announcement{due, scheduled, unscheduled} {
		require.NoError(t, db.Create(a).Error)
	}

	require.NoError(t, svc.PublishDueAnnouncements(ctx))

	var got models.Announcement
	require.NoError(t, db.First(&got, due.ID).Error)
	assert.Equal(t, "Published", got.Status)

	got = models.Announcement{}
	require.NoError(t, db.First(&got, scheduled.ID).Error)
	assert.Equal(t, "Draft", got.Status)

	got = models.Announcement{}
	require.NoError(t, db.First(&got, unscheduled.ID).Error)
	assert.Equal(t, "Draft", got.Status)
}

func TestPurgeExpiredTokens(t *testing.T) {
	db := newTestDB(t)
	svc := NewCronService(db)
	ctx := context.Background()

	user := &models.User{Name: "Admin", Email: "admin@example.com", Password: "hash", IsActive: true}
	require.NoError(t, db.Create(user).Error)

	expired := &models.RefreshToken{UserID: user.ID, TokenHash: "old", ExpiresAt: time.Now().Add(-time.Hour)}
	live := &models.RefreshToken{UserID: user.ID, TokenHash: "new", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, db.Create(expired).Error)
	require.NoError(t, db.Create(live).Error)

	require.NoError(t, svc.PurgeExpiredTokens(ctx))

	var count int64
	db.Model(&models.RefreshToken{}).Count(&count)
	assert.EqualValues(t, 1, count)

	var remaining models.RefreshToken
	require.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, "new", remaining.TokenHash)
}
