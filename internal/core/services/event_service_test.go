package services

import (
	"context"
	"testing"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCreateDefaultsToUpcoming(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(repositories.NewEventRepository(db))

	event, err := svc.Create(context.Background(), &EventRequest{
		Name:      "Harvest Sunday",
		StartDate: "2026-10-04",
	})
	require.NoError(t, err)
	assert.Equal(t, "Upcoming", event.Status)
	assert.Nil(t, event.EndDate)
}

func TestEventCreateAcceptsTimestamps(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(repositories.NewEventRepository(db))

	event, err := svc.Create(context.Background(), &EventRequest{
		Name:      "Watch Night",
		StartDate: "2026-12-31 21:00:00",
		EndDate:   "2027-01-01 01:00:00",
	})
	require.NoError(t, err)
	require.NotNil(t, event.EndDate)
	assert.True(t, event.EndDate.After(event.StartDate))
}

func TestEventRejectsEndBeforeStart(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(repositories.NewEventRepository(db))

	_, err := svc.Create(context.Background(), &EventRequest{
		Name:      "Retreat",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-08",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "end_date")
}

func TestEventListStatusFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(repositories.NewEventRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, &EventRequest{Name: "A", StartDate: "2026-09-10"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &EventRequest{Name: "B", StartDate: "2026-09-11", Status: "Cancelled"})
	require.NoError(t, err)

	events, total, err := svc.List(ctx, "Cancelled", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, events, 1)
	assert.Equal(t, "B", events[0].Name)

	_, _, err = svc.List(ctx, "Done", 0, 10)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
