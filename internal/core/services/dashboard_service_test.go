package services

import (
	"context"
	"testing"
	"time"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTransaction(t *testing.T, db *gorm.DB, txType, amount string, date time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Transaction{
		Amount:          decimal.RequireFromString(amount),
		Type:            txType,
		Category:        "General",
		PaymentMethod:   "Cash",
		TransactionDate: date,
	}).Error)
}

func TestDashboardMonthlyFiguresRespectMonthBoundary(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	monthStart := startOfMonth(time.Now())

	// First instant of the month counts; one second earlier does not
	seedTransaction(t, db, "Income", "100.00", monthStart)
	seedTransaction(t, db, "Expense", "40.00", monthStart.Add(time.Hour))
	seedTransaction(t, db, "Income", "500.00", monthStart.Add(-time.Second))

	data, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "100.00", data.MonthlyIncome)
	assert.Equal(t, "40.00", data.MonthlyExpense)
	assert.Equal(t, "60.00", data.MonthlySavings)
}

func TestDashboardSavingsMayGoNegative(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	monthStart := startOfMonth(time.Now())
	seedTransaction(t, db, "Income", "30.00", monthStart)
	seedTransaction(t, db, "Expense", "80.00", monthStart)

	data, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "-50.00", data.MonthlySavings)
}

func TestDashboardMembershipCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	seedMember(t, db, "Ama", "Owusu", "Female")
	inactive := seedMember(t, db, "Kofi", "Asante", "Male")
	require.NoError(t, db.Model(inactive).Update("membership_status", "Inactive").Error)

	data, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, data.TotalMembers)
	assert.EqualValues(t, 1, data.ActiveMembers)
}

func TestDashboardUpcomingEventsFilterByStartDateOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	tomorrow := time.Now().Add(24 * time.Hour)
	require.NoError(t, db.Create(&models.Event{
		Name: "Harvest", StartDate: tomorrow, Status: "Upcoming",
	}).Error)
	require.NoError(t, db.Create(&models.Event{
		Name: "Picnic", StartDate: tomorrow.Add(time.Hour), Status: "Cancelled",
	}).Error)
	require.NoError(t, db.Create(&models.Event{
		Name: "Last Week Service", StartDate: time.Now().Add(-7 * 24 * time.Hour), Status: "Completed",
	}).Error)

	data, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	// Anything that has not started yet shows, cancelled included;
	// past events never do
	require.Len(t, data.UpcomingEvents, 2)
	assert.Equal(t, "Harvest", data.UpcomingEvents[0].Name)
	assert.Equal(t, "Picnic", data.UpcomingEvents[1].Name)
}

func TestDashboardRecentAnnouncementsPublishedOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	now := time.Now()
	require.NoError(t, db.Create(&models.Announcement{
		Title: "Published One", Content: "x", Status: "Published", PublishedAt: &now,
	}).Error)
	require.NoError(t, db.Create(&models.Announcement{
		Title: "Still Draft", Content: "x", Status: "Draft",
	}).Error)

	data, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, data.RecentAnnouncements, 1)
	assert.Equal(t, "Published One", data.RecentAnnouncements[0].Title)
}
