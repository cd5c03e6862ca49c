package services

import (
	"context"
	"time"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardService handles dashboard aggregation
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardData represents the overview numbers and recent activity
type DashboardData struct {
	// Membership Statistics
	TotalMembers  int64 `json:"total_members"`
	ActiveMembers int64 `json:"active_members"`
	TotalGroups   int64 `json:"total_groups"`

	// Current Month Finances
	MonthlyIncome  string `json:"monthly_income"`
	MonthlyExpense string `json:"monthly_expense"`
	MonthlySavings string `json:"monthly_savings"`

	// Recent Activity
	UpcomingEvents      []*models.Event               `json:"upcoming_events"`
	RecentAnnouncements []*models.Announcement        `json:"recent_announcements"`
	RecentTransactions  []*models.TransactionResponse `json:"recent_transactions"`
}

// startOfMonth is the first instant of the current month in server time
func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// GetDashboard returns the overview data. Monthly figures cover
// transactions dated from the first of the current month onward;
// savings is income minus expense and may be negative.
func (s *DashboardService) GetDashboard(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	// Membership counts
	s.db.WithContext(ctx).Table("members").Count(&data.TotalMembers)
	s.db.WithContext(ctx).Table("members").
		Where("membership_status = ?", string(domain.MembershipActive)).
		Count(&data.ActiveMembers)
	s.db.WithContext(ctx).Table("groups").Count(&data.TotalGroups)

	// This month's finances
	monthStart := startOfMonth(time.Now())
	var income, expense decimal.Decimal

	s.db.WithContext(ctx).Table("transactions").
		Where("type = ? AND transaction_date >= ?", string(domain.TransactionIncome), monthStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&income)

	s.db.WithContext(ctx).Table("transactions").
		Where("type = ? AND transaction_date >= ?", string(domain.TransactionExpense), monthStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&expense)

	data.MonthlyIncome = income.StringFixed(2)
	data.MonthlyExpense = expense.StringFixed(2)
	data.MonthlySavings = income.Sub(expense).StringFixed(2)

	// Next five events that have not started yet, regardless of status
	var events []*models.Event
	err := s.db.WithContext(ctx).
		Where("start_date >= ?", time.Now()).
		Order("start_date ASC").
		Limit(5).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	data.UpcomingEvents = events

	// Latest five published announcements
	var announcements []*models.Announcement
	err = s.db.WithContext(ctx).
		Where("status = ?", string(domain.AnnouncementPublished)).
		Order("published_at DESC").
		Limit(5).
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	data.RecentAnnouncements = announcements

	// Latest five transactions with the contributing member
	var transactions []*models.Transaction
	err = s.db.WithContext(ctx).
		Preload("Member").
		Order("transaction_date DESC").
		Limit(5).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	data.RecentTransactions = make([]*models.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		data.RecentTransactions[i] = tx.ToResponse()
	}

	return data, nil
}
