package services

import (
	"context"
	"sort"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportService produces the aggregated congregation reports
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// GrowthBucket is one month of member registrations
type GrowthBucket struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

// MembershipGrowth counts registrations per month over all history and
// returns the six most recent months that saw a registration, newest
// first. A quiet month never displaces an older month with activity.
func (s *ReportService) MembershipGrowth(ctx context.Context) ([]GrowthBucket, error) {
	var members []models.Member
	err := s.db.WithContext(ctx).
		Select("created_at").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]int64)
	for _, m := range members {
		byMonth[m.CreatedAt.Format("2006-01")]++
	}

	buckets := make([]GrowthBucket, 0, len(byMonth))
	for month, count := range byMonth {
		buckets = append(buckets, GrowthBucket{Month: month, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month > buckets[j].Month
	})
	if len(buckets) > 6 {
		buckets = buckets[:6]
	}
	return buckets, nil
}

// CategorySummary is one (category, type) aggregate
type CategorySummary struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Total    string `json:"total"`
}

// FinancialSummary represents the finance report: per-category totals
// plus the grand income/expense/balance figures
type FinancialSummary struct {
	Categories   []CategorySummary `json:"categories"`
	TotalIncome  string            `json:"total_income"`
	TotalExpense string            `json:"total_expense"`
	Balance      string            `json:"balance"`
}

// FinancialReport sums transactions by category and type. Every
// transaction lands in exactly one bucket, so the bucket totals of
// each type add up to that type's grand total.
func (s *ReportService) FinancialReport(ctx context.Context) (*FinancialSummary, error) {
	var rows []struct {
		Category string
		Type     string
		Total    decimal.Decimal
	}
	err := s.db.WithContext(ctx).Table("transactions").
		Select("category, type, COALESCE(SUM(amount), 0) as total").
		Group("category, type").
		Order("category ASC, type ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &FinancialSummary{
		Categories: make([]CategorySummary, len(rows)),
	}
	var income, expense decimal.Decimal
	for i, row := range rows {
		summary.Categories[i] = CategorySummary{
			Category: row.Category,
			Type:     row.Type,
			Total:    row.Total.StringFixed(2),
		}
		if row.Type == string(domain.TransactionIncome) {
			income = income.Add(row.Total)
		} else {
			expense = expense.Add(row.Total)
		}
	}

	summary.TotalIncome = income.StringFixed(2)
	summary.TotalExpense = expense.StringFixed(2)
	summary.Balance = income.Sub(expense).StringFixed(2)
	return summary, nil
}

// GenderCount is one gender bucket
type GenderCount struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

// GenderDistribution counts members by gender. The counts sum to the
// member total since gender is a required field.
func (s *ReportService) GenderDistribution(ctx context.Context) ([]GenderCount, error) {
	var rows []GenderCount
	err := s.db.WithContext(ctx).Table("members").
		Select("gender, COUNT(*) as count").
		Group("gender").
		Order("gender ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
