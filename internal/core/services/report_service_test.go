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

func TestFinancialReportBucketsPartitionTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	now := time.Now()
	seedTransaction(t, db, "Income", "100.00", now) // General
	seedTransaction(t, db, "Expense", "40.00", now) // General
	require.NoError(t, db.Create(&models.Transaction{
		Amount:          decimal.RequireFromString("50.00"),
		Type:            "Income",
		Category:        "Tithe",
		PaymentMethod:   "Mobile Money",
		TransactionDate: now,
	}).Error)

	summary, err := svc.FinancialReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "150.00", summary.TotalIncome)
	assert.Equal(t, "40.00", summary.TotalExpense)
	assert.Equal(t, "110.00", summary.Balance)
	require.Len(t, summary.Categories, 3)

	// Every bucket belongs to exactly one type; the bucket totals of
	// each type add back up to that type's grand total
	var income, expense decimal.Decimal
	for _, c := range summary.Categories {
		total := decimal.RequireFromString(c.Total)
		if c.Type == "Income" {
			income = income.Add(total)
		} else {
			expense = expense.Add(total)
		}
	}
	assert.Equal(t, "150.00", income.StringFixed(2))
	assert.Equal(t, "40.00", expense.StringFixed(2))
}

func TestGenderDistributionSumsToMemberTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	seedMember(t, db, "Ama", "Owusu", "Female")
	seedMember(t, db, "Esi", "Appiah", "Female")
	seedMember(t, db, "Kofi", "Asante", "Male")

	counts, err := svc.GenderDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2)

	var sum int64
	byGender := make(map[string]int64)
	for _, c := range counts {
		sum += c.Count
		byGender[c.Gender] = c.Count
	}
	assert.EqualValues(t, 3, sum)
	assert.EqualValues(t, 2, byGender["Female"])
	assert.EqualValues(t, 1, byGender["Male"])
}

func seedMemberRegisteredAt(t *testing.T, db *gorm.DB, first, last string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Member{
		FirstName:        first,
		LastName:         last,
		Gender:           "Male",
		MembershipStatus: "Active",
		CreatedAt:        at,
		UpdatedAt:        at,
	}).Error)
}

func TestMembershipGrowthKeepsOlderNonEmptyMonths(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	// Two registrations this month, one eight months back. The gap of
	// quiet months in between contributes no buckets.
	seedMember(t, db, "Ama", "Owusu", "Female")
	seedMember(t, db, "Kofi", "Asante", "Male")
	old := time.Now().AddDate(0, -8, 0)
	seedMemberRegisteredAt(t, db, "Yaw", "Ofori", old)

	buckets, err := svc.MembershipGrowth(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, time.Now().Format("2006-01"), buckets[0].Month)
	assert.EqualValues(t, 2, buckets[0].Count)
	assert.Equal(t, old.Format("2006-01"), buckets[1].Month)
	assert.EqualValues(t, 1, buckets[1].Count)
}

func TestMembershipGrowthCapsAtSixMonths(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	// Eight distinct months of registrations; only the six newest
	// survive. Stepping from the first of the month keeps AddDate from
	// normalizing across month boundaries.
	base := startOfMonth(time.Now())
	for i := 0; i < 8; i++ {
		at := base.AddDate(0, -i, 0)
		seedMemberRegisteredAt(t, db, "Member", at.Format("2006-01"), at)
	}

	buckets, err := svc.MembershipGrowth(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 6)
	assert.Equal(t, base.Format("2006-01"), buckets[0].Month)
	assert.Equal(t, base.AddDate(0, -5, 0).Format("2006-01"), buckets[5].Month)
}
