package services

import (
	"context"
	"testing"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFinanceService(db *gorm.DB) *FinanceService {
	return NewFinanceService(
		repositories.NewTransactionRepository(db),
		repositories.NewMemberRepository(db),
		db,
	)
}

func TestFinanceTotalsBalance(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, &TransactionRequest{
		Amount:          "100.00",
		Type:            "Income",
		Category:        "Tithe",
		PaymentMethod:   "Cash",
		TransactionDate: "2026-08-10",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &TransactionRequest{
		Amount:          "40.00",
		Type:            "Expense",
		Category:        "Utilities",
		PaymentMethod:   "Bank Transfer",
		TransactionDate: "2026-08-12",
	})
	require.NoError(t, err)

	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, "100.00", totals.TotalIncome)
	assert.Equal(t, "40.00", totals.TotalExpense)
	assert.Equal(t, "60.00", totals.Balance)
}

func TestFinanceRejectsNegativeAmount(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService(db)

	for _, amount := range []string{"-5.00", "abc"} {
		_, err := svc.Create(context.Background(), &TransactionRequest{
			Amount:          amount,
			Type:            "Income",
			Category:        "Offering",
			PaymentMethod:   "Cash",
			TransactionDate: "2026-08-10",
		})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr, "amount %q should be rejected", amount)
		assert.Contains(t, vErr.Fields, "amount")
	}

	var count int64
	db.Model(&models.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestFinanceAllowsZeroAmount(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService(db)

	tx, err := svc.Create(context.Background(), &TransactionRequest{
		Amount:          "0",
		Type:            "Income",
		Category:        "Offering",
		PaymentMethod:   "Cash",
		TransactionDate: "2026-08-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.00", tx.Amount.StringFixed(2))
}

func TestFinanceRejectsUnknownEnums(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService(db)

	_, err := svc.Create(context.Background(), &TransactionRequest{
		Amount:          "25.00",
		Type:            "Transfer",
		Category:        "Offering",
		PaymentMethod:   "Cheque",
		TransactionDate: "2026-08-10",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "type")
	assert.Contains(t, vErr.Fields, "payment_method")
}

func TestFinanceRejectsMissingMember(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService(db)

	ghost := uint(999)
	_, err := svc.Create(context.Background(), &TransactionRequest{
		MemberID:        &ghost,
		Amount:          "25.00",
		Type:            "Income",
		Category:        "Tithe",
		PaymentMethod:   "Mobile Money",
		TransactionDate: "2026-08-10",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "member_id")
}

func TestFinanceDeleteUnknownTransaction(t *testing.T) {
	db := newTestDB(t)
	svc := newFinanceService(db)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
