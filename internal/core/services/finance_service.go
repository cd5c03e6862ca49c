package services

import (
	"context"
	"errors"
	"time"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinanceService handles financial transaction business logic
type FinanceService struct {
	transactionRepo *repositories.TransactionRepository
	memberRepo      *repositories.MemberRepository
	db              *gorm.DB
}

// NewFinanceService creates a new finance service
func NewFinanceService(
	transactionRepo *repositories.TransactionRepository,
	memberRepo *repositories.MemberRepository,
	db *gorm.DB,
) *FinanceService {
	return &FinanceService{
		transactionRepo: transactionRepo,
		memberRepo:      memberRepo,
		db:              db,
	}
}

// TransactionRequest represents create/update transaction input.
// Amount travels as a string so no float rounding happens on the wire.
type TransactionRequest struct {
	MemberID        *uint  `json:"member_id"`
	Amount          string `json:"amount" validate:"required"`
	Type            string `json:"type" validate:"required"`
	Category        string `json:"category" validate:"required,max=100"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
	Description     string `json:"description"`
	TransactionDate string `json:"transaction_date" validate:"required,datetime=2006-01-02"`
}

func (s *FinanceService) validateTransaction(ctx context.Context, req *TransactionRequest) (decimal.Decimal, time.Time, error) {
	fields := validation.Struct(req)
	if fields == nil {
		fields = make(map[string]string)
	}

	var amount decimal.Decimal
	if req.Amount != "" {
		parsed, err := decimal.NewFromString(req.Amount)
		switch {
		case err != nil:
			fields["amount"] = "Must be a valid amount"
		case parsed.IsNegative():
			fields["amount"] = "Must be zero or greater"
		default:
			amount = parsed
		}
	}
	if req.Type != "" && !domain.ValidTransactionType(req.Type) {
		fields["type"] = "Must be one of: Income, Expense"
	}
	if req.PaymentMethod != "" && !domain.ValidPaymentMethod(req.PaymentMethod) {
		fields["payment_method"] = "Must be one of: Cash, Mobile Money, Bank Transfer, Other"
	}
	if req.MemberID != nil {
		exists, err := s.memberRepo.Exists(ctx, *req.MemberID)
		if err != nil {
			return decimal.Zero, time.Time{}, err
		}
		if !exists {
			fields["member_id"] = "Member does not exist"
		}
	}
	if len(fields) > 0 {
		return decimal.Zero, time.Time{}, domain.NewValidationError(fields)
	}

	txDate, err := time.Parse("2006-01-02", req.TransactionDate)
	if err != nil {
		return decimal.Zero, time.Time{}, domain.ErrInvalidInput
	}
	return amount, txDate, nil
}

// Create records a new income or expense transaction
func (s *FinanceService) Create(ctx context.Context, req *TransactionRequest) (*models.Transaction, error) {
	amount, txDate, err := s.validateTransaction(ctx, req)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		MemberID:        req.MemberID,
		Amount:          amount,
		Type:            req.Type,
		Category:        req.Category,
		PaymentMethod:   req.PaymentMethod,
		Description:     req.Description,
		TransactionDate: txDate,
	}

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetByID gets a transaction with its contributing member
func (s *FinanceService) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

// List lists transactions with optional type and category filters
func (s *FinanceService) List(ctx context.Context, txType, category string, offset, limit int) ([]*models.Transaction, int64, error) {
	return s.transactionRepo.List(ctx, txType, category, offset, limit)
}

// Update replaces a transaction's details
func (s *FinanceService) Update(ctx context.Context, id uint, req *TransactionRequest) (*models.Transaction, error) {
	amount, txDate, err := s.validateTransaction(ctx, req)
	if err != nil {
		return nil, err
	}

	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	tx.MemberID = req.MemberID
	tx.Amount = amount
	tx.Type = req.Type
	tx.Category = req.Category
	tx.PaymentMethod = req.PaymentMethod
	tx.Description = req.Description
	tx.TransactionDate = txDate

	if err := s.transactionRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Delete removes a transaction
func (s *FinanceService) Delete(ctx context.Context, id uint) error {
	_, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}
	return s.transactionRepo.Delete(ctx, id)
}

// FinanceTotals is the running balance shown alongside the transaction
// listing. Balance is income minus expense over all time.
type FinanceTotals struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
}

// Totals computes all-time income, expense and balance
func (s *FinanceService) Totals(ctx context.Context) (*FinanceTotals, error) {
	var income, expense decimal.Decimal

	err := s.db.WithContext(ctx).Table("transactions").
		Where("type = ?", string(domain.TransactionIncome)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&income).Error
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Table("transactions").
		Where("type = ?", string(domain.TransactionExpense)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&expense).Error
	if err != nil {
		return nil, err
	}

	return &FinanceTotals{
		TotalIncome:  income.StringFixed(2),
		TotalExpense: expense.StringFixed(2),
		Balance:      income.Sub(expense).StringFixed(2),
	}, nil
}
