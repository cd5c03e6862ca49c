package services

import (
	"context"
	"errors"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PledgeService handles pledge business logic
type PledgeService struct {
	pledgeRepo *repositories.PledgeRepository
	memberRepo *repositories.MemberRepository
}

// NewPledgeService creates a new pledge service
func NewPledgeService(
	pledgeRepo *repositories.PledgeRepository,
	memberRepo *repositories.MemberRepository,
) *PledgeService {
	return &PledgeService{
		pledgeRepo: pledgeRepo,
		memberRepo: memberRepo,
	}
}

// PledgeRequest represents create/update pledge input
type PledgeRequest struct {
	MemberID    uint   `json:"member_id" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status"`
}

func (s *PledgeService) validatePledge(ctx context.Context, req *PledgeRequest) (decimal.Decimal, error) {
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
	if req.Status != "" && !domain.ValidPledgeStatus(req.Status) {
		fields["status"] = "Must be one of: Pending, Fulfilled, Cancelled"
	}
	if req.MemberID != 0 {
		exists, err := s.memberRepo.Exists(ctx, req.MemberID)
		if err != nil {
			return decimal.Zero, err
		}
		if !exists {
			fields["member_id"] = "Member does not exist"
		}
	}

	if len(fields) > 0 {
		return decimal.Zero, domain.NewValidationError(fields)
	}
	return amount, nil
}

// Create records a new pledge. Status defaults to Pending.
func (s *PledgeService) Create(ctx context.Context, req *PledgeRequest) (*models.Pledge, error) {
	amount, err := s.validatePledge(ctx, req)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = string(domain.PledgePending)
	}

	pledge := &models.Pledge{
		MemberID:    req.MemberID,
		Amount:      amount,
		Description: req.Description,
		DueDate:     parseDate(req.DueDate),
		Status:      status,
	}

	if err := s.pledgeRepo.Create(ctx, pledge); err != nil {
		return nil, err
	}
	return pledge, nil
}

// GetByID gets a pledge with its member
func (s *PledgeService) GetByID(ctx context.Context, id uint) (*models.Pledge, error) {
	pledge, err := s.pledgeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return pledge, nil
}

// List lists pledges with an optional status filter
func (s *PledgeService) List(ctx context.Context, status string, offset, limit int) ([]*models.Pledge, int64, error) {
	if status != "" && !domain.ValidPledgeStatus(status) {
		return nil, 0, domain.NewValidationError(map[string]string{
			"status": "Must be one of: Pending, Fulfilled, Cancelled",
		})
	}
	return s.pledgeRepo.List(ctx, status, offset, limit)
}

// Update updates a pledge
func (s *PledgeService) Update(ctx context.Context, id uint, req *PledgeRequest) (*models.Pledge, error) {
	amount, err := s.validatePledge(ctx, req)
	if err != nil {
		return nil, err
	}

	pledge, err := s.pledgeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	pledge.MemberID = req.MemberID
	pledge.Amount = amount
	pledge.Description = req.Description
	pledge.DueDate = parseDate(req.DueDate)
	if req.Status != "" {
		pledge.Status = req.Status
	}

	if err := s.pledgeRepo.Update(ctx, pledge); err != nil {
		return nil, err
	}
	return pledge, nil
}

// Delete removes a pledge
func (s *PledgeService) Delete(ctx context.Context, id uint) error {
	_, err := s.pledgeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.pledgeRepo.Delete(ctx, id)
}
