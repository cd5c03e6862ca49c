package services

import (
	"context"
	"errors"
	"time"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/validation"

	"gorm.io/gorm"
)

// GovernanceService handles leadership term business logic
type GovernanceService struct {
	governanceRepo *repositories.GovernanceRepository
	memberRepo     *repositories.MemberRepository
}

// NewGovernanceService creates a new governance service
func NewGovernanceService(
	governanceRepo *repositories.GovernanceRepository,
	memberRepo *repositories.MemberRepository,
) *GovernanceService {
	return &GovernanceService{
		governanceRepo: governanceRepo,
		memberRepo:     memberRepo,
	}
}

// GovernanceRequest represents create/update governance record input
type GovernanceRequest struct {
	MemberID  uint   `json:"member_id" validate:"required"`
	Role      string `json:"role" validate:"required,max=100"`
	StartTerm string `json:"start_term" validate:"required,datetime=2006-01-02"`
	EndTerm   string `json:"end_term" validate:"omitempty,datetime=2006-01-02"`
	Status    string `json:"status"`
}

func (s *GovernanceService) validateGovernance(ctx context.Context, req *GovernanceRequest) (time.Time, *time.Time, error) {
	fields := validation.Struct(req)
	if fields == nil {
		fields = make(map[string]string)
	}

	if req.Status != "" && !domain.ValidGovernanceStatus(req.Status) {
		fields["status"] = "Must be one of: Active, Retired, Emeritus"
	}
	if req.MemberID != 0 {
		exists, err := s.memberRepo.Exists(ctx, req.MemberID)
		if err != nil {
			return time.Time{}, nil, err
		}
		if !exists {
			fields["member_id"] = "Member does not exist"
		}
	}

	var start time.Time
	if req.StartTerm != "" {
		if t := parseDate(req.StartTerm); t != nil {
			start = *t
		}
	}
	end := parseDate(req.EndTerm)
	if end != nil && !start.IsZero() && end.Before(start) {
		fields["end_term"] = "Must not be before the start of term"
	}

	if len(fields) > 0 {
		return time.Time{}, nil, domain.NewValidationError(fields)
	}
	return start, end, nil
}

// Create records a leadership term. Status defaults to Active.
func (s *GovernanceService) Create(ctx context.Context, req *GovernanceRequest) (*models.GovernanceRecord, error) {
	start, end, err := s.validateGovernance(ctx, req)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = string(domain.GovernanceActive)
	}

	rec := &models.GovernanceRecord{
		MemberID:  req.MemberID,
		Role:      req.Role,
		StartTerm: start,
		EndTerm:   end,
		Status:    status,
	}

	if err := s.governanceRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetByID gets a governance record with its member
func (s *GovernanceService) GetByID(ctx context.Context, id uint) (*models.GovernanceRecord, error) {
	rec, err := s.governanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// List lists governance records, newest term first
func (s *GovernanceService) List(ctx context.Context, offset, limit int) ([]*models.GovernanceRecord, int64, error) {
	return s.governanceRepo.List(ctx, offset, limit)
}

// Update updates a governance record
func (s *GovernanceService) Update(ctx context.Context, id uint, req *GovernanceRequest) (*models.GovernanceRecord, error) {
	start, end, err := s.validateGovernance(ctx, req)
	if err != nil {
		return nil, err
	}

	rec, err := s.governanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rec.MemberID = req.MemberID
	rec.Role = req.Role
	rec.StartTerm = start
	rec.EndTerm = end
	if req.Status != "" {
		rec.Status = req.Status
	}

	if err := s.governanceRepo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a governance record
func (s *GovernanceService) Delete(ctx context.Context, id uint) error {
	_, err := s.governanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.governanceRepo.Delete(ctx, id)
}
