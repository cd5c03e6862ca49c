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

// MemberService handles congregation member business logic
type MemberService struct {
	memberRepo *repositories.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo *repositories.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// CreateMemberRequest represents create member input
type CreateMemberRequest struct {
	FirstName        string `json:"first_name" validate:"required,max=100"`
	MiddleName       string `json:"middle_name" validate:"max=100"`
	LastName         string `json:"last_name" validate:"required,max=100"`
	Gender           string `json:"gender" validate:"required"`
	DOB              string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Phone            string `json:"phone" validate:"max=20"`
	Email            string `json:"email" validate:"omitempty,email,max=100"`
	Occupation       string `json:"occupation" validate:"max=100"`
	Hometown         string `json:"hometown" validate:"max=100"`
	MembershipStatus string `json:"membership_status"`
	BaptismDate      string `json:"baptism_date" validate:"omitempty,datetime=2006-01-02"`
	ConfirmationDate string `json:"confirmation_date" validate:"omitempty,datetime=2006-01-02"`
	PhotoURL         string `json:"photo_url" validate:"max=255"`
}

// UpdateMemberRequest represents update member input
type UpdateMemberRequest struct {
	FirstName        string `json:"first_name" validate:"required,max=100"`
	MiddleName       string `json:"middle_name" validate:"max=100"`
	LastName         string `json:"last_name" validate:"required,max=100"`
	Gender           string `json:"gender" validate:"required"`
	DOB              string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Phone            string `json:"phone" validate:"max=20"`
	Email            string `json:"email" validate:"omitempty,email,max=100"`
	Occupation       string `json:"occupation" validate:"max=100"`
	Hometown         string `json:"hometown" validate:"max=100"`
	MembershipStatus string `json:"membership_status" validate:"required"`
	BaptismDate      string `json:"baptism_date" validate:"omitempty,datetime=2006-01-02"`
	ConfirmationDate string `json:"confirmation_date" validate:"omitempty,datetime=2006-01-02"`
	PhotoURL         string `json:"photo_url" validate:"max=255"`
}

func validateMemberEnums(gender, status string, fields map[string]string) map[string]string {
	if fields == nil {
		fields = make(map[string]string)
	}
	if gender != "" && !domain.ValidGender(gender) {
		fields["gender"] = "Must be one of: Male, Female, Other"
	}
	if status != "" && !domain.ValidMembershipStatus(status) {
		fields["membership_status"] = "Must be one of: Active, Inactive, Deceased, Transferred"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// Create registers a new member. The membership status defaults to
// Active when omitted.
func (s *MemberService) Create(ctx context.Context, req *CreateMemberRequest) (*models.Member, error) {
	fields := validation.Struct(req)
	fields = validateMemberEnums(req.Gender, req.MembershipStatus, fields)
	if req.Email != "" {
		taken, err := s.memberRepo.ExistsByEmail(ctx, req.Email, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			if fields == nil {
				fields = make(map[string]string)
			}
			fields["email"] = "A member with this email already exists"
		}
	}
	if fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	status := req.MembershipStatus
	if status == "" {
		status = string(domain.MembershipActive)
	}

	member := &models.Member{
		FirstName:        req.FirstName,
		MiddleName:       req.MiddleName,
		LastName:         req.LastName,
		Gender:           req.Gender,
		DOB:              parseDate(req.DOB),
		Phone:            req.Phone,
		Occupation:       req.Occupation,
		Hometown:         req.Hometown,
		MembershipStatus: status,
		BaptismDate:      parseDate(req.BaptismDate),
		ConfirmationDate: parseDate(req.ConfirmationDate),
		PhotoURL:         req.PhotoURL,
	}
	if req.Email != "" {
		member.Email = &req.Email
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// GetByID gets a member profile with groups, recent attendance,
// recent contributions and pledges
func (s *MemberService) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	member, err := s.memberRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// List lists members with optional name/email search
func (s *MemberService) List(ctx context.Context, search string, offset, limit int) ([]*models.Member, int64, error) {
	return s.memberRepo.List(ctx, search, offset, limit)
}

// ListActive lists active members for the attendance marking form
func (s *MemberService) ListActive(ctx context.Context) ([]*models.Member, error) {
	return s.memberRepo.ListActive(ctx)
}

// Update updates a member profile
func (s *MemberService) Update(ctx context.Context, id uint, req *UpdateMemberRequest) (*models.Member, error) {
	fields := validation.Struct(req)
	fields = validateMemberEnums(req.Gender, req.MembershipStatus, fields)
	if req.Email != "" {
		taken, err := s.memberRepo.ExistsByEmail(ctx, req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			if fields == nil {
				fields = make(map[string]string)
			}
			fields["email"] = "A member with this email already exists"
		}
	}
	if fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}

	member.FirstName = req.FirstName
	member.MiddleName = req.MiddleName
	member.LastName = req.LastName
	member.Gender = req.Gender
	member.DOB = parseDate(req.DOB)
	member.Phone = req.Phone
	member.Occupation = req.Occupation
	member.Hometown = req.Hometown
	member.MembershipStatus = req.MembershipStatus
	member.BaptismDate = parseDate(req.BaptismDate)
	member.ConfirmationDate = parseDate(req.ConfirmationDate)
	member.PhotoURL = req.PhotoURL
	if req.Email != "" {
		member.Email = &req.Email
	} else {
		member.Email = nil
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a member and their dependent records
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	exists, err := s.memberRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrMemberNotFound
	}
	return s.memberRepo.Delete(ctx, id)
}
