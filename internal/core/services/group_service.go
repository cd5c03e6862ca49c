package services

import (
	"context"
	"errors"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/validation"

	"gorm.io/gorm"
)

// GroupService handles group and enrollment business logic
type GroupService struct {
	groupRepo  *repositories.GroupRepository
	memberRepo *repositories.MemberRepository
	userRepo   repositories.UserRepository
}

// NewGroupService creates a new group service
func NewGroupService(
	groupRepo *repositories.GroupRepository,
	memberRepo *repositories.MemberRepository,
	userRepo repositories.UserRepository,
) *GroupService {
	return &GroupService{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

// GroupRequest represents create/update group input
type GroupRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required"`
	LeaderID    *uint  `json:"leader_id"`
}

func (s *GroupService) validateGroup(ctx context.Context, req *GroupRequest) error {
	fields := validation.Struct(req)
	if fields == nil {
		fields = make(map[string]string)
	}
	if req.Type != "" && !domain.ValidGroupType(req.Type) {
		fields["type"] = "Must be one of: Department, Committee, General Group"
	}
	if req.LeaderID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.LeaderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fields["leader_id"] = "Leader does not exist"
			} else {
				return err
			}
		}
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}

// Create creates a new group
func (s *GroupService) Create(ctx context.Context, req *GroupRequest) (*models.Group, error) {
	if err := s.validateGroup(ctx, req); err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		LeaderID:    req.LeaderID,
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// GetByID gets a group with its leader
func (s *GroupService) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

// List lists groups with member counts
func (s *GroupService) List(ctx context.Context, offset, limit int) ([]*models.GroupResponse, int64, error) {
	groups, counts, total, err := s.groupRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]*models.GroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = g.ToResponse()
		resp[i].MemberCount = counts[g.ID]
	}
	return resp, total, nil
}

// Update updates a group
func (s *GroupService) Update(ctx context.Context, id uint, req *GroupRequest) (*models.Group, error) {
	if err := s.validateGroup(ctx, req); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}

	group.Name = req.Name
	group.Description = req.Description
	group.Type = req.Type
	group.LeaderID = req.LeaderID

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Delete removes a group and its enrollments
func (s *GroupService) Delete(ctx context.Context, id uint) error {
	_, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroupNotFound
		}
		return err
	}
	return s.groupRepo.Delete(ctx, id)
}

// Roster lists the members of a group with their roles
func (s *GroupService) Roster(ctx context.Context, groupID uint) ([]*models.RosterEntry, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}

	rows, err := s.groupRepo.Roster(ctx, groupID)
	if err != nil {
		return nil, err
	}

	roster := make([]*models.RosterEntry, 0, len(rows))
	for _, row := range rows {
		entry := &models.RosterEntry{
			MemberID:    row.MemberID,
			RoleInGroup: row.RoleInGroup,
		}
		if row.Member != nil {
			entry.FullName = row.Member.FullName()
		}
		roster = append(roster, entry)
	}
	return roster, nil
}

// EnrollRequest represents an enrollment input
type EnrollRequest struct {
	MemberID    uint   `json:"member_id" validate:"required"`
	RoleInGroup string `json:"role_in_group" validate:"max=100"`
}

// Enroll adds a member to a group. A member can hold only one
// enrollment per group; a repeat enrollment is rejected.
func (s *GroupService) Enroll(ctx context.Context, groupID uint, req *EnrollRequest) error {
	if fields := validation.Struct(req); fields != nil {
		return domain.NewValidationError(fields)
	}

	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroupNotFound
		}
		return err
	}

	exists, err := s.memberRepo.Exists(ctx, req.MemberID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrMemberNotFound
	}

	enrolled, err := s.groupRepo.IsEnrolled(ctx, groupID, req.MemberID)
	if err != nil {
		return err
	}
	if enrolled {
		return domain.ErrDuplicateEntry
	}

	role := req.RoleInGroup
	if role == "" {
		role = "Member"
	}
	return s.groupRepo.Enroll(ctx, groupID, req.MemberID, role)
}

// Unenroll removes a member from a group. Removing an absent
// membership succeeds without effect.
func (s *GroupService) Unenroll(ctx context.Context, groupID, memberID uint) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroupNotFound
		}
		return err
	}
	return s.groupRepo.Unenroll(ctx, groupID, memberID)
}
