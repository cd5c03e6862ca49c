package repositories

import (
	"context"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// GroupRepository handles group and group membership data access
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// GetByID gets a group by ID with its leader
func (r *GroupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).Preload("Leader").First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// List lists groups with pagination, leader preloaded and member counts attached
func (r *GroupRepository) List(ctx context.Context, offset, limit int) ([]*models.Group, map[uint]int64, int64, error) {
	var groups []*models.Group
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Group{}).Count(&total).Error; err != nil {
		return nil, nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Leader").
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&groups).Error
	if err != nil {
		return nil, nil, 0, err
	}

	counts := make(map[uint]int64, len(groups))
	if len(groups) > 0 {
		ids := make([]uint, len(groups))
		for i, g := range groups {
			ids[i] = g.ID
		}
		var rows []struct {
			GroupID uint
			Count   int64
		}
		err = r.db.WithContext(ctx).
			Table("group_member").
			Select("group_id, COUNT(*) as count").
			Where("group_id IN ?", ids).
			Group("group_id").
			Scan(&rows).Error
		if err != nil {
			return nil, nil, 0, err
		}
		for _, row := range rows {
			counts[row.GroupID] = row.Count
		}
	}

	return groups, counts, total, nil
}

// Update updates a group
func (r *GroupRepository) Update(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

// Delete hard deletes a group; join rows cascade
func (r *GroupRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, id).Error
	})
}

// Roster lists the members of a group with their role in the group
func (r *GroupRepository) Roster(ctx context.Context, groupID uint) ([]*models.GroupMember, error) {
	var rows []*models.GroupMember
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("group_id = ?", groupID).
		Order("role_in_group ASC").
		Find(&rows).Error
	return rows, err
}

// IsEnrolled reports whether the member already has a join row in the group
func (r *GroupRepository) IsEnrolled(ctx context.Context, groupID, memberID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.GroupMember{}).
		Where("group_id = ? AND member_id = ?", groupID, memberID).
		Count(&count).Error
	return count > 0, err
}

// Enroll attaches a member to a group with a role
func (r *GroupRepository) Enroll(ctx context.Context, groupID, memberID uint, role string) error {
	return r.db.WithContext(ctx).Create(&models.GroupMember{
		GroupID:     groupID,
		MemberID:    memberID,
		RoleInGroup: role,
	}).Error
}

// Unenroll removes the join row for the (group, member) pair.
// Removing a membership that does not exist is a no-op.
func (r *GroupRepository) Unenroll(ctx context.Context, groupID, memberID uint) error {
	return r.db.WithContext(ctx).
		Where("group_id = ? AND member_id = ?", groupID, memberID).
		Delete(&models.GroupMember{}).Error
}
