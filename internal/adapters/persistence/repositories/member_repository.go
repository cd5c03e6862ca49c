package repositories

import (
	"context"
	"strings"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// MemberRepository handles member data access
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member by ID
func (r *MemberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetDetail gets a member with groups, attendance, transactions and pledges
func (r *MemberRepository) GetDetail(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).
		Preload("Groups.Group").
		Preload("Attendance", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_date DESC").Limit(10)
		}).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("transaction_date DESC").Limit(10)
		}).
		Preload("Pledges").
		First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List lists members with pagination. When search is non-empty it is
// matched case-insensitively as a substring over first, middle and last
// name and email (OR-combined).
func (r *MemberRepository) List(ctx context.Context, search string, offset, limit int) ([]*models.Member, int64, error) {
	var members []*models.Member
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Member{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(middle_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&members).Error

	return members, total, err
}

// Update updates a member (full-record replacement)
func (r *MemberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete hard deletes a member; dependent rows cascade
func (r *MemberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.Pledge{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.GovernanceRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Member{}, id).Error
	})
}

// Exists checks whether a member exists
func (r *MemberRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks whether another member already uses the email.
// excludeID skips the member being updated; pass 0 on create.
func (r *MemberRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Member{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// ListActive lists active members ordered by last name (attendance form source)
func (r *MemberRepository) ListActive(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).
		Where("membership_status = ?", "Active").
		Order("last_name ASC, first_name ASC").
		Find(&members).Error
	return members, err
}
