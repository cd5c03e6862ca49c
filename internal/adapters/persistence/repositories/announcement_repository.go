package repositories

import (
	"context"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// AnnouncementRepository handles announcement data access
type AnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// GetByID gets an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id uint) (*models.Announcement, error) {
	var a models.Announcement
	err := r.db.WithContext(ctx).First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List lists announcements with pagination, newest first.
// Empty status means no constraint.
func (r *AnnouncementRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Announcement, int64, error) {
	var announcements []*models.Announcement
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Announcement{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&announcements).Error

	return announcements, total, err
}

// Update updates an announcement
func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete hard deletes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Announcement{}, id).Error
}
