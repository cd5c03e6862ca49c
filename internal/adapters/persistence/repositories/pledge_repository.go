package repositories

import (
	"context"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// PledgeRepository handles pledge data access
type PledgeRepository struct {
	db *gorm.DB
}

// NewPledgeRepository creates a new pledge repository
func NewPledgeRepository(db *gorm.DB) *PledgeRepository {
	return &PledgeRepository{db: db}
}

// Create creates a new pledge
func (r *PledgeRepository) Create(ctx context.Context, pledge *models.Pledge) error {
	return r.db.WithContext(ctx).Create(pledge).Error
}

// GetByID gets a pledge by ID
func (r *PledgeRepository) GetByID(ctx context.Context, id uint) (*models.Pledge, error) {
	var pledge models.Pledge
	err := r.db.WithContext(ctx).Preload("Member").First(&pledge, id).Error
	if err != nil {
		return nil, err
	}
	return &pledge, nil
}

// List lists pledges with pagination ordered by due date.
// Empty status means no constraint.
func (r *PledgeRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Pledge, int64, error) {
	var pledges []*models.Pledge
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Pledge{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Member").
		Order("due_date ASC").
		Offset(offset).
		Limit(limit).
		Find(&pledges).Error

	return pledges, total, err
}

// Update updates a pledge
func (r *PledgeRepository) Update(ctx context.Context, pledge *models.Pledge) error {
	return r.db.WithContext(ctx).Save(pledge).Error
}

// Delete hard deletes a pledge
func (r *PledgeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Pledge{}, id).Error
}
