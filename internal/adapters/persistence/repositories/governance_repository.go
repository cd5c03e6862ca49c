package repositories

import (
	"context"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// GovernanceRepository handles governance record data access
type GovernanceRepository struct {
	db *gorm.DB
}

// NewGovernanceRepository creates a new governance repository
func NewGovernanceRepository(db *gorm.DB) *GovernanceRepository {
	return &GovernanceRepository{db: db}
}

// Create creates a new governance record
func (r *GovernanceRepository) Create(ctx context.Context, rec *models.GovernanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// GetByID gets a governance record by ID
func (r *GovernanceRepository) GetByID(ctx context.Context, id uint) (*models.GovernanceRecord, error) {
	var rec models.GovernanceRecord
	err := r.db.WithContext(ctx).Preload("Member").First(&rec, id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List lists governance records with pagination, newest term first
func (r *GovernanceRepository) List(ctx context.Context, offset, limit int) ([]*models.GovernanceRecord, int64, error) {
	var records []*models.GovernanceRecord
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.GovernanceRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("start_term DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error

	return records, total, err
}

// Update updates a governance record
func (r *GovernanceRepository) Update(ctx context.Context, rec *models.GovernanceRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Delete hard deletes a governance record
func (r *GovernanceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.GovernanceRecord{}, id).Error
}
