package repositories

import (
	"context"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// AttendanceRepository handles attendance data access
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// CreateBatch inserts all records in a single transaction.
// Either every row commits or none does.
func (r *AttendanceRepository) CreateBatch(ctx context.Context, records []*models.Attendance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if err := tx.Create(record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// List lists attendance with pagination ordered by event date, newest first
func (r *AttendanceRepository) List(ctx context.Context, offset, limit int) ([]*models.Attendance, int64, error) {
	var records []*models.Attendance
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Attendance{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("event_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error

	return records, total, err
}

// GetByID gets an attendance record by ID
func (r *AttendanceRepository) GetByID(ctx context.Context, id uint) (*models.Attendance, error) {
	var record models.Attendance
	err := r.db.WithContext(ctx).Preload("Member").First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update updates an attendance record
func (r *AttendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete hard deletes an attendance record
func (r *AttendanceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Attendance{}, id).Error
}
