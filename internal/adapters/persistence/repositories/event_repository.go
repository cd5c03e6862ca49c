package repositories

import (
	"context"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// EventRepository handles event data access
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID gets an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// List lists events with pagination, newest start date first.
// Empty status means no constraint.
func (r *EventRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Event, int64, error) {
	var events []*models.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Event{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("start_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error

	return events, total, err
}

// Update updates an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete hard deletes an event
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Event{}, id).Error
}
