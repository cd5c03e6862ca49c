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

// EventService handles church event business logic
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// EventRequest represents create/update event input
type EventRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Location    string `json:"location" validate:"max=255"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date"`
	Type        string `json:"type" validate:"max=50"`
	Status      string `json:"status"`
}

func parseEventTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (s *EventService) validateEvent(req *EventRequest) (time.Time, *time.Time, error) {
	fields := validation.Struct(req)
	if fields == nil {
		fields = make(map[string]string)
	}

	var start time.Time
	if req.StartDate != "" {
		parsed, ok := parseEventTime(req.StartDate)
		if !ok {
			fields["start_date"] = "Must be a valid date"
		}
		start = parsed
	}

	var end *time.Time
	if req.EndDate != "" {
		parsed, ok := parseEventTime(req.EndDate)
		if !ok {
			fields["end_date"] = "Must be a valid date"
		} else if !start.IsZero() && parsed.Before(start) {
			fields["end_date"] = "Must not be before the start date"
		} else {
			end = &parsed
		}
	}

	if req.Status != "" && !domain.ValidEventStatus(req.Status) {
		fields["status"] = "Must be one of: Upcoming, Ongoing, Completed, Cancelled"
	}

	if len(fields) > 0 {
		return time.Time{}, nil, domain.NewValidationError(fields)
	}
	return start, end, nil
}

// Create schedules a new event. Status defaults to Upcoming.
func (s *EventService) Create(ctx context.Context, req *EventRequest) (*models.Event, error) {
	start, end, err := s.validateEvent(req)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = string(domain.EventUpcoming)
	}

	event := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   start,
		EndDate:     end,
		Type:        req.Type,
		Status:      status,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID gets an event
func (s *EventService) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// List lists events with an optional status filter
func (s *EventService) List(ctx context.Context, status string, offset, limit int) ([]*models.Event, int64, error) {
	if status != "" && !domain.ValidEventStatus(status) {
		return nil, 0, domain.NewValidationError(map[string]string{
			"status": "Must be one of: Upcoming, Ongoing, Completed, Cancelled",
		})
	}
	return s.eventRepo.List(ctx, status, offset, limit)
}

// Update updates an event
func (s *EventService) Update(ctx context.Context, id uint, req *EventRequest) (*models.Event, error) {
	start, end, err := s.validateEvent(req)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	event.Name = req.Name
	event.Description = req.Description
	event.Location = req.Location
	event.StartDate = start
	event.EndDate = end
	event.Type = req.Type
	if req.Status != "" {
		event.Status = req.Status
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event
func (s *EventService) Delete(ctx context.Context, id uint) error {
	_, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEventNotFound
		}
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}
