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

// AnnouncementService handles announcement business logic
type AnnouncementService struct {
	announcementRepo *repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

// AnnouncementRequest represents create/update announcement input
type AnnouncementRequest struct {
	Title          string `json:"title" validate:"required,max=255"`
	Content        string `json:"content" validate:"required"`
	TargetAudience string `json:"target_audience" validate:"max=100"`
	Status         string `json:"status"`
	PublishedAt    string `json:"published_at" validate:"omitempty,datetime=2006-01-02"`
}

func validateAnnouncement(req *AnnouncementRequest) error {
	fields := validation.Struct(req)
	if fields == nil {
		fields = make(map[string]string)
	}
	if req.Status != "" && !domain.ValidAnnouncementStatus(req.Status) {
		fields["status"] = "Must be one of: Draft, Published"
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}

// Create drafts a new announcement. Creating with Published status
// stamps the publish time immediately; a future published_at on a
// Draft schedules it for the housekeeping job.
func (s *AnnouncementService) Create(ctx context.Context, req *AnnouncementRequest) (*models.Announcement, error) {
	if err := validateAnnouncement(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = string(domain.AnnouncementDraft)
	}

	a := &models.Announcement{
		Title:          req.Title,
		Content:        req.Content,
		TargetAudience: req.TargetAudience,
		Status:         status,
		PublishedAt:    parseDate(req.PublishedAt),
	}
	if status == string(domain.AnnouncementPublished) && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetByID gets an announcement
func (s *AnnouncementService) GetByID(ctx context.Context, id uint) (*models.Announcement, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, err
	}
	return a, nil
}

// List lists announcements with an optional status filter
func (s *AnnouncementService) List(ctx context.Context, status string, offset, limit int) ([]*models.Announcement, int64, error) {
	if status != "" && !domain.ValidAnnouncementStatus(status) {
		return nil, 0, domain.NewValidationError(map[string]string{
			"status": "Must be one of: Draft, Published",
		})
	}
	return s.announcementRepo.List(ctx, status, offset, limit)
}

// Update updates an announcement
func (s *AnnouncementService) Update(ctx context.Context, id uint, req *AnnouncementRequest) (*models.Announcement, error) {
	if err := validateAnnouncement(req); err != nil {
		return nil, err
	}

	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, err
	}

	a.Title = req.Title
	a.Content = req.Content
	a.TargetAudience = req.TargetAudience
	if req.Status != "" {
		a.Status = req.Status
	}
	if req.PublishedAt != "" {
		a.PublishedAt = parseDate(req.PublishedAt)
	}
	if a.Status == string(domain.AnnouncementPublished) && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	if err := s.announcementRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Publish moves a Draft to Published and stamps the publish time.
// Publishing an already published announcement is a no-op.
func (s *AnnouncementService) Publish(ctx context.Context, id uint) (*models.Announcement, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, err
	}

	if a.Status == string(domain.AnnouncementPublished) {
		return a, nil
	}

	now := time.Now()
	a.Status = string(domain.AnnouncementPublished)
	a.PublishedAt = &now

	if err := s.announcementRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(ctx context.Context, id uint) error {
	_, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAnnouncementNotFound
		}
		return err
	}
	return s.announcementRepo.Delete(ctx, id)
}
