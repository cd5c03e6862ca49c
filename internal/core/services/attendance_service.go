package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/validation"

	"gorm.io/gorm"
)

// AttendanceService handles attendance business logic
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	memberRepo     *repositories.MemberRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	memberRepo *repositories.MemberRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		memberRepo:     memberRepo,
	}
}

// AttendanceEntry is one member's status within a batch
type AttendanceEntry struct {
	MemberID uint   `json:"member_id" validate:"required"`
	Status   string `json:"status" validate:"required"`
	Remarks  string `json:"remarks"`
}

// MarkAttendanceRequest represents a batch marking input: one event,
// one row per member
type MarkAttendanceRequest struct {
	EventName string            `json:"event_name" validate:"required,max=255"`
	EventDate string            `json:"event_date" validate:"required,datetime=2006-01-02"`
	Entries   []AttendanceEntry `json:"attendance" validate:"required,min=1,dive"`
}

// MarkBatch validates every entry before any row is written. A single
// bad entry rejects the whole batch.
func (s *AttendanceService) MarkBatch(ctx context.Context, req *MarkAttendanceRequest) ([]*models.Attendance, error) {
	fields := validation.Struct(req)
	if fields == nil {
		fields = make(map[string]string)
	}

	for i, entry := range req.Entries {
		if entry.Status != "" && !domain.ValidAttendanceStatus(entry.Status) {
			fields[fmt.Sprintf("attendance.%d.status", i)] = "Must be one of: Present, Absent, Excused"
		}
		if entry.MemberID != 0 {
			exists, err := s.memberRepo.Exists(ctx, entry.MemberID)
			if err != nil {
				return nil, err
			}
			if !exists {
				fields[fmt.Sprintf("attendance.%d.member_id", i)] = "Member does not exist"
			}
		}
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	records := make([]*models.Attendance, len(req.Entries))
	for i, entry := range req.Entries {
		records[i] = &models.Attendance{
			MemberID:  entry.MemberID,
			EventName: req.EventName,
			EventDate: eventDate,
			Status:    entry.Status,
			Remarks:   entry.Remarks,
		}
	}

	if err := s.attendanceRepo.CreateBatch(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// List lists attendance records, newest event first
func (s *AttendanceService) List(ctx context.Context, offset, limit int) ([]*models.Attendance, int64, error) {
	return s.attendanceRepo.List(ctx, offset, limit)
}

// GetByID gets one attendance record
func (s *AttendanceService) GetByID(ctx context.Context, id uint) (*models.Attendance, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// UpdateAttendanceRequest represents a single-record correction
type UpdateAttendanceRequest struct {
	Status  string `json:"status" validate:"required"`
	Remarks string `json:"remarks"`
}

// Update corrects the status or remarks of one record
func (s *AttendanceService) Update(ctx context.Context, id uint, req *UpdateAttendanceRequest) (*models.Attendance, error) {
	fields := validation.Struct(req)
	if fields == nil {
		fields = make(map[string]string)
	}
	if req.Status != "" && !domain.ValidAttendanceStatus(req.Status) {
		fields["status"] = "Must be one of: Present, Absent, Excused"
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	record.Status = req.Status
	record.Remarks = req.Remarks

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes one attendance record
func (s *AttendanceService) Delete(ctx context.Context, id uint) error {
	_, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.attendanceRepo.Delete(ctx, id)
}
