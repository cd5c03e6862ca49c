package services

import (
	"context"
	"testing"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAttendanceService(db *gorm.DB) *AttendanceService {
	return NewAttendanceService(
		repositories.NewAttendanceRepository(db),
		repositories.NewMemberRepository(db),
	)
}

func TestMarkBatchCreatesOneRowPerMember(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(db)
	ctx := context.Background()

	ama := seedMember(t, db, "Ama", "Owusu", "Female")
	kofi := seedMember(t, db, "Kofi", "Asante", "Male")

	records, err := svc.MarkBatch(ctx, &MarkAttendanceRequest{
		EventName: "Sunday Service",
		EventDate: "2026-08-30",
		Entries: []AttendanceEntry{
			{MemberID: ama.ID, Status: "Present"},
			{MemberID: kofi.ID, Status: "Absent", Remarks: "Travelled"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	var count int64
	db.Model(&models.Attendance{}).Where("event_name = ?", "Sunday Service").Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestMarkBatchRejectsWholeBatchOnOneBadEntry(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(db)
	ctx := context.Background()

	ama := seedMember(t, db, "Ama", "Owusu", "Female")

	_, err := svc.MarkBatch(ctx, &MarkAttendanceRequest{
		EventName: "Bible Study",
		EventDate: "2026-08-28",
		Entries: []AttendanceEntry{
			{MemberID: ama.ID, Status: "Present"},
			{MemberID: 999, Status: "Late"}, // unknown member, unknown status
		},
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "attendance.1.member_id")
	assert.Contains(t, vErr.Fields, "attendance.1.status")

	var count int64
	db.Model(&models.Attendance{}).Count(&count)
	assert.Zero(t, count, "a bad entry must leave nothing written")
}

func TestMarkBatchMissingEntryFieldsKeyedLikeManualChecks(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(db)

	ama := seedMember(t, db, "Ama", "Owusu", "Female")

	// Entry one has no status at all, so the tag validator catches it;
	// the key shape matches the unknown-status checks above
	_, err := svc.MarkBatch(context.Background(), &MarkAttendanceRequest{
		EventName: "Bible Study",
		EventDate: "2026-08-28",
		Entries: []AttendanceEntry{
			{MemberID: ama.ID, Status: "Present"},
			{MemberID: ama.ID},
		},
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "attendance.1.status")
}

func TestMarkBatchRequiresEntries(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(db)

	_, err := svc.MarkBatch(context.Background(), &MarkAttendanceRequest{
		EventName: "Sunday Service",
		EventDate: "2026-08-30",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestAttendanceUpdateCorrectsStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newAttendanceService(db)
	ctx := context.Background()

	ama := seedMember(t, db, "Ama", "Owusu", "Female")
	records, err := svc.MarkBatch(ctx, &MarkAttendanceRequest{
		EventName: "Sunday Service",
		EventDate: "2026-08-30",
		Entries:   []AttendanceEntry{{MemberID: ama.ID, Status: "Absent"}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, records[0].ID, &UpdateAttendanceRequest{
		Status:  "Excused",
		Remarks: "Called in sick",
	})
	require.NoError(t, err)
	assert.Equal(t, "Excused", updated.Status)

	_, err = svc.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
