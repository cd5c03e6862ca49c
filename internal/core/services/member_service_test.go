package services

import (
	"context"
	"testing"
	"time"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberCreateDefaultsToActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))

	member, err := svc.Create(context.Background(), &CreateMemberRequest{
		FirstName: "Akosua",
		LastName:  "Mensah",
		Gender:    "Female",
	})
	require.NoError(t, err)
	assert.Equal(t, "Active", member.MembershipStatus)
	assert.NotZero(t, member.ID)
}

func TestMemberCreateRejectsUnknownGender(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))

	_, err := svc.Create(context.Background(), &CreateMemberRequest{
		FirstName: "Kofi",
		LastName:  "Asante",
		Gender:    "Unknown",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "gender")

	var count int64
	db.Model(&models.Member{}).Count(&count)
	assert.Zero(t, count, "nothing should be written on validation failure")
}

func TestMemberCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberRequest{
		FirstName: "Ama",
		LastName:  "Owusu",
		Gender:    "Female",
		Email:     "ama@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &CreateMemberRequest{
		FirstName: "Amara",
		LastName:  "Boateng",
		Gender:    "Female",
		Email:     "ama@example.com",
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")

	// Reassigning another member's email on update hits the same check
	other, err := svc.Create(ctx, &CreateMemberRequest{
		FirstName: "Efua",
		LastName:  "Mensah",
		Gender:    "Female",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, other.ID, &UpdateMemberRequest{
		FirstName: "Efua", LastName: "Mensah", Gender: "Female",
		MembershipStatus: "Active",
		Email:            "ama@example.com",
	})
	vErr = nil
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")
}

func TestMemberSearchMatchesNameOrEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberRequest{
		FirstName: "Anna", LastName: "Sarpong", Gender: "Female",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateMemberRequest{
		FirstName: "Kwame", LastName: "Darko", Gender: "Male",
		Email: "ann.darko@example.com",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateMemberRequest{
		FirstName: "Yaw", LastName: "Ofori", Gender: "Male",
	})
	require.NoError(t, err)

	members, total, err := svc.List(ctx, "ANN", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, members, 2)

	// No filter returns everyone
	_, total, err = svc.List(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestMemberUpdateClearsEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))
	ctx := context.Background()

	member, err := svc.Create(ctx, &CreateMemberRequest{
		FirstName: "Esi", LastName: "Appiah", Gender: "Female",
		Email: "esi@example.com",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, member.ID, &UpdateMemberRequest{
		FirstName: "Esi", LastName: "Appiah", Gender: "Female",
		MembershipStatus: "Active",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Email)
}

func TestMemberDeleteCascadesDependents(t *testing.T) {
	db := newTestDB(t)
	svc := NewMemberService(repositories.NewMemberRepository(db))
	ctx := context.Background()

	member := seedMember(t, db, "Kojo", "Antwi", "Male")
	require.NoError(t, db.Create(&models.Attendance{
		MemberID:  member.ID,
		EventName: "Sunday Service",
		EventDate: time.Now(),
		Status:    "Present",
	}).Error)

	require.NoError(t, svc.Delete(ctx, member.ID))

	var attCount int64
	db.Model(&models.Attendance{}).Where("member_id = ?", member.ID).Count(&attCount)
	assert.Zero(t, attCount)

	assert.ErrorIs(t, svc.Delete(ctx, member.ID), domain.ErrMemberNotFound)
}
