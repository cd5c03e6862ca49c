package services

import (
	"context"
	"testing"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGroupService(db *gorm.DB) *GroupService {
	return NewGroupService(
		repositories.NewGroupRepository(db),
		repositories.NewMemberRepository(db),
		repositories.NewUserRepository(db),
	)
}

func TestGroupEnrollAndRoster(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	ctx := context.Background()

	group, err := svc.Create(ctx, &GroupRequest{Name: "Choir", Type: "General Group"})
	require.NoError(t, err)

	member := seedMember(t, db, "Akosua", "Mensah", "Female")

	// Role defaults to Member when omitted
	require.NoError(t, svc.Enroll(ctx, group.ID, &EnrollRequest{MemberID: member.ID}))

	roster, err := svc.Roster(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Akosua Mensah", roster[0].FullName)
	assert.Equal(t, "Member", roster[0].RoleInGroup)
}

func TestGroupEnrollDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	ctx := context.Background()

	group, err := svc.Create(ctx, &GroupRequest{Name: "Ushers", Type: "Department"})
	require.NoError(t, err)
	member := seedMember(t, db, "Kofi", "Asante", "Male")

	require.NoError(t, svc.Enroll(ctx, group.ID, &EnrollRequest{MemberID: member.ID}))

	err = svc.Enroll(ctx, group.ID, &EnrollRequest{MemberID: member.ID, RoleInGroup: "Secretary"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)

	roster, err := svc.Roster(ctx, group.ID)
	require.NoError(t, err)
	assert.Len(t, roster, 1, "duplicate enrollment must not add a second row")
}

func TestGroupUnenrollAbsentMembershipIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	ctx := context.Background()

	group, err := svc.Create(ctx, &GroupRequest{Name: "Youth", Type: "General Group"})
	require.NoError(t, err)
	member := seedMember(t, db, "Yaw", "Ofori", "Male")

	// Never enrolled; removal still succeeds
	assert.NoError(t, svc.Unenroll(ctx, group.ID, member.ID))

	// Unknown group is still an error
	assert.ErrorIs(t, svc.Unenroll(ctx, 999, member.ID), domain.ErrGroupNotFound)
}

func TestGroupListCountsMembers(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	ctx := context.Background()

	choir, err := svc.Create(ctx, &GroupRequest{Name: "Choir", Type: "General Group"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &GroupRequest{Name: "Finance Committee", Type: "Committee"})
	require.NoError(t, err)

	for _, name := range []string{"Ama", "Esi"} {
		m := seedMember(t, db, name, "Owusu", "Female")
		require.NoError(t, svc.Enroll(ctx, choir.ID, &EnrollRequest{MemberID: m.ID}))
	}

	groups, total, err := svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	counts := make(map[string]int64)
	for _, g := range groups {
		counts[g.Name] = g.MemberCount
	}
	assert.EqualValues(t, 2, counts["Choir"])
	assert.EqualValues(t, 0, counts["Finance Committee"])
}

func TestGroupRejectsUnknownTypeAndLeader(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)

	ghost := uint(77)
	_, err := svc.Create(context.Background(), &GroupRequest{
		Name:     "Band",
		Type:     "Club",
		LeaderID: &ghost,
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "type")
	assert.Contains(t, vErr.Fields, "leader_id")
}
