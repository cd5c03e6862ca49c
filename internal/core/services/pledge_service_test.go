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

func newPledgeService(db *gorm.DB) *PledgeService {
	return NewPledgeService(
		repositories.NewPledgeRepository(db),
		repositories.NewMemberRepository(db),
	)
}

func TestPledgeCreateDefaultsToPending(t *testing.T) {
	db := newTestDB(t)
	svc := newPledgeService(db)
	member := seedMember(t, db, "Ama", "Owusu", "Female")

	pledge, err := svc.Create(context.Background(), &PledgeRequest{
		MemberID: member.ID,
		Amount:   "500.00",
		DueDate:  "2026-12-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pending", pledge.Status)
	assert.Equal(t, "500.00", pledge.Amount.StringFixed(2))
}

func TestPledgeRequiresExistingMember(t *testing.T) {
	db := newTestDB(t)
	svc := newPledgeService(db)

	_, err := svc.Create(context.Background(), &PledgeRequest{
		MemberID: 999,
		Amount:   "500.00",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "member_id")
}

func TestPledgeStatusFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newPledgeService(db)
	ctx := context.Background()
	member := seedMember(t, db, "Kofi", "Asante", "Male")

	_, err := svc.Create(ctx, &PledgeRequest{MemberID: member.ID, Amount: "100.00"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &PledgeRequest{MemberID: member.ID, Amount: "200.00", Status: "Fulfilled"})
	require.NoError(t, err)

	pledges, total, err := svc.List(ctx, "Fulfilled", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, pledges, 1)
	assert.Equal(t, "200.00", pledges[0].Amount.StringFixed(2))
}
