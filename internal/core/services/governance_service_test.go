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

func newGovernanceService(db *gorm.DB) *GovernanceService {
	return NewGovernanceService(
		repositories.NewGovernanceRepository(db),
		repositories.NewMemberRepository(db),
	)
}

func TestGovernanceCreateDefaultsToActive(t *testing.T) {
	db := newTestDB(t)
	svc := newGovernanceService(db)
	member := seedMember(t, db, "Ama", "Owusu", "Female")

	record, err := svc.Create(context.Background(), &GovernanceRequest{
		MemberID:  member.ID,
		Role:      "Session Clerk",
		StartTerm: "2026-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Active", record.Status)
	assert.Nil(t, record.EndTerm)
}

func TestGovernanceRejectsEndBeforeStart(t *testing.T) {
	db := newTestDB(t)
	svc := newGovernanceService(db)
	member := seedMember(t, db, "Kofi", "Asante", "Male")

	_, err := svc.Create(context.Background(), &GovernanceRequest{
		MemberID:  member.ID,
		Role:      "Presbyter",
		StartTerm: "2026-01-01",
		EndTerm:   "2025-06-30",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "end_term")
}

func TestGovernanceRequiresExistingMember(t *testing.T) {
	db := newTestDB(t)
	svc := newGovernanceService(db)

	_, err := svc.Create(context.Background(), &GovernanceRequest{
		MemberID:  321,
		Role:      "Presbyter",
		StartTerm: "2026-01-01",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "member_id")
}
