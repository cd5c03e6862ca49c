package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMemberFullName(t *testing.T) {
	withMiddle := &Member{FirstName: "Kwaku", MiddleName: "Osei", LastName: "Kwakye"}
	assert.Equal(t, "Kwaku Osei Kwakye", withMiddle.FullName())

	noMiddle := &Member{FirstName: "Ama", LastName: "Owusu"}
	assert.Equal(t, "Ama Owusu", noMiddle.FullName())
}

func TestTransactionResponseFormatsAmount(t *testing.T) {
	tx := &Transaction{
		Amount:        decimal.RequireFromString("150.5"),
		Type:          "Income",
		Category:      "Tithe",
		PaymentMethod: "Cash",
		Member:        &Member{FirstName: "Esi", LastName: "Appiah"},
	}

	resp := tx.ToResponse()
	assert.Equal(t, "150.50", resp.Amount)
	assert.Equal(t, "Esi Appiah", resp.MemberName)
}

func TestGroupResponseCarriesLeaderName(t *testing.T) {
	g := &Group{
		Name:   "Choir",
		Type:   "General Group",
		Leader: &User{Name: "Pastor Owusu"},
	}
	assert.Equal(t, "Pastor Owusu", g.ToResponse().LeaderName)

	leaderless := &Group{Name: "Finance Committee", Type: "Committee"}
	assert.Empty(t, leaderless.ToResponse().LeaderName)
}
