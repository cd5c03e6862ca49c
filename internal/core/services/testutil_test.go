package services

import (
	"testing"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps every query on the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func seedMember(t *testing.T, db *gorm.DB, first, last, gender string) *models.Member {
	t.Helper()
	m := &models.Member{
		FirstName:        first,
		LastName:         last,
		Gender:           gender,
		MembershipStatus: "Active",
	}
	require.NoError(t, db.Create(m).Error)
	return m
}
