package services

import (
	"context"
	"testing"

	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/domain"
	"github.com/kwakuoseikwakye/presby-cms/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	user, err := svc.Create(context.Background(), &CreateUserRequest{
		Name:     "Church Admin",
		Email:    "admin@example.com",
		Password: "secret-pass-123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass-123", user.Password)
	assert.True(t, password.Verify("secret-pass-123", user.Password))
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateUserRequest{
		Name: "Admin", Email: "admin@example.com", Password: "secret-pass-123",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &CreateUserRequest{
		Name: "Other", Email: "admin@example.com", Password: "another-pass-123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserCreateRejectsShortPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	_, err := svc.Create(context.Background(), &CreateUserRequest{
		Name: "Admin", Email: "admin@example.com", Password: "short",
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "password")
}

func TestUserChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Create(ctx, &CreateUserRequest{
		Name: "Admin", Email: "admin@example.com", Password: "secret-pass-123",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "brand-new-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, user.ID, &ChangePasswordRequest{
		CurrentPassword: "secret-pass-123",
		NewPassword:     "brand-new-pass",
	})
	require.NoError(t, err)

	refreshed, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, password.Verify("brand-new-pass", refreshed.Password))
}

func TestUserDeactivate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Create(ctx, &CreateUserRequest{
		Name: "Admin", Email: "admin@example.com", Password: "secret-pass-123",
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctx, user.ID, &UpdateUserRequest{
		Name:     "Admin",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}
