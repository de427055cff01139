package service

import (
	"context"
	"testing"

	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/akfoods/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username: "priya",
		Password: "secret123",
		Role:     enum.UserRoleCashier,
	})

	require.NoError(t, err)
	assert.Equal(t, "priya", user.Username)
	assert.True(t, user.IsActive)
	// The stored password is hashed, never the plaintext.
	assert.NotEqual(t, "secret123", user.Password)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	seedUser(t, repo, "priya", "secret123", true)

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username: "priya",
		Password: "other",
		Role:     enum.UserRoleCashier,
	})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username: "priya",
		Password: "secret123",
		Role:     enum.UserRole("manager"),
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateUser_CannotDemoteSelf(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	admin := seedUser(t, repo, "admin", "secret123", true)
	admin.Role = enum.UserRoleAdmin

	cashier := enum.UserRoleCashier
	_, err := svc.UpdateUser(context.Background(), admin.ID, admin.ID, &UpdateUserInput{
		Role: &cashier,
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateUser_CannotDeactivateSelf(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	admin := seedUser(t, repo, "admin", "secret123", true)

	inactive := false
	_, err := svc.UpdateUser(context.Background(), admin.ID, admin.ID, &UpdateUserInput{
		IsActive: &inactive,
	})

	require.Error(t, err)
}

func TestUpdateUser_OtherAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	admin := seedUser(t, repo, "admin", "secret123", true)
	staff := seedUser(t, repo, "priya", "secret123", true)

	inactive := false
	updated, err := svc.UpdateUser(context.Background(), admin.ID, staff.ID, &UpdateUserInput{
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUpdateUser_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	admin := seedUser(t, repo, "admin", "secret123", true)
	staff := seedUser(t, repo, "priya", "secret123", true)

	taken := "admin"
	_, err := svc.UpdateUser(context.Background(), admin.ID, staff.ID, &UpdateUserInput{
		Username: &taken,
	})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeleteUser_RejectsSelf(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	admin := seedUser(t, repo, "admin", "secret123", true)

	err := svc.DeleteUser(context.Background(), admin.ID, admin.ID)

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	admin := seedUser(t, repo, "admin", "secret123", true)

	err := svc.DeleteUser(context.Background(), admin.ID, uuid.New())

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
