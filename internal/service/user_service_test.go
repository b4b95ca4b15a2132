package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/steadyapp/steady/internal/error_values"
	"github.com/steadyapp/steady/internal/repository"
	"github.com/steadyapp/steady/internal/service"
	"github.com/steadyapp/steady/pkg/entity"
	"github.com/steadyapp/steady/pkg/password"
	"github.com/stretchr/testify/assert"
)

func TestUserServiceIntegrational(t *testing.T) {
	dbCfg := setupTestDB(t)
	repo := repository.NewUsersRepo(dbCfg)
	us := service.NewUserService(repo)
	ctx := context.Background()
	username := "test_user"
	pass := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: pass,
		})
		assert.NoError(t, err)
		assert.Equal(t, username, user.Name)
		assert.True(t, password.Verify(pass, user.PasswordHash, user.PasswordSalt))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: "another_password",
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("error registering invalid username", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     "1_starts_with_digit",
			Password: pass,
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, pass)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("login with wrong password", func(t *testing.T) {
		_, err := us.Login(ctx, username, "wrong_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "nobody_here", pass)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
