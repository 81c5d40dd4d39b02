package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/app/services"
	"storefront/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testDB(t)
	svc := services.NewAuthService(db)

	user, tokens, err := svc.Register(services.RegisterInput{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	require.NotEmpty(t, tokens.Access)
	require.NotEmpty(t, tokens.Refresh)

	claims, err := auth.ValidateToken(tokens.Access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	logged, tokens, err := svc.Login(services.LoginInput{
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, tokens.Access)
}

func TestRegisterDuplicate(t *testing.T) {
	db := testDB(t)
	svc := services.NewAuthService(db)

	input := services.RegisterInput{Username: "ada", Email: "ada@example.com", Password: "secret123"}
	_, _, err := svc.Register(input)
	require.NoError(t, err)

	_, _, err = svc.Register(input)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	db := testDB(t)
	svc := services.NewAuthService(db)

	_, _, err := svc.Register(services.RegisterInput{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(services.LoginInput{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(services.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAccount(t *testing.T) {
	db := testDB(t)
	svc := services.NewAuthService(db)

	user, _, err := svc.Register(services.RegisterInput{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	account, err := svc.Account(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", account.Username)

	_, err = svc.Account(9999)
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)
}
