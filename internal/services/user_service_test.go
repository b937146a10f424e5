package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	user, err := svc.Register(ctx, "Seeker@Example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "seeker@example.com", user.Email, "emails are normalized")
	assert.NotEqual(t, "password123", user.PasswordHash)

	got, err := svc.Authenticate(ctx, "seeker@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "seeker@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "seeker@example.com", "different-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, "seeker@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "seeker@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}
