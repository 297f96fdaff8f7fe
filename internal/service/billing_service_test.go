package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/domain"
)

func TestHandleCheckoutCompleted_SetsPro(t *testing.T) {
	users := newFakeUserRepo()
	require.NoError(t, users.Create(context.Background(), &domain.User{ID: "user-1", Email: "buyer@b.co"}))

	svc := NewBillingService(users, zap.NewNop())

	err := svc.HandleCheckoutCompleted(context.Background(), "buyer@b.co")
	require.NoError(t, err)

	user, err := users.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, user.IsPro)
}

func TestHandleCheckoutCompleted_UnknownUserIsAcknowledged(t *testing.T) {
	svc := NewBillingService(newFakeUserRepo(), zap.NewNop())

	// Unknown emails are acknowledged so the provider stops retrying.
	err := svc.HandleCheckoutCompleted(context.Background(), "stranger@b.co")
	assert.NoError(t, err)
}

func TestHandleCheckoutCompleted_EmptyEmailIsAcknowledged(t *testing.T) {
	users := newFakeUserRepo()
	require.NoError(t, users.Create(context.Background(), &domain.User{ID: "user-1", Email: "buyer@b.co"}))

	svc := NewBillingService(users, zap.NewNop())

	require.NoError(t, svc.HandleCheckoutCompleted(context.Background(), ""))

	user, _ := users.GetByID(context.Background(), "user-1")
	assert.False(t, user.IsPro, "no event field may flip another user's flag")
}
