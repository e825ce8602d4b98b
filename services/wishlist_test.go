package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ameer12348/wacky-commerce-backend/services"
)

func TestWishlistAdd(t *testing.T) {
	repo := &mockWishlistRepo{}
	svc := services.NewWishlistService(repo, testLogger())

	userID := uuid.New()
	variantID := uuid.New()

	item, err := svc.Add(userID, variantID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, userID, item.UserID)
	assert.Equal(t, variantID, item.ProductVariantID)
}

func TestWishlistAddDuplicateRefused(t *testing.T) {
	repo := &mockWishlistRepo{}
	svc := services.NewWishlistService(repo, testLogger())

	userID := uuid.New()
	variantID := uuid.New()

	_, err := svc.Add(userID, variantID)
	require.NoError(t, err)

	_, err = svc.Add(userID, variantID)
	var conflictErr *services.ConflictError
	require.ErrorAs(t, err, &conflictErr)

	// same variant for a different user is fine
	_, err = svc.Add(uuid.New(), variantID)
	require.NoError(t, err)
}

func TestWishlistClearOnlyAffectsOneUser(t *testing.T) {
	repo := &mockWishlistRepo{}
	svc := services.NewWishlistService(repo, testLogger())

	userID := uuid.New()
	otherID := uuid.New()
	_, err := svc.Add(userID, uuid.New())
	require.NoError(t, err)
	_, err = svc.Add(userID, uuid.New())
	require.NoError(t, err)
	_, err = svc.Add(otherID, uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Clear(userID))

	mine, err := svc.ByUser(userID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	others, err := svc.ByUser(otherID)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestWishlistRemovePair(t *testing.T) {
	repo := &mockWishlistRepo{}
	svc := services.NewWishlistService(repo, testLogger())

	userID := uuid.New()
	variantID := uuid.New()
	_, err := svc.Add(userID, variantID)
	require.NoError(t, err)
	_, err = svc.Add(userID, uuid.New())
	require.NoError(t, err)

	require.NoError(t, svc.Remove(userID, variantID))

	items, err := svc.Item(userID, variantID)
	require.NoError(t, err)
	assert.Empty(t, items)

	remaining, err := svc.ByUser(userID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
