package impl

import (
	"context"
	"testing"

	"passfit/internal/domain/constants"
	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/domain/repository"
	"passfit/internal/domain/service"
	"passfit/internal/infra/cache"
	mockRepo "passfit/internal/mocks/repository"
	"passfit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*mockRepo.MockUserRepository, *cache.Store, usecase.UserUsecase) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	store := cache.NewStore()
	svc := NewUserService(UserServiceParams{
		UserRepo:   userRepo,
		CacheStore: store,
		Logger:     discardLogger(),
	})

	return userRepo, store, svc
}

func TestUserService_GetProfile_CacheMissHitsStoreAndCaches(t *testing.T) {
	userRepo, store, svc := newUserFixture(t)
	ctx := context.Background()

	user := &entity.User{ID: "user-1", Email: "a@b.c", SubscriptionStatus: entity.UserSubscriptionActive}
	userRepo.EXPECT().
		FindUserByID(ctx, "user-1").
		Return(user, nil).
		Once()

	got, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	// Second read is served from the cache; the mock allows one store call.
	got, err = svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	entry, ok := store.Get(constants.CacheKeyUserPrefix + "user-1")
	require.True(t, ok)
	assert.Equal(t, user, entry.Value)
}

func TestUserService_GetProfile_DeletedSentinelMeansGone(t *testing.T) {
	_, store, svc := newUserFixture(t)
	ctx := context.Background()

	store.SetDeleted(constants.CacheKeyUserPrefix + "user-1")

	_, err := svc.GetProfile(ctx, "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	userRepo, _, svc := newUserFixture(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByID(ctx, "missing").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_EnsureUser_CreatesOnFirstSignIn(t *testing.T) {
	userRepo, _, svc := newUserFixture(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByID(ctx, "uid-1").
		Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := svc.EnsureUser(ctx, &service.AuthenticatedUser{UID: "uid-1", Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
	// New users start on the free tier, never an indeterminate status.
	assert.Equal(t, entity.UserSubscriptionFree, user.SubscriptionStatus)
}

func TestUserService_EnsureUser_ExistingUserUntouched(t *testing.T) {
	userRepo, _, svc := newUserFixture(t)
	ctx := context.Background()

	existing := &entity.User{ID: "uid-1", SubscriptionStatus: entity.UserSubscriptionActive}
	userRepo.EXPECT().
		FindUserByID(ctx, "uid-1").
		Return(existing, nil)

	user, err := svc.EnsureUser(ctx, &service.AuthenticatedUser{UID: "uid-1"})
	require.NoError(t, err)
	assert.Equal(t, existing, user)
}

func TestUserService_RegisterFCMToken(t *testing.T) {
	userRepo, store, svc := newUserFixture(t)
	ctx := context.Background()

	store.Set(constants.CacheKeyUserPrefix+"user-1", &entity.User{ID: "user-1"})

	userRepo.EXPECT().
		AddFCMToken(ctx, "user-1", "token-abc").
		Return(nil)

	err := svc.RegisterFCMToken(ctx, "user-1", "token-abc")
	require.NoError(t, err)

	// The stale cached profile is dropped.
	_, ok := store.Get(constants.CacheKeyUserPrefix + "user-1")
	assert.False(t, ok)
}

func TestUserService_RegisterFCMToken_Empty(t *testing.T) {
	_, _, svc := newUserFixture(t)

	err := svc.RegisterFCMToken(context.Background(), "user-1", "")
	assert.Error(t, err)
}
