package impl

import (
	"context"
	"testing"
	"time"

	"passfit/internal/domain/constants"
	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/domain/repository"
	"passfit/internal/domain/service"
	"passfit/internal/infra/cache"
	mockRepo "passfit/internal/mocks/repository"
	mockSvc "passfit/internal/mocks/service"
	"passfit/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionFixture struct {
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	userRepo         *mockRepo.MockUserRepository
	eventPublisher   *mockSvc.MockEventPublisher
	cacheStore       *cache.Store
	service          usecase.SubscriptionUsecase
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()

	f := &subscriptionFixture{
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		eventPublisher:   mockSvc.NewMockEventPublisher(t),
		cacheStore:       cache.NewStore(),
	}
	f.service = NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: f.subscriptionRepo,
		UserRepo:         f.userRepo,
		EventPublisher:   f.eventPublisher,
		CacheStore:       f.cacheStore,
		Logger:           discardLogger(),
	})

	return f
}

func TestSubscriptionService_CreateSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()
	expiresAt := time.Now().AddDate(0, 1, 0)

	f.subscriptionRepo.EXPECT().
		FindLatestSubscriptionByUser(ctx, "user-1").
		Return(nil, repository.ErrSubscriptionNotFound)
	f.subscriptionRepo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(nil)
	f.eventPublisher.EXPECT().
		PublishSubscriptionEvent(ctx, mock.AnythingOfType("*service.SubscriptionEvent")).
		Return(nil)

	subscription, err := f.service.CreateSubscription(ctx, "user-1", "plan-monthly", expiresAt, true)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subscription.UserID)
	assert.Equal(t, "plan-monthly", subscription.PlanID)
	assert.Equal(t, entity.SubscriptionActive, subscription.Status)
	assert.NotEmpty(t, subscription.ID)
}

func TestSubscriptionService_CreateSubscription_UnconfirmedPaymentStaysPending(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.subscriptionRepo.EXPECT().
		FindLatestSubscriptionByUser(ctx, "user-1").
		Return(nil, repository.ErrSubscriptionNotFound)
	f.subscriptionRepo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(nil)
	f.eventPublisher.EXPECT().
		PublishSubscriptionEvent(ctx, mock.MatchedBy(func(event *service.SubscriptionEvent) bool {
			return event.Status == entity.SubscriptionPending
		})).
		Return(nil)

	subscription, err := f.service.CreateSubscription(ctx, "user-1", "plan-monthly", time.Now().AddDate(0, 1, 0), false)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionPending, subscription.Status)
}

func TestSubscriptionService_CreateSubscription_ActiveExists(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.subscriptionRepo.EXPECT().
		FindLatestSubscriptionByUser(ctx, "user-1").
		Return(&entity.Subscription{
			ID:        "sub-1",
			UserID:    "user-1",
			Status:    entity.SubscriptionActive,
			ExpiresAt: time.Now().AddDate(0, 1, 0),
		}, nil)

	_, err := f.service.CreateSubscription(ctx, "user-1", "plan-monthly", time.Now().AddDate(0, 2, 0), true)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionAlreadyExists)
}

func TestSubscriptionService_CreateSubscription_PublishFailureTolerated(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.subscriptionRepo.EXPECT().
		FindLatestSubscriptionByUser(ctx, "user-1").
		Return(nil, repository.ErrSubscriptionNotFound)
	f.subscriptionRepo.EXPECT().
		CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(nil)
	f.eventPublisher.EXPECT().
		PublishSubscriptionEvent(ctx, mock.AnythingOfType("*service.SubscriptionEvent")).
		Return(errors.New("broker down"))

	subscription, err := f.service.CreateSubscription(ctx, "user-1", "plan-monthly", time.Now().AddDate(0, 1, 0), true)
	require.NoError(t, err)
	assert.NotNil(t, subscription)
}

func TestSubscriptionService_RenewSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()
	newExpiry := time.Now().AddDate(0, 2, 0)

	f.subscriptionRepo.EXPECT().
		FindSubscriptionByID(ctx, "sub-1").
		Return(&entity.Subscription{
			ID:     "sub-1",
			UserID: "user-1",
			Status: entity.SubscriptionExpired,
		}, nil)
	f.subscriptionRepo.EXPECT().
		ExtendSubscription(ctx, "sub-1", newExpiry).
		Return(nil)
	f.eventPublisher.EXPECT().
		PublishSubscriptionEvent(ctx, mock.AnythingOfType("*service.SubscriptionEvent")).
		Return(nil)

	subscription, err := f.service.RenewSubscription(ctx, "sub-1", newExpiry)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionActive, subscription.Status)
	assert.True(t, subscription.ExpiresAt.Equal(newExpiry))
}

func TestSubscriptionService_CancelSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.subscriptionRepo.EXPECT().
		FindSubscriptionByID(ctx, "sub-1").
		Return(&entity.Subscription{ID: "sub-1", UserID: "user-1", Status: entity.SubscriptionActive}, nil)
	f.subscriptionRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, "sub-1", entity.SubscriptionCanceled).
		Return(nil)
	f.eventPublisher.EXPECT().
		PublishSubscriptionEvent(ctx, mock.MatchedBy(func(event *service.SubscriptionEvent) bool {
			return event.Status == entity.SubscriptionCanceled && event.UserID == "user-1"
		})).
		Return(nil)

	err := f.service.CancelSubscription(ctx, "sub-1")
	require.NoError(t, err)
}

func TestSubscriptionService_CancelSubscription_NotFound(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.subscriptionRepo.EXPECT().
		FindSubscriptionByID(ctx, "missing").
		Return(nil, repository.ErrSubscriptionNotFound)

	err := f.service.CancelSubscription(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_GetMembershipStatus(t *testing.T) {
	tests := []struct {
		name   string
		latest *entity.Subscription
		want   entity.UserSubscriptionStatus
	}{
		{
			name: "active maps to active",
			latest: &entity.Subscription{
				Status:    entity.SubscriptionActive,
				ExpiresAt: time.Now().AddDate(0, 1, 0),
			},
			want: entity.UserSubscriptionActive,
		},
		{
			name:   "expired maps to expired",
			latest: &entity.Subscription{Status: entity.SubscriptionExpired},
			want:   entity.UserSubscriptionExpired,
		},
		{
			name:   "canceled maps to free",
			latest: &entity.Subscription{Status: entity.SubscriptionCanceled},
			want:   entity.UserSubscriptionFree,
		},
		{
			name:   "pending maps to free",
			latest: &entity.Subscription{Status: entity.SubscriptionPending},
			want:   entity.UserSubscriptionFree,
		},
		{
			name: "active past expiry maps to expired",
			latest: &entity.Subscription{
				Status:    entity.SubscriptionActive,
				ExpiresAt: time.Now().AddDate(0, 0, -1),
			},
			want: entity.UserSubscriptionExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubscriptionFixture(t)
			ctx := context.Background()

			f.subscriptionRepo.EXPECT().
				FindLatestSubscriptionByUser(ctx, "user-1").
				Return(tt.latest, nil)

			status, err := f.service.GetMembershipStatus(ctx, "user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestSubscriptionService_GetMembershipStatus_NoSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.subscriptionRepo.EXPECT().
		FindLatestSubscriptionByUser(ctx, "user-1").
		Return(nil, repository.ErrSubscriptionNotFound)

	status, err := f.service.GetMembershipStatus(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.UserSubscriptionFree, status)
}

func TestSubscriptionService_ApplyStatusProjection(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	// Seed cache entries that must be invalidated by the projection.
	userKey := constants.CacheKeyUserPrefix + "user-1"
	statusKey := userKey + constants.CacheKeyStatusSuffix
	listKey := constants.CacheKeySubscriptionsPrefix + "user-1"
	f.cacheStore.Set(userKey, "stale")
	f.cacheStore.Set(statusKey, "stale")
	f.cacheStore.Set(listKey, "stale")

	f.userRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, "user-1", entity.UserSubscriptionActive).
		Return(nil)

	err := f.service.ApplyStatusProjection(ctx, &service.SubscriptionEvent{
		SubscriptionID: "sub-1",
		UserID:         "user-1",
		Status:         entity.SubscriptionActive,
	})
	require.NoError(t, err)

	for _, key := range []string{userKey, statusKey, listKey} {
		_, ok := f.cacheStore.Get(key)
		assert.False(t, ok, "expected %s to be invalidated", key)
	}
}

func TestSubscriptionService_ApplyStatusProjection_WriteFailureStillInvalidates(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	userKey := constants.CacheKeyUserPrefix + "user-1"
	f.cacheStore.Set(userKey, "stale")

	f.userRepo.EXPECT().
		UpdateSubscriptionStatus(ctx, "user-1", entity.UserSubscriptionFree).
		Return(errors.New("store down"))

	err := f.service.ApplyStatusProjection(ctx, &service.SubscriptionEvent{
		SubscriptionID: "sub-1",
		UserID:         "user-1",
		Status:         entity.SubscriptionCanceled,
	})
	require.Error(t, err)

	_, ok := f.cacheStore.Get(userKey)
	assert.False(t, ok)
}

func TestProjectStatus(t *testing.T) {
	assert.Equal(t, entity.UserSubscriptionActive, projectStatus(entity.SubscriptionActive))
	assert.Equal(t, entity.UserSubscriptionExpired, projectStatus(entity.SubscriptionExpired))
	assert.Equal(t, entity.UserSubscriptionFree, projectStatus(entity.SubscriptionCanceled))
	assert.Equal(t, entity.UserSubscriptionFree, projectStatus(entity.SubscriptionPending))
	assert.Equal(t, entity.UserSubscriptionFree, projectStatus(entity.SubscriptionStatus("bogus")))
}
