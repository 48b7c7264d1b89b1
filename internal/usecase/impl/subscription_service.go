package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "passfit/internal/delivery/context"
	"passfit/internal/domain/constants"
	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/domain/repository"
	"passfit/internal/domain/service"
	"passfit/internal/infra/cache"
	"passfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	eventPublisher   service.EventPublisher
	cacheStore       *cache.Store
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	EventPublisher   service.EventPublisher
	CacheStore       *cache.Store
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		eventPublisher:   params.EventPublisher,
		cacheStore:       params.CacheStore,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// CreateSubscription starts a new subscription for the user. Until payment
// is confirmed the subscription stays pending and grants no membership.
func (s *subscriptionService) CreateSubscription(ctx context.Context, userID, planID string, expiresAt time.Time, paymentConfirmed bool) (*entity.Subscription, error) {
	latest, err := s.subscriptionRepo.FindLatestSubscriptionByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to check existing subscription")
	}
	if latest != nil && latest.Status == entity.SubscriptionActive && !latest.IsExpired(s.now()) {
		return nil, domainerrors.ErrSubscriptionAlreadyExists
	}

	status := entity.SubscriptionPending
	if paymentConfirmed {
		status = entity.SubscriptionActive
	}

	now := s.now()
	subscription := &entity.Subscription{
		ID:        uuid.New().String(),
		UserID:    userID,
		PlanID:    planID,
		StartedAt: now,
		ExpiresAt: expiresAt,
		Status:    status,
		UpdatedAt: now,
	}

	if err := s.subscriptionRepo.CreateSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	s.publishEvent(ctx, subscription)

	return subscription, nil
}

// RenewSubscription extends the subscription's expiry, reactivating it.
func (s *subscriptionService) RenewSubscription(ctx context.Context, subscriptionID string, expiresAt time.Time) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to load subscription")
	}

	if err := s.subscriptionRepo.ExtendSubscription(ctx, subscriptionID, expiresAt); err != nil {
		return nil, errors.Wrap(err, "failed to extend subscription")
	}

	subscription.ExpiresAt = expiresAt
	subscription.Status = entity.SubscriptionActive
	subscription.UpdatedAt = s.now()

	s.publishEvent(ctx, subscription)

	return subscription, nil
}

// CancelSubscription transitions the subscription to canceled.
func (s *subscriptionService) CancelSubscription(ctx context.Context, subscriptionID string) error {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to load subscription")
	}

	if err := s.subscriptionRepo.UpdateSubscriptionStatus(ctx, subscriptionID, entity.SubscriptionCanceled); err != nil {
		return errors.Wrap(err, "failed to cancel subscription")
	}

	subscription.Status = entity.SubscriptionCanceled
	s.publishEvent(ctx, subscription)

	return nil
}

// GetUserSubscriptions returns all of the user's subscriptions, newest first.
func (s *subscriptionService) GetUserSubscriptions(ctx context.Context, userID string) ([]*entity.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.FindSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load subscriptions")
	}

	return subscriptions, nil
}

// GetMembershipStatus derives the membership status from the latest
// subscription. The subscription record is the source of truth; the
// denormalized field on the user document is only a projection of it.
func (s *subscriptionService) GetMembershipStatus(ctx context.Context, userID string) (entity.UserSubscriptionStatus, error) {
	latest, err := s.subscriptionRepo.FindLatestSubscriptionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return entity.UserSubscriptionFree, nil
		}

		return "", errors.Wrap(err, "failed to load latest subscription")
	}

	return deriveMembershipStatus(latest, s.now()), nil
}

// ApplyStatusProjection consumes a subscription lifecycle event. The user
// document write is best effort: on failure the cache keys are still
// invalidated so every reader re-derives from the subscription record.
func (s *subscriptionService) ApplyStatusProjection(ctx context.Context, event *service.SubscriptionEvent) error {
	status := projectStatus(event.Status)

	writeErr := s.userRepo.UpdateSubscriptionStatus(ctx, event.UserID, status)
	if writeErr != nil {
		s.logger.Warn("membership status write-through failed",
			slog.String("user_id", event.UserID),
			slog.String("status", string(status)),
			slog.Any("error", writeErr),
		)
	}

	userKey := constants.CacheKeyUserPrefix + event.UserID
	s.cacheStore.Invalidate(
		userKey,
		userKey+constants.CacheKeyStatusSuffix,
		constants.CacheKeySubscriptionsPrefix+event.UserID,
	)

	s.logger.Info("membership status projected",
		slog.String("user_id", event.UserID),
		slog.String("subscription_id", event.SubscriptionID),
		slog.String("status", string(status)),
	)

	return errors.Wrap(writeErr, "failed to write membership status")
}

// publishEvent emits the lifecycle event. Publish failure does not fail the
// mutation; the projection catches up on the next event or read.
func (s *subscriptionService) publishEvent(ctx context.Context, subscription *entity.Subscription) {
	event := &service.SubscriptionEvent{
		SubscriptionID: subscription.ID,
		UserID:         subscription.UserID,
		Status:         subscription.Status,
		RequestID:      deliverycontext.RequestID(ctx),
	}

	if err := s.eventPublisher.PublishSubscriptionEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish subscription event",
			slog.String("subscription_id", subscription.ID),
			slog.Any("error", err),
		)
	}
}

// projectStatus maps a subscription lifecycle status onto the membership
// status shown on the user record.
func projectStatus(status entity.SubscriptionStatus) entity.UserSubscriptionStatus {
	switch status {
	case entity.SubscriptionActive:
		return entity.UserSubscriptionActive
	case entity.SubscriptionExpired:
		return entity.UserSubscriptionExpired
	case entity.SubscriptionCanceled, entity.SubscriptionPending:
		return entity.UserSubscriptionFree
	default:
		return entity.UserSubscriptionFree
	}
}

// deriveMembershipStatus projects the latest subscription, treating an
// active record past its expiry as expired even before the billing job
// transitions it.
func deriveMembershipStatus(latest *entity.Subscription, now time.Time) entity.UserSubscriptionStatus {
	if latest == nil {
		return entity.UserSubscriptionFree
	}
	if latest.Status == entity.SubscriptionActive && latest.IsExpired(now) {
		return entity.UserSubscriptionExpired
	}

	return projectStatus(latest.Status)
}
