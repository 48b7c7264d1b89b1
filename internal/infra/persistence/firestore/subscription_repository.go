package firestore

import (
	"context"
	"time"

	"passfit/internal/domain/entity"
	"passfit/internal/domain/repository"
	"passfit/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	client *firestore.Client
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(client *firestore.Client) repository.SubscriptionRepository {
	return &subscriptionRepository{
		client: client,
	}
}

// CreateSubscription persists a new subscription record.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := model.FromSubscriptionDomain(subscription)

	var ref *firestore.DocumentRef
	var err error
	if subscription.ID != "" {
		ref = repo.client.Collection(collSubscriptions).Doc(subscription.ID)
		_, err = ref.Create(ctx, subscriptionM)
	} else {
		ref, _, err = repo.client.Collection(collSubscriptions).Add(ctx, subscriptionM)
	}
	if err != nil {
		return errors.Wrap(err, "failed to create subscription")
	}

	subscription.ID = ref.ID

	return nil
}

// FindSubscriptionByID retrieves a subscription by its document ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id string) (*entity.Subscription, error) {
	snap, err := repo.client.Collection(collSubscriptions).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return repo.decode(snap)
}

// FindLatestSubscriptionByUser retrieves the user's most recently started
// subscription.
func (repo *subscriptionRepository) FindLatestSubscriptionByUser(ctx context.Context, userID string) (*entity.Subscription, error) {
	iter := repo.client.Collection(collSubscriptions).
		Where("userId", "==", userID).
		OrderBy("startedAt", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest subscription by user")
	}

	return repo.decode(snap)
}

// FindSubscriptionsByUser retrieves all subscriptions for a user, newest first.
func (repo *subscriptionRepository) FindSubscriptionsByUser(ctx context.Context, userID string) ([]*entity.Subscription, error) {
	iter := repo.client.Collection(collSubscriptions).
		Where("userId", "==", userID).
		OrderBy("startedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var subscriptions []*entity.Subscription
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate subscriptions")
		}

		subscription, err := repo.decode(snap)
		if err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, subscription)
	}

	return subscriptions, nil
}

// UpdateSubscriptionStatus transitions the lifecycle status of a subscription.
func (repo *subscriptionRepository) UpdateSubscriptionStatus(ctx context.Context, id string, subscriptionStatus entity.SubscriptionStatus) error {
	_, err := repo.client.Collection(collSubscriptions).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(subscriptionStatus)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to update subscription status")
	}

	return nil
}

// ExtendSubscription moves the expiry forward and forces the status to active.
func (repo *subscriptionRepository) ExtendSubscription(ctx context.Context, id string, expiresAt time.Time) error {
	_, err := repo.client.Collection(collSubscriptions).Doc(id).Update(ctx, []firestore.Update{
		{Path: "expiresAt", Value: expiresAt},
		{Path: "status", Value: string(entity.SubscriptionActive)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to extend subscription")
	}

	return nil
}

// decode converts a subscription snapshot to the domain entity.
func (repo *subscriptionRepository) decode(snap *firestore.DocumentSnapshot) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel
	if err := snap.DataTo(&subscriptionM); err != nil {
		return nil, errors.Wrap(err, "failed to decode subscription document")
	}

	return model.ToSubscriptionDomain(snap.Ref.ID, &subscriptionM), nil
}
