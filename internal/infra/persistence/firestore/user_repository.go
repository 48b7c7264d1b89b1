package firestore

import (
	"context"
	"time"

	"passfit/internal/domain/entity"
	"passfit/internal/domain/repository"
	"passfit/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

// FindUserByID retrieves a user by the auth provider's stable ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := repo.client.Collection(collUsers).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	var userM model.UserModel
	if err := snap.DataTo(&userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return model.ToUserDomain(snap.Ref.ID, &userM), nil
}

// CreateUser persists a new user document keyed by the auth provider ID.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	if _, err := repo.client.Collection(collUsers).Doc(user.ID).Create(ctx, userM); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// UpdateSubscriptionStatus writes the denormalized membership status.
func (repo *userRepository) UpdateSubscriptionStatus(ctx context.Context, id string, subscriptionStatus entity.UserSubscriptionStatus) error {
	_, err := repo.client.Collection(collUsers).Doc(id).Update(ctx, []firestore.Update{
		{Path: "subscriptionStatus", Value: string(subscriptionStatus)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user subscription status")
	}

	return nil
}

// AddFCMToken registers a device push token on the user document.
func (repo *userRepository) AddFCMToken(ctx context.Context, id, token string) error {
	_, err := repo.client.Collection(collUsers).Doc(id).Update(ctx, []firestore.Update{
		{Path: "fcmTokens", Value: firestore.ArrayUnion(token)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to add FCM token")
	}

	return nil
}

// RemoveFCMToken drops a device push token the provider rejected.
func (repo *userRepository) RemoveFCMToken(ctx context.Context, id, token string) error {
	_, err := repo.client.Collection(collUsers).Doc(id).Update(ctx, []firestore.Update{
		{Path: "fcmTokens", Value: firestore.ArrayRemove(token)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to remove FCM token")
	}

	return nil
}
