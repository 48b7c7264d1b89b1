package impl

import (
	"context"
	"log/slog"
	"time"

	"passfit/internal/domain/constants"
	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/domain/repository"
	"passfit/internal/domain/service"
	"passfit/internal/infra/cache"
	"passfit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo   repository.UserRepository
	cacheStore *cache.Store
	logger     *slog.Logger
	now        func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	CacheStore *cache.Store
	Logger     *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:   params.UserRepo,
		cacheStore: params.CacheStore,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// GetProfile returns the user's profile, reading through the client cache.
func (s *userService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	cacheKey := constants.CacheKeyUserPrefix + userID

	if entry, ok := s.cacheStore.Get(cacheKey); ok {
		switch value := entry.Value.(type) {
		case cache.Deleted:
			return nil, domainerrors.ErrUserNotFound
		case *entity.User:
			return value, nil
		}
		// A synced raw document or anything else falls through to the
		// store of record.
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	s.cacheStore.Set(cacheKey, user)

	return user, nil
}

// EnsureUser creates the user document on first sign-in.
func (s *userService) EnsureUser(ctx context.Context, auth *service.AuthenticatedUser) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, auth.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	now := s.now()
	user = &entity.User{
		ID:                 auth.UID,
		Email:              auth.Email,
		SubscriptionStatus: entity.UserSubscriptionFree,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	s.logger.Info("user created", slog.String("user_id", user.ID))
	s.cacheStore.Set(constants.CacheKeyUserPrefix+user.ID, user)

	return user, nil
}

// RegisterFCMToken registers a device push token for the user.
func (s *userService) RegisterFCMToken(ctx context.Context, userID, token string) error {
	if token == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("fcm token must not be empty")
	}

	if err := s.userRepo.AddFCMToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to register fcm token")
	}

	// The cached profile no longer matches; drop it so the next read
	// re-derives.
	s.cacheStore.Invalidate(constants.CacheKeyUserPrefix + userID)

	return nil
}
