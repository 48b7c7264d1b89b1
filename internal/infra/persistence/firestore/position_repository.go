package firestore

import (
	"context"

	"passfit/internal/domain/entity"
	"passfit/internal/domain/repository"
	"passfit/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// positionRepository implements the repository.PositionRepository interface.
type positionRepository struct {
	client *firestore.Client
}

// NewPositionRepository is the constructor for positionRepository.
func NewPositionRepository(client *firestore.Client) repository.PositionRepository {
	return &positionRepository{
		client: client,
	}
}

// SavePosition overwrites the user's last reported position.
func (repo *positionRepository) SavePosition(ctx context.Context, position *entity.DevicePosition) error {
	positionM := model.FromDevicePositionDomain(position)

	if _, err := repo.client.Collection(collPositions).Doc(position.UserID).Set(ctx, positionM); err != nil {
		return errors.Wrap(err, "failed to save device position")
	}

	return nil
}

// FindPositionByUser retrieves the user's last reported position.
func (repo *positionRepository) FindPositionByUser(ctx context.Context, userID string) (*entity.DevicePosition, error) {
	snap, err := repo.client.Collection(collPositions).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPositionNotFound
		}

		return nil, errors.Wrap(err, "failed to find device position")
	}

	var positionM model.DevicePositionModel
	if err := snap.DataTo(&positionM); err != nil {
		return nil, errors.Wrap(err, "failed to decode device position document")
	}

	return model.ToDevicePositionDomain(userID, &positionM), nil
}
