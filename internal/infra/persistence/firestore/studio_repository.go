package firestore

import (
	"context"

	"passfit/internal/domain/entity"
	"passfit/internal/domain/repository"
	"passfit/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// studioRepository implements the repository.StudioRepository interface.
type studioRepository struct {
	client *firestore.Client
}

// NewStudioRepository is the constructor for studioRepository.
func NewStudioRepository(client *firestore.Client) repository.StudioRepository {
	return &studioRepository{
		client: client,
	}
}

// FindStudioByID retrieves a single studio by its document ID.
func (repo *studioRepository) FindStudioByID(ctx context.Context, id string) (*entity.Studio, error) {
	snap, err := repo.client.Collection(collStudios).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrStudioNotFound
		}

		return nil, errors.Wrap(err, "failed to find studio by ID")
	}

	var studioM model.StudioModel
	if err := snap.DataTo(&studioM); err != nil {
		return nil, errors.Wrap(err, "failed to decode studio document")
	}

	return model.ToStudioDomain(snap.Ref.ID, &studioM), nil
}

// FindActiveStudios retrieves the full active catalog ordered by name.
func (repo *studioRepository) FindActiveStudios(ctx context.Context) ([]*entity.Studio, error) {
	iter := repo.client.Collection(collStudios).
		Where("isActive", "==", true).
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var studios []*entity.Studio
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate studios")
		}

		var studioM model.StudioModel
		if err := snap.DataTo(&studioM); err != nil {
			return nil, errors.Wrap(err, "failed to decode studio document")
		}
		studios = append(studios, model.ToStudioDomain(snap.Ref.ID, &studioM))
	}

	return studios, nil
}
