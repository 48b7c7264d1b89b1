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
)

// checkInRepository implements the repository.CheckInRepository interface.
// The store offers no conditional write keyed on (user, studio, day), so
// uniqueness is enforced by the ledger's query-then-append protocol, not here.
type checkInRepository struct {
	client *firestore.Client
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(client *firestore.Client) repository.CheckInRepository {
	return &checkInRepository{
		client: client,
	}
}

// CreateCheckIn appends a new check-in record.
func (repo *checkInRepository) CreateCheckIn(ctx context.Context, checkIn *entity.CheckIn) error {
	checkInM := model.FromCheckInDomain(checkIn)

	var ref *firestore.DocumentRef
	var err error
	if checkIn.ID != "" {
		ref = repo.client.Collection(collCheckIns).Doc(checkIn.ID)
		_, err = ref.Create(ctx, checkInM)
	} else {
		ref, _, err = repo.client.Collection(collCheckIns).Add(ctx, checkInM)
	}
	if err != nil {
		return errors.Wrap(err, "failed to create check-in")
	}

	checkIn.ID = ref.ID

	return nil
}

// FindCheckInsInRange retrieves a user's check-ins for one studio with
// checkinTime in [from, to).
func (repo *checkInRepository) FindCheckInsInRange(ctx context.Context, userID, studioID string, from, to time.Time) ([]*entity.CheckIn, error) {
	iter := repo.client.Collection(collCheckIns).
		Where("userId", "==", userID).
		Where("studioId", "==", studioID).
		Where("checkinTime", ">=", from).
		Where("checkinTime", "<", to).
		Documents(ctx)
	defer iter.Stop()

	return repo.collect(iter)
}

// FindRecentCheckIns retrieves a user's most recent check-ins, newest first.
func (repo *checkInRepository) FindRecentCheckIns(ctx context.Context, userID string, limit int) ([]*entity.CheckIn, error) {
	iter := repo.client.Collection(collCheckIns).
		Where("userId", "==", userID).
		OrderBy("checkinTime", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	return repo.collect(iter)
}

// collect drains a check-in query iterator into domain entities.
func (repo *checkInRepository) collect(iter *firestore.DocumentIterator) ([]*entity.CheckIn, error) {
	var checkIns []*entity.CheckIn
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate check-ins")
		}

		var checkInM model.CheckInModel
		if err := snap.DataTo(&checkInM); err != nil {
			return nil, errors.Wrap(err, "failed to decode check-in document")
		}
		checkIns = append(checkIns, model.ToCheckInDomain(snap.Ref.ID, &checkInM))
	}

	return checkIns, nil
}
