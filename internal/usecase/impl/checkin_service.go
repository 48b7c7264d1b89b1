package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"passfit/config"
	"passfit/internal/domain/constants"
	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/domain/repository"
	"passfit/internal/domain/service"
	"passfit/internal/infra/cache"
	"passfit/internal/usecase"
	"passfit/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkInService struct {
	checkInRepo repository.CheckInRepository
	studioRepo  repository.StudioRepository
	codeService service.CheckInCodeService
	cacheStore  *cache.Store
	config      *config.Config
	logger      *slog.Logger
	now         func() time.Time
}

// CheckInServiceParams holds dependencies for CheckInService, injected by Fx.
type CheckInServiceParams struct {
	fx.In

	CheckInRepo repository.CheckInRepository
	StudioRepo  repository.StudioRepository
	CodeService service.CheckInCodeService
	CacheStore  *cache.Store
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckInService creates a new check-in service instance
func NewCheckInService(params CheckInServiceParams) usecase.CheckInUsecase {
	return &checkInService{
		checkInRepo: params.CheckInRepo,
		studioRepo:  params.StudioRepo,
		codeService: params.CodeService,
		cacheStore:  params.CacheStore,
		config:      params.Config,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// CheckIn records a visit, enforcing at most one check-in per user, studio
// and local calendar day.
func (s *checkInService) CheckIn(ctx context.Context, userID, studioID string) (*entity.CheckIn, error) {
	studio, err := s.studioRepo.FindStudioByID(ctx, studioID)
	if err != nil {
		if errors.Is(err, repository.ErrStudioNotFound) {
			return nil, domainerrors.ErrStudioNotFound
		}

		return nil, errors.Wrap(err, "failed to load studio")
	}
	if !studio.IsActive {
		return nil, domainerrors.ErrStudioInactive
	}

	now := s.now()
	if s.cachedToday(userID, studioID, now) {
		return nil, domainerrors.ErrAlreadyCheckedIn
	}

	from, to := util.DayWindow(now)

	// Query-then-append. The ledger has no unique constraint, so two
	// requests racing through this window can both land; the duplicate is
	// filtered on read and accepted as a known trade-off.
	existing, err := s.checkInRepo.FindCheckInsInRange(ctx, userID, studioID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query today's check-ins")
	}
	if len(existing) > 0 {
		return nil, domainerrors.ErrAlreadyCheckedIn
	}

	checkIn := &entity.CheckIn{
		ID:          uuid.New().String(),
		UserID:      userID,
		StudioID:    studioID,
		CheckinTime: now,
	}

	// Optimistic cache write before the store append so readers see
	// today's visit immediately. Rolled back if the append fails.
	s.cacheStore.Set(checkInCacheKey(userID, studioID, now), checkIn)

	if err := s.checkInRepo.CreateCheckIn(ctx, checkIn); err != nil {
		s.cacheStore.Invalidate(checkInCacheKey(userID, studioID, now))

		return nil, errors.Wrap(err, "failed to append check-in")
	}

	s.logger.Info("check-in recorded",
		slog.String("user_id", userID),
		slog.String("studio_id", studioID),
	)

	return checkIn, nil
}

// HasCheckedInToday reports whether the user already visited the studio
// today. The optimistic cache entry answers first so the result flips to
// true the moment a check-in is accepted; a ledger hit backfills the cache
// so repeat reads stay off the store.
func (s *checkInService) HasCheckedInToday(ctx context.Context, userID, studioID string) (bool, error) {
	now := s.now()
	if s.cachedToday(userID, studioID, now) {
		return true, nil
	}

	from, to := util.DayWindow(now)
	existing, err := s.checkInRepo.FindCheckInsInRange(ctx, userID, studioID, from, to)
	if err != nil {
		return false, errors.Wrap(err, "failed to query today's check-ins")
	}
	if len(existing) == 0 {
		return false, nil
	}

	s.cacheStore.Set(checkInCacheKey(userID, studioID, now), existing[0])

	return true, nil
}

// cachedToday reports whether the cache already holds today's visit. The
// deleted sentinel counts as no visit.
func (s *checkInService) cachedToday(userID, studioID string, now time.Time) bool {
	entry, ok := s.cacheStore.Get(checkInCacheKey(userID, studioID, now))
	if !ok {
		return false
	}
	_, deleted := entry.Value.(cache.Deleted)

	return !deleted
}

// ProcessCheckInCode decodes a scanned QR payload and records the check-in.
func (s *checkInService) ProcessCheckInCode(ctx context.Context, userID, payload string) (*entity.CheckIn, error) {
	studioID, err := s.codeService.ParseCheckInCode(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidCheckInCode
	}

	return s.CheckIn(ctx, userID, studioID)
}

// GenerateStudioCode renders the studio's check-in QR code as PNG.
func (s *checkInService) GenerateStudioCode(ctx context.Context, studioID string) ([]byte, error) {
	if _, err := s.studioRepo.FindStudioByID(ctx, studioID); err != nil {
		if errors.Is(err, repository.ErrStudioNotFound) {
			return nil, domainerrors.ErrStudioNotFound
		}

		return nil, errors.Wrap(err, "failed to load studio")
	}

	png, err := s.codeService.GenerateCheckInCode(studioID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in code")
	}

	return png, nil
}

// GetHistory returns the user's most recent check-ins, newest first.
func (s *checkInService) GetHistory(ctx context.Context, userID string, limit int) ([]*entity.CheckIn, error) {
	if limit <= 0 {
		limit = s.historyPageSize()
	}

	checkIns, err := s.checkInRepo.FindRecentCheckIns(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load check-in history")
	}

	return checkIns, nil
}

// GetStats derives visit statistics from the user's recent check-ins. One
// ledger record per duplicate pair may exist (the accepted append race), so
// the derivation deduplicates per studio and local day before counting.
func (s *checkInService) GetStats(ctx context.Context, userID string) (*entity.CheckInStats, error) {
	checkIns, err := s.checkInRepo.FindRecentCheckIns(ctx, userID, s.statsWindow())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load check-ins for stats")
	}

	now := s.now()
	weekStart := util.StartOfWeek(now)
	monthStart := util.StartOfMonth(now)

	stats := &entity.CheckInStats{}
	seen := make(map[string]bool)
	visitsPerStudio := make(map[string]int)

	for _, checkIn := range checkIns {
		dayKey := checkIn.StudioID + ":" + util.LocalDayKey(checkIn.CheckinTime)
		if seen[dayKey] {
			continue
		}
		seen[dayKey] = true

		stats.Total++
		visitsPerStudio[checkIn.StudioID]++
		if !checkIn.CheckinTime.Before(monthStart) {
			stats.ThisMonth++
		}
		if !checkIn.CheckinTime.Before(weekStart) {
			stats.ThisWeek++
		}
	}

	stats.DistinctStudios = len(visitsPerStudio)
	most := 0
	for studioID, visits := range visitsPerStudio {
		if visits > most || (visits == most && studioID < stats.MostVisitedID) {
			most = visits
			stats.MostVisitedID = studioID
		}
	}

	return stats, nil
}

func (s *checkInService) statsWindow() int {
	if s.config != nil && s.config.CheckIn != nil && s.config.CheckIn.StatsWindow > 0 {
		return s.config.CheckIn.StatsWindow
	}

	return 500
}

func (s *checkInService) historyPageSize() int {
	if s.config != nil && s.config.CheckIn != nil && s.config.CheckIn.HistoryPageSize > 0 {
		return s.config.CheckIn.HistoryPageSize
	}

	return 50
}

// checkInCacheKey keys today's visit per user, studio and local day.
func checkInCacheKey(userID, studioID string, t time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", constants.CacheKeyCheckInPrefix, userID, studioID, util.LocalDayKey(t))
}
