package impl

import (
	"context"
	"testing"
	"time"

	"passfit/config"
	"passfit/internal/domain/constants"
	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/domain/repository"
	"passfit/internal/infra/cache"
	mockRepo "passfit/internal/mocks/repository"
	mockSvc "passfit/internal/mocks/service"
	"passfit/internal/usecase"
	"passfit/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkInFixture struct {
	checkInRepo *mockRepo.MockCheckInRepository
	studioRepo  *mockRepo.MockStudioRepository
	codeService *mockSvc.MockCheckInCodeService
	cacheStore  *cache.Store
	service     usecase.CheckInUsecase
}

func newCheckInFixture(t *testing.T) *checkInFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.CheckIn = &config.CheckInConfig{StatsWindow: 500, HistoryPageSize: 50}

	f := &checkInFixture{
		checkInRepo: mockRepo.NewMockCheckInRepository(t),
		studioRepo:  mockRepo.NewMockStudioRepository(t),
		codeService: mockSvc.NewMockCheckInCodeService(t),
		cacheStore:  cache.NewStore(),
	}
	f.service = NewCheckInService(CheckInServiceParams{
		CheckInRepo: f.checkInRepo,
		StudioRepo:  f.studioRepo,
		CodeService: f.codeService,
		CacheStore:  f.cacheStore,
		Config:      cfg,
		Logger:      discardLogger(),
	})

	return f
}

func activeStudio(id string) *entity.Studio {
	return &entity.Studio{ID: id, Name: "Studio " + id, IsActive: true}
}

func TestCheckInService_CheckIn_FirstOfDay(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "studio-1").
		Return(activeStudio("studio-1"), nil)
	f.checkInRepo.EXPECT().
		FindCheckInsInRange(ctx, "user-1", "studio-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, nil)
	f.checkInRepo.EXPECT().
		CreateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	checkIn, err := f.service.CheckIn(ctx, "user-1", "studio-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", checkIn.UserID)
	assert.Equal(t, "studio-1", checkIn.StudioID)
	assert.NotEmpty(t, checkIn.ID)
	assert.False(t, checkIn.CheckinTime.IsZero())

	// The optimistic cache entry holds today's visit.
	key := constants.CacheKeyCheckInPrefix + "user-1:studio-1:" + util.LocalDayKey(checkIn.CheckinTime)
	entry, ok := f.cacheStore.Get(key)
	require.True(t, ok)
	assert.Equal(t, checkIn, entry.Value)
}

func TestCheckInService_CheckIn_SecondSameDayRejected(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	existing := &entity.CheckIn{
		ID:          "existing",
		UserID:      "user-1",
		StudioID:    "studio-1",
		CheckinTime: time.Now(),
	}

	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "studio-1").
		Return(activeStudio("studio-1"), nil)
	f.checkInRepo.EXPECT().
		FindCheckInsInRange(ctx, "user-1", "studio-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]*entity.CheckIn{existing}, nil)

	_, err := f.service.CheckIn(ctx, "user-1", "studio-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyCheckedIn)
}

func TestCheckInService_CheckIn_QueriesLocalDayWindow(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "studio-1").
		Return(activeStudio("studio-1"), nil)
	f.checkInRepo.EXPECT().
		FindCheckInsInRange(ctx, "user-1", "studio-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, _, _ string, from, to time.Time) ([]*entity.CheckIn, error) {
			wantFrom, wantTo := util.DayWindow(time.Now())
			assert.True(t, from.Equal(wantFrom))
			assert.True(t, to.Equal(wantTo))

			return nil, nil
		})
	f.checkInRepo.EXPECT().
		CreateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	_, err := f.service.CheckIn(ctx, "user-1", "studio-1")
	require.NoError(t, err)
}

func TestCheckInService_CheckIn_InactiveStudio(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	studio := activeStudio("studio-1")
	studio.IsActive = false
	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "studio-1").
		Return(studio, nil)

	_, err := f.service.CheckIn(ctx, "user-1", "studio-1")
	assert.ErrorIs(t, err, domainerrors.ErrStudioInactive)
}

func TestCheckInService_CheckIn_StudioNotFound(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "missing").
		Return(nil, repository.ErrStudioNotFound)

	_, err := f.service.CheckIn(ctx, "user-1", "missing")
	assert.ErrorIs(t, err, domainerrors.ErrStudioNotFound)
}

func TestCheckInService_CheckIn_AppendFailureRollsBackCache(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "studio-1").
		Return(activeStudio("studio-1"), nil)
	f.checkInRepo.EXPECT().
		FindCheckInsInRange(ctx, "user-1", "studio-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, nil)
	f.checkInRepo.EXPECT().
		CreateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(errors.New("write failed"))

	_, err := f.service.CheckIn(ctx, "user-1", "studio-1")
	require.Error(t, err)

	key := constants.CacheKeyCheckInPrefix + "user-1:studio-1:" + util.LocalDayKey(time.Now())
	_, ok := f.cacheStore.Get(key)
	assert.False(t, ok)
}

func TestCheckInService_CheckIn_CachedVisitRejectsWithoutLedgerRead(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "studio-1").
		Return(activeStudio("studio-1"), nil)

	key := constants.CacheKeyCheckInPrefix + "user-1:studio-1:" + util.LocalDayKey(time.Now())
	f.cacheStore.Set(key, &entity.CheckIn{ID: "cached", UserID: "user-1", StudioID: "studio-1"})

	// The cached visit short-circuits; no day-window query runs.
	_, err := f.service.CheckIn(ctx, "user-1", "studio-1")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyCheckedIn)
	f.checkInRepo.AssertNotCalled(t, "FindCheckInsInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckInService_HasCheckedInToday_FalseWithoutVisit(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.checkInRepo.EXPECT().
		FindCheckInsInRange(ctx, "user-1", "studio-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	checkedIn, err := f.service.HasCheckedInToday(ctx, "user-1", "studio-1")
	require.NoError(t, err)
	assert.False(t, checkedIn)
}

func TestCheckInService_HasCheckedInToday_TrueRightAfterCheckIn(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "studio-1").
		Return(activeStudio("studio-1"), nil)
	f.checkInRepo.EXPECT().
		FindCheckInsInRange(ctx, "user-1", "studio-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, nil).
		Once()
	f.checkInRepo.EXPECT().
		CreateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	_, err := f.service.CheckIn(ctx, "user-1", "studio-1")
	require.NoError(t, err)

	// The answer comes from the optimistic cache entry; the single
	// permitted day-window query above was consumed by CheckIn itself.
	checkedIn, err := f.service.HasCheckedInToday(ctx, "user-1", "studio-1")
	require.NoError(t, err)
	assert.True(t, checkedIn)
}

func TestCheckInService_HasCheckedInToday_LedgerHitBackfillsCache(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	existing := &entity.CheckIn{
		ID:          "existing",
		UserID:      "user-1",
		StudioID:    "studio-1",
		CheckinTime: time.Now(),
	}
	f.checkInRepo.EXPECT().
		FindCheckInsInRange(ctx, "user-1", "studio-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]*entity.CheckIn{existing}, nil).
		Once()

	checkedIn, err := f.service.HasCheckedInToday(ctx, "user-1", "studio-1")
	require.NoError(t, err)
	assert.True(t, checkedIn)

	// Second ask is served from the backfilled cache entry.
	checkedIn, err = f.service.HasCheckedInToday(ctx, "user-1", "studio-1")
	require.NoError(t, err)
	assert.True(t, checkedIn)
}

func TestCheckInService_HasCheckedInToday_RevertsNextDay(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	day := time.Date(2026, time.March, 10, 18, 30, 0, 0, time.Local)
	f.service.(*checkInService).now = func() time.Time { return day }

	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "studio-1").
		Return(activeStudio("studio-1"), nil)
	f.checkInRepo.EXPECT().
		FindCheckInsInRange(ctx, "user-1", "studio-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, nil).
		Once()
	f.checkInRepo.EXPECT().
		CreateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	_, err := f.service.CheckIn(ctx, "user-1", "studio-1")
	require.NoError(t, err)

	checkedIn, err := f.service.HasCheckedInToday(ctx, "user-1", "studio-1")
	require.NoError(t, err)
	assert.True(t, checkedIn)

	// The day rolls over: yesterday's cache entry no longer matches and
	// the fresh window query finds nothing.
	f.service.(*checkInService).now = func() time.Time { return day.AddDate(0, 0, 1) }
	f.checkInRepo.EXPECT().
		FindCheckInsInRange(ctx, "user-1", "studio-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, nil).
		Once()

	checkedIn, err = f.service.HasCheckedInToday(ctx, "user-1", "studio-1")
	require.NoError(t, err)
	assert.False(t, checkedIn)
}

func TestCheckInService_ProcessCheckInCode(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.codeService.EXPECT().
		ParseCheckInCode(`{"type":"checkin","studioId":"studio-1"}`).
		Return("studio-1", nil)
	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "studio-1").
		Return(activeStudio("studio-1"), nil)
	f.checkInRepo.EXPECT().
		FindCheckInsInRange(ctx, "user-1", "studio-1", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, nil)
	f.checkInRepo.EXPECT().
		CreateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	checkIn, err := f.service.ProcessCheckInCode(ctx, "user-1", `{"type":"checkin","studioId":"studio-1"}`)
	require.NoError(t, err)
	assert.Equal(t, "studio-1", checkIn.StudioID)
}

func TestCheckInService_ProcessCheckInCode_Invalid(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.codeService.EXPECT().
		ParseCheckInCode("garbage").
		Return("", errors.New("invalid payload"))

	_, err := f.service.ProcessCheckInCode(ctx, "user-1", "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCheckInCode)
}

func TestCheckInService_GenerateStudioCode(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.studioRepo.EXPECT().
		FindStudioByID(ctx, "studio-1").
		Return(activeStudio("studio-1"), nil)
	f.codeService.EXPECT().
		GenerateCheckInCode("studio-1").
		Return([]byte{0x89, 0x50}, nil)

	png, err := f.service.GenerateStudioCode(ctx, "studio-1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestCheckInService_GetHistory_DefaultLimit(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	f.checkInRepo.EXPECT().
		FindRecentCheckIns(ctx, "user-1", 50).
		Return([]*entity.CheckIn{}, nil)

	_, err := f.service.GetHistory(ctx, "user-1", 0)
	require.NoError(t, err)
}

func TestCheckInService_GetStats(t *testing.T) {
	f := newCheckInFixture(t)
	ctx := context.Background()

	now := time.Now()
	checkIns := []*entity.CheckIn{
		{ID: "1", UserID: "user-1", StudioID: "studio-1", CheckinTime: now},
		{ID: "2", UserID: "user-1", StudioID: "studio-1", CheckinTime: now.AddDate(0, 0, -35)},
		{ID: "3", UserID: "user-1", StudioID: "studio-2", CheckinTime: now.AddDate(0, 0, -35)},
		// Duplicate pair from the accepted append race: same studio, same
		// local day, counted once.
		{ID: "4", UserID: "user-1", StudioID: "studio-1", CheckinTime: now.Add(-time.Minute)},
	}

	f.checkInRepo.EXPECT().
		FindRecentCheckIns(ctx, "user-1", 500).
		Return(checkIns, nil)

	stats, err := f.service.GetStats(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.ThisMonth)
	assert.Equal(t, 1, stats.ThisWeek)
	assert.Equal(t, 2, stats.DistinctStudios)
	assert.Equal(t, "studio-1", stats.MostVisitedID)
}
