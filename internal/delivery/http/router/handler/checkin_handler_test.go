package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "passfit/internal/delivery/context"
	"passfit/internal/delivery/http/validator"
	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	mockUsecase "passfit/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCheckInTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserID(c, "user-1")

	return c, rec
}

func TestCheckInHandler_CheckIn(t *testing.T) {
	checkInUC := mockUsecase.NewMockCheckInUsecase(t)
	checkInUC.EXPECT().
		CheckIn(mock.Anything, "user-1", "studio-1").
		Return(&entity.CheckIn{
			ID:          "checkin-1",
			UserID:      "user-1",
			StudioID:    "studio-1",
			CheckinTime: time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC),
		}, nil).
		Once()

	h := NewCheckInHandler(CheckInHandlerParams{CheckInUC: checkInUC, Logger: discardLogger()})

	c, rec := newCheckInTestContext(t, http.MethodPost, "/checkins", `{"studio_id":"studio-1"}`)
	require.NoError(t, h.CheckIn(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"checkin-1"`)
}

func TestCheckInHandler_CheckIn_MissingStudioID(t *testing.T) {
	checkInUC := mockUsecase.NewMockCheckInUsecase(t)

	h := NewCheckInHandler(CheckInHandlerParams{CheckInUC: checkInUC, Logger: discardLogger()})

	c, rec := newCheckInTestContext(t, http.MethodPost, "/checkins", `{}`)
	require.NoError(t, h.CheckIn(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckInHandler_CheckIn_AlreadyCheckedIn(t *testing.T) {
	checkInUC := mockUsecase.NewMockCheckInUsecase(t)
	checkInUC.EXPECT().
		CheckIn(mock.Anything, "user-1", "studio-1").
		Return(nil, domainerrors.ErrAlreadyCheckedIn).
		Once()

	h := NewCheckInHandler(CheckInHandlerParams{CheckInUC: checkInUC, Logger: discardLogger()})

	c, rec := newCheckInTestContext(t, http.MethodPost, "/checkins", `{"studio_id":"studio-1"}`)
	require.NoError(t, h.CheckIn(c))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])

	errInfo, ok := resp["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ALREADY_CHECKED_IN", errInfo["code"])
}

func TestCheckInHandler_ScanCode(t *testing.T) {
	checkInUC := mockUsecase.NewMockCheckInUsecase(t)
	checkInUC.EXPECT().
		ProcessCheckInCode(mock.Anything, "user-1", `{"type":"checkin","studioId":"studio-1"}`).
		Return(&entity.CheckIn{ID: "checkin-2", UserID: "user-1", StudioID: "studio-1"}, nil).
		Once()

	h := NewCheckInHandler(CheckInHandlerParams{CheckInUC: checkInUC, Logger: discardLogger()})

	body := `{"payload":"{\"type\":\"checkin\",\"studioId\":\"studio-1\"}"}`
	c, rec := newCheckInTestContext(t, http.MethodPost, "/checkins/scan", body)
	require.NoError(t, h.ScanCode(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCheckInHandler_ScanCode_InvalidPayload(t *testing.T) {
	checkInUC := mockUsecase.NewMockCheckInUsecase(t)
	checkInUC.EXPECT().
		ProcessCheckInCode(mock.Anything, "user-1", "not-a-code").
		Return(nil, domainerrors.ErrInvalidCheckInCode).
		Once()

	h := NewCheckInHandler(CheckInHandlerParams{CheckInUC: checkInUC, Logger: discardLogger()})

	c, rec := newCheckInTestContext(t, http.MethodPost, "/checkins/scan", `{"payload":"not-a-code"}`)
	require.NoError(t, h.ScanCode(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckInHandler_GetTodayStatus(t *testing.T) {
	checkInUC := mockUsecase.NewMockCheckInUsecase(t)
	checkInUC.EXPECT().
		HasCheckedInToday(mock.Anything, "user-1", "studio-1").
		Return(true, nil).
		Once()

	h := NewCheckInHandler(CheckInHandlerParams{CheckInUC: checkInUC, Logger: discardLogger()})

	c, rec := newCheckInTestContext(t, http.MethodGet, "/checkins/today?studio_id=studio-1", "")
	require.NoError(t, h.GetTodayStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"checked_in":true`)
}

func TestCheckInHandler_GetTodayStatus_MissingStudioID(t *testing.T) {
	checkInUC := mockUsecase.NewMockCheckInUsecase(t)

	h := NewCheckInHandler(CheckInHandlerParams{CheckInUC: checkInUC, Logger: discardLogger()})

	c, rec := newCheckInTestContext(t, http.MethodGet, "/checkins/today", "")
	require.NoError(t, h.GetTodayStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckInHandler_GetHistory(t *testing.T) {
	checkInUC := mockUsecase.NewMockCheckInUsecase(t)
	checkInUC.EXPECT().
		GetHistory(mock.Anything, "user-1", 10).
		Return([]*entity.CheckIn{{ID: "checkin-1"}}, nil).
		Once()

	h := NewCheckInHandler(CheckInHandlerParams{CheckInUC: checkInUC, Logger: discardLogger()})

	c, rec := newCheckInTestContext(t, http.MethodGet, "/checkins?limit=10", "")
	require.NoError(t, h.GetHistory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckInHandler_GetHistory_InvalidLimit(t *testing.T) {
	checkInUC := mockUsecase.NewMockCheckInUsecase(t)

	h := NewCheckInHandler(CheckInHandlerParams{CheckInUC: checkInUC, Logger: discardLogger()})

	c, rec := newCheckInTestContext(t, http.MethodGet, "/checkins?limit=abc", "")
	require.NoError(t, h.GetHistory(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckInHandler_GetStats(t *testing.T) {
	checkInUC := mockUsecase.NewMockCheckInUsecase(t)
	checkInUC.EXPECT().
		GetStats(mock.Anything, "user-1").
		Return(&entity.CheckInStats{Total: 7, DistinctStudios: 3}, nil).
		Once()

	h := NewCheckInHandler(CheckInHandlerParams{CheckInUC: checkInUC, Logger: discardLogger()})

	c, rec := newCheckInTestContext(t, http.MethodGet, "/checkins/stats", "")
	require.NoError(t, h.GetStats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":7`)
}
