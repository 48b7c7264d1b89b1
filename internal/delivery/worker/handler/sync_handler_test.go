package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockUsecase "passfit/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSyncHandler(t *testing.T) (*SyncHandler, *mockUsecase.MockSyncUsecase) {
	t.Helper()

	syncUC := mockUsecase.NewMockSyncUsecase(t)
	h := NewSyncHandler(SyncHandlerParams{Logger: discardLogger(), SyncUC: syncUC})

	return h, syncUC
}

func TestSyncHandler_StartSync(t *testing.T) {
	h, syncUC := newSyncHandler(t)

	syncUC.EXPECT().
		SyncDocument(mock.Anything, "client-1", "users/user-1", "user:user-1").
		Return(nil).
		Once()

	e := echo.New()
	body := `{"consumer_id":"client-1","path":"users/user-1","cache_key":"user:user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.StartSync(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSyncHandler_StartSync_MissingFields(t *testing.T) {
	h, _ := newSyncHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader(`{"consumer_id":"client-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.StartSync(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncHandler_StartSync_WatchFailure(t *testing.T) {
	h, syncUC := newSyncHandler(t)

	syncUC.EXPECT().
		SyncDocument(mock.Anything, "client-1", "users/user-1", "user:user-1").
		Return(errors.New("stream unavailable")).
		Once()

	e := echo.New()
	body := `{"consumer_id":"client-1","path":"users/user-1","cache_key":"user:user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.StartSync(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSyncHandler_StopSync(t *testing.T) {
	h, syncUC := newSyncHandler(t)

	syncUC.EXPECT().
		StopSync("client-1", "user:user-1").
		Once()

	e := echo.New()
	body := `{"consumer_id":"client-1","cache_key":"user:user-1"}`
	req := httptest.NewRequest(http.MethodDelete, "/sync", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.StopSync(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSyncHandler_StopConsumer(t *testing.T) {
	h, syncUC := newSyncHandler(t)

	syncUC.EXPECT().
		StopConsumer("client-1").
		Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/sync/consumers/client-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("client-1")

	require.NoError(t, h.StopConsumer(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
