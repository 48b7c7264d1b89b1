package handler

import (
	"log/slog"
	"net/http"

	"passfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncHandler exposes control endpoints over the realtime cache sync: which
// documents are being mirrored into the cache and on whose behalf.
type SyncHandler struct {
	logger *slog.Logger
	syncUC usecase.SyncUsecase
}

// SyncHandlerParams holds dependencies for the SyncHandler
type SyncHandlerParams struct {
	fx.In

	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// NewSyncHandler creates a new sync control handler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		logger: params.Logger,
		syncUC: params.SyncUC,
	}
}

// StartSyncRequest represents the request body for starting a document watch
type StartSyncRequest struct {
	ConsumerID string `json:"consumer_id"`
	Path       string `json:"path"`
	CacheKey   string `json:"cache_key"`
}

// StopSyncRequest represents the request body for stopping a document watch
type StopSyncRequest struct {
	ConsumerID string `json:"consumer_id"`
	CacheKey   string `json:"cache_key"`
}

// StartSync begins mirroring a document into the cache for a consumer.
// Re-subscribing the same consumer and key replaces the previous watch.
func (h *SyncHandler) StartSync(c echo.Context) error {
	var req StartSyncRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid sync request"})
	}

	if req.ConsumerID == "" || req.Path == "" || req.CacheKey == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "consumer_id, path and cache_key are required"})
	}

	if err := h.syncUC.SyncDocument(c.Request().Context(), req.ConsumerID, req.Path, req.CacheKey); err != nil {
		h.logger.Error("[Worker] Failed to start document sync",
			slog.String("consumer_id", req.ConsumerID),
			slog.String("path", req.Path),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "failed to start sync"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "syncing"})
}

// StopSync cancels one consumer's watch on one cache key.
func (h *SyncHandler) StopSync(c echo.Context) error {
	var req StopSyncRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid sync request"})
	}

	if req.ConsumerID == "" || req.CacheKey == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "consumer_id and cache_key are required"})
	}

	h.syncUC.StopSync(req.ConsumerID, req.CacheKey)

	return c.JSON(http.StatusOK, map[string]string{"status": "stopped"})
}

// StopConsumer cancels every watch registered by a consumer.
func (h *SyncHandler) StopConsumer(c echo.Context) error {
	consumerID := c.Param("id")
	if consumerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "consumer ID is required"})
	}

	h.syncUC.StopConsumer(consumerID)

	return c.JSON(http.StatusOK, map[string]string{"status": "stopped"})
}
