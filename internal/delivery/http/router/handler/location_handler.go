// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "passfit/internal/delivery/context"
	"passfit/internal/delivery/http/response"
	"passfit/internal/domain/entity"
	domainerrors "passfit/internal/domain/errors"
	"passfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocatorUC usecase.LocatorUsecase
	Logger    *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locatorUC usecase.LocatorUsecase
	logger    *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locatorUC: params.LocatorUC,
		logger:    params.Logger,
	}
}

// SelectFallbackRequest represents the request body for selecting a fallback location
type SelectFallbackRequest struct {
	FallbackID string `json:"fallback_id" validate:"required"`
}

// ReportPositionRequest represents the request body for a device position report
type ReportPositionRequest struct {
	Latitude   float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64   `json:"longitude" validate:"min=-180,max=180"`
	Accuracy   float64   `json:"accuracy" validate:"min=0"`
	ReportedAt time.Time `json:"reported_at"`
	Denied     bool      `json:"denied"`
}

// GetLocation handles retrieving the current location state without resolving
func (h *LocationHandler) GetLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	state := h.locatorUC.Current(c.Request().Context(), userID)

	return response.Success(c, http.StatusOK, state, "Location state retrieved successfully")
}

// ResolveLocation handles running a position resolution attempt
func (h *LocationHandler) ResolveLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	state, err := h.locatorUC.Resolve(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Location resolved successfully")
}

// RetryLocation handles retrying position resolution after a denial
func (h *LocationHandler) RetryLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	state, err := h.locatorUC.Retry(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Location retry completed")
}

// SelectFallback handles switching the effective location to a named fallback
func (h *LocationHandler) SelectFallback(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SelectFallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fallback selection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	state, err := h.locatorUC.SelectFallback(c.Request().Context(), userID, req.FallbackID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Fallback location selected")
}

// ListFallbacks handles listing the selectable fallback locations
func (h *LocationHandler) ListFallbacks(c echo.Context) error {
	fallbacks := h.locatorUC.ListFallbacks(c.Request().Context())

	return response.Success(c, http.StatusOK, fallbacks, "Fallback locations retrieved successfully")
}

// ReportPosition handles a device posting its latest coordinate fix or denial
func (h *LocationHandler) ReportPosition(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ReportPositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position report input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	position := &entity.DevicePosition{
		UserID:     userID,
		Point:      entity.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude},
		Accuracy:   req.Accuracy,
		ReportedAt: req.ReportedAt,
		Denied:     req.Denied,
	}

	if err := h.locatorUC.ReportPosition(c.Request().Context(), position); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Position report accepted")
}

// getUserID extracts the authenticated user ID from the context
func getUserID(c echo.Context) (string, error) {
	userID := deliverycontext.GetUserID(c)
	if userID == "" {
		return "", response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated user")
	}

	return userID, nil
}

// handleAppError handles application errors
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
