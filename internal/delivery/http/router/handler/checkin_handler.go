package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"passfit/internal/delivery/http/response"
	"passfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckInHandlerParams holds dependencies for CheckInHandler, injected by Fx.
type CheckInHandlerParams struct {
	fx.In

	CheckInUC usecase.CheckInUsecase
	Logger    *slog.Logger
}

// CheckInHandler holds dependencies for check-in related handlers
type CheckInHandler struct {
	checkInUC usecase.CheckInUsecase
	logger    *slog.Logger
}

// NewCheckInHandler is the constructor for CheckInHandler
func NewCheckInHandler(params CheckInHandlerParams) *CheckInHandler {
	return &CheckInHandler{
		checkInUC: params.CheckInUC,
		logger:    params.Logger,
	}
}

// CheckInRequest represents the request body for a direct studio check-in
type CheckInRequest struct {
	StudioID string `json:"studio_id" validate:"required"`
}

// ScanCodeRequest represents the request body for a scanned check-in code
type ScanCodeRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// CheckIn handles recording a visit at a studio
func (h *CheckInHandler) CheckIn(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	checkIn, err := h.checkInUC.CheckIn(c.Request().Context(), userID, req.StudioID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, checkIn, "Checked in successfully")
}

// ScanCode handles recording a visit from a scanned QR code payload
func (h *CheckInHandler) ScanCode(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ScanCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	checkIn, err := h.checkInUC.ProcessCheckInCode(c.Request().Context(), userID, req.Payload)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, checkIn, "Checked in successfully")
}

// GetTodayStatus handles reporting whether the user already checked in at a
// studio today
func (h *CheckInHandler) GetTodayStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	studioID := c.QueryParam("studio_id")
	if studioID == "" {
		return response.BadRequest(c, "INVALID_QUERY", "studio_id is required")
	}

	checkedIn, err := h.checkInUC.HasCheckedInToday(c.Request().Context(), userID, studioID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"checked_in": checkedIn}, "Check-in status retrieved successfully")
}

// GetHistory handles retrieving the user's recent check-ins
func (h *CheckInHandler) GetHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_QUERY", "Invalid limit")
		}
		limit = parsed
	}

	history, err := h.checkInUC.GetHistory(c.Request().Context(), userID, limit)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history, "Check-in history retrieved successfully")
}

// GetStats handles retrieving the user's check-in statistics
func (h *CheckInHandler) GetStats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.checkInUC.GetStats(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Check-in stats retrieved successfully")
}
