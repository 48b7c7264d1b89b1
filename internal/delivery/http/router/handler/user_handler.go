package handler

import (
	"log/slog"
	"net/http"

	"passfit/internal/delivery/http/middleware"
	"passfit/internal/delivery/http/response"
	"passfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering a device token
type RegisterTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// StartSession provisions the account record for the verified identity. The
// auth provider owns credentials; this only ensures the profile exists.
func (h *UserHandler) StartSession(c echo.Context) error {
	authUser, ok := middleware.GetAuthenticatedUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authenticated identity")
	}

	user, err := h.userUC.EnsureUser(c.Request().Context(), authUser)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Session started successfully")
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// RegisterFCMToken handles registering a device push token for the user
func (h *UserHandler) RegisterFCMToken(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.userUC.RegisterFCMToken(c.Request().Context(), userID, req.Token); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token registered"}, "Device token registered successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
