package handler

import (
	"log/slog"
	"net/http"
	"time"

	"passfit/internal/delivery/http/response"
	"passfit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// CreateSubscriptionRequest represents the request body for creating a subscription
type CreateSubscriptionRequest struct {
	PlanID           string    `json:"plan_id" validate:"required"`
	ExpiresAt        time.Time `json:"expires_at" validate:"required"`
	PaymentConfirmed bool      `json:"payment_confirmed"`
}

// RenewSubscriptionRequest represents the request body for renewing a subscription
type RenewSubscriptionRequest struct {
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
}

// CreateSubscription handles starting a new subscription for the user
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.CreateSubscription(c.Request().Context(), userID, req.PlanID, req.ExpiresAt, req.PaymentConfirmed)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription, "Subscription created successfully")
}

// RenewSubscription handles extending an existing subscription
func (h *SubscriptionHandler) RenewSubscription(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	subscriptionID := c.Param("id")
	if subscriptionID == "" {
		return response.BadRequest(c, "INVALID_ID", "Subscription ID is required")
	}

	var req RenewSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid renewal input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.RenewSubscription(c.Request().Context(), subscriptionID, req.ExpiresAt)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription, "Subscription renewed successfully")
}

// CancelSubscription handles canceling a subscription
func (h *SubscriptionHandler) CancelSubscription(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	subscriptionID := c.Param("id")
	if subscriptionID == "" {
		return response.BadRequest(c, "INVALID_ID", "Subscription ID is required")
	}

	if err := h.subscriptionUC.CancelSubscription(c.Request().Context(), subscriptionID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Subscription canceled"}, "Subscription canceled successfully")
}

// GetSubscriptions handles listing the user's subscriptions
func (h *SubscriptionHandler) GetSubscriptions(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	subscriptions, err := h.subscriptionUC.GetUserSubscriptions(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "Subscriptions retrieved successfully")
}

// GetMembershipStatus handles deriving the user's effective membership status
func (h *SubscriptionHandler) GetMembershipStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	status, err := h.subscriptionUC.GetMembershipStatus(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": string(status)}, "Membership status retrieved successfully")
}
