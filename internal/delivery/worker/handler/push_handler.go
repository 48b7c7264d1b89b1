package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"passfit/config"
	deliverycontext "passfit/internal/delivery/context"
	"passfit/internal/domain/constants"
	"passfit/internal/domain/entity"
	"passfit/internal/domain/repository"
	"passfit/internal/domain/service"
	"passfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying subscription lifecycle
// events. It projects the membership status onto the user record and notifies
// the user's devices.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	subscriptionUC  usecase.SubscriptionUsecase
	notificationSvc service.NotificationService
	userRepo        repository.UserRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	SubscriptionUC  usecase.SubscriptionUsecase
	NotificationSvc service.NotificationService
	UserRepo        repository.UserRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only verify push auth for the Google provider outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		subscriptionUC:  params.SubscriptionUC,
		notificationSvc: params.NotificationSvc,
		userRepo:        params.UserRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse subscription event
	var event service.SubscriptionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse subscription event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if event.SubscriptionID == "" || event.UserID == "" {
		h.logger.Error("[Worker] Subscription event missing identifiers")

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing subscription event",
		slog.String("subscription_id", event.SubscriptionID),
		slog.String("user_id", event.UserID),
		slog.String("status", string(event.Status)),
	)

	if err := h.subscriptionUC.ApplyStatusProjection(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to project subscription status",
			slog.String("subscription_id", event.SubscriptionID),
			slog.Any("error", err),
		)
		// The projection write is idempotent, so a retry is safe.
		return c.NoContent(http.StatusServiceUnavailable)
	}

	// Device notification is best effort and never triggers a redelivery:
	// the projection has already been applied.
	if err := h.notifyUserDevices(ctx, &event); err != nil {
		reqLogger.Warn("[Worker] Failed to notify user devices",
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
	}

	reqLogger.Info("[Worker] Subscription event processed successfully",
		slog.String("subscription_id", event.SubscriptionID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.SubscriptionEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// notifyUserDevices pushes a membership update to each registered device and
// prunes tokens the provider rejected.
func (h *PushHandler) notifyUserDevices(ctx context.Context, event *service.SubscriptionEvent) error {
	if h.notificationSvc == nil {
		return nil
	}

	user, err := h.userRepo.FindUserByID(ctx, event.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return newRetryableError(errors.WithStack(err))
	}

	if len(user.FCMTokens) == 0 {
		return nil
	}

	title, body := membershipNotificationContent(event.Status)
	data := map[string]string{
		"subscription_id": event.SubscriptionID,
		"status":          string(event.Status),
	}

	_, failureCount, invalidTokens, err := h.notificationSvc.SendBatchNotification(
		ctx, user.FCMTokens, title, body, data,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, token := range invalidTokens {
		if !slices.Contains(user.FCMTokens, token) {
			continue
		}
		if removeErr := h.userRepo.RemoveFCMToken(ctx, user.ID, token); removeErr != nil {
			h.logger.Warn("[Worker] Failed to remove invalid token",
				slog.String("user_id", user.ID),
				slog.Any("error", removeErr),
			)
		}
	}

	if failureCount > 0 {
		h.logger.Warn("[Worker] Some device notifications failed",
			slog.String("user_id", user.ID),
			slog.Int("failure_count", failureCount),
		)
	}

	return nil
}

// membershipNotificationContent maps a subscription status to the push text.
func membershipNotificationContent(status entity.SubscriptionStatus) (title, body string) {
	title = "Membership update"

	switch status {
	case entity.SubscriptionActive:
		body = "Your membership is now active. Enjoy your workouts!"
	case entity.SubscriptionExpired:
		body = "Your membership has expired. Renew to keep checking in."
	case entity.SubscriptionCanceled:
		body = "Your membership has been canceled."
	default:
		body = "Your membership status has changed."
	}

	return title, body
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
