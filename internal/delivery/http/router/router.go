// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passfit/internal/delivery/http/middleware"
	"passfit/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	LocationHandler     *handler.LocationHandler
	StudioHandler       *handler.StudioHandler
	CheckInHandler      *handler.CheckInHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	locationHandler     *handler.LocationHandler
	studioHandler       *handler.StudioHandler
	checkInHandler      *handler.CheckInHandler
	subscriptionHandler *handler.SubscriptionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		locationHandler:     params.LocationHandler,
		studioHandler:       params.StudioHandler,
		checkInHandler:      params.CheckInHandler,
		subscriptionHandler: params.SubscriptionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Directory routes are public: browsing studios needs no account.
	studioGroup := e.Group("/studios")
	{
		studioGroup.GET("", r.studioHandler.SearchStudios)
		studioGroup.GET("/:id", r.studioHandler.GetStudio)
		studioGroup.GET("/:id/checkin-code", r.studioHandler.GetStudioCheckInCode)
	}

	// Session bootstrap requires a verified token but no existing profile.
	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.POST("", r.userHandler.StartSession)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.POST("/fcm-token", r.userHandler.RegisterFCMToken)
	}

	// Location routes that require authentication
	locationGroup := e.Group("/location")
	locationGroup.Use(r.authMiddleware.Authenticate)
	{
		locationGroup.GET("", r.locationHandler.GetLocation)
		locationGroup.POST("/resolve", r.locationHandler.ResolveLocation)
		locationGroup.POST("/retry", r.locationHandler.RetryLocation)
		locationGroup.POST("/fallback", r.locationHandler.SelectFallback)
		locationGroup.GET("/fallbacks", r.locationHandler.ListFallbacks)
		locationGroup.POST("/position", r.locationHandler.ReportPosition)
	}

	// Check-in routes that require authentication
	checkInGroup := e.Group("/checkins")
	checkInGroup.Use(r.authMiddleware.Authenticate)
	{
		checkInGroup.POST("", r.checkInHandler.CheckIn)
		checkInGroup.POST("/scan", r.checkInHandler.ScanCode)
		checkInGroup.GET("/today", r.checkInHandler.GetTodayStatus)
		checkInGroup.GET("", r.checkInHandler.GetHistory)
		checkInGroup.GET("/stats", r.checkInHandler.GetStats)
	}

	// Subscription routes that require authentication
	subscriptionGroup := e.Group("/subscriptions")
	subscriptionGroup.Use(r.authMiddleware.Authenticate)
	{
		subscriptionGroup.POST("", r.subscriptionHandler.CreateSubscription)
		subscriptionGroup.GET("", r.subscriptionHandler.GetSubscriptions)
		subscriptionGroup.POST("/:id/renew", r.subscriptionHandler.RenewSubscription)
		subscriptionGroup.POST("/:id/cancel", r.subscriptionHandler.CancelSubscription)
		subscriptionGroup.GET("/status", r.subscriptionHandler.GetMembershipStatus)
	}
}
