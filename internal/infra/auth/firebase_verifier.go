// Package auth contains the Firebase-backed session token verifier.
package auth

import (
	"context"

	"passfit/config"
	"passfit/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// firebaseTokenVerifier implements service.TokenVerifier using Firebase Auth
// ID tokens. The auth provider owns issuance and session lifetime; this side
// only checks the signature and extracts the stable uid.
type firebaseTokenVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseTokenVerifier creates a token verifier bound to the configured
// Firebase project.
func NewFirebaseTokenVerifier(ctx context.Context, cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: cfg.Firebase.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseTokenVerifier{
		client: client,
	}, nil
}

// VerifyToken validates the ID token and returns the identity it carries.
func (v *firebaseTokenVerifier) VerifyToken(ctx context.Context, token string) (*service.AuthenticatedUser, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	user := &service.AuthenticatedUser{
		UID: decoded.UID,
	}
	if email, ok := decoded.Claims["email"].(string); ok {
		user.Email = email
	}
	if verified, ok := decoded.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	return user, nil
}
