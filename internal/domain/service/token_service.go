// Package service defines interfaces for infrastructure-backed domain services.
package service

import "context"

// AuthenticatedUser is the identity the auth collaborator vouches for.
// The UID is an opaque stable string; the core never interprets it.
type AuthenticatedUser struct {
	UID           string
	Email         string
	EmailVerified bool
}

// TokenVerifier validates a client session token and returns the identity it
// carries. Token issuance is the auth collaborator's business, not ours.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*AuthenticatedUser, error)
}
