// Package auth provides token issuance/verification and password
// hashing for the authentication pipeline.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
// Tokens are stateless and self-contained: each ValidateToken call
// verifies the token independently, and there is no server-side
// revocation.
type JWTService interface {
	// GenerateToken creates a signed JWT embedding the subject user id
	// with an absolute expiry a fixed lifetime from issuance.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates the provided token string and extracts
	// the claims. Returns ErrExpiredToken if the current time is at or
	// past the embedded expiry, or ErrInvalidToken if the signature
	// does not match or the token is malformed.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
