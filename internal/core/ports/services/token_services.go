package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// TokenSvcFacade issues and rotates the signed access/refresh token pair.
// The two kinds are signed with independent secrets.
type TokenSvcFacade interface {
	// IssuePair signs a new access/refresh pair for the user and persists
	// the refresh token as the user's single active session token.
	IssuePair(ctx context.Context, userID string) (domain.TokenPair, error)

	// VerifyRefresh validates the refresh token's signature and expiry and
	// returns the user ID it was issued to. Signature and expiry failures
	// map to apperrors.ErrUnauthorized.
	VerifyRefresh(tokenString string) (string, error)

	// Rotate verifies the presented refresh token, then atomically swaps it
	// for a fresh one; every token is single use. A cryptographically valid token that no
	// longer matches storage fails with apperrors.ErrRefreshTokenRevoked
	// (reuse detection).
	Rotate(ctx context.Context, presentedRefreshToken string) (*domain.User, domain.TokenPair, error)
}
