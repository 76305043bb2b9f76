package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/vidtube/vidtube_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing and rotating the
// access/refresh pair. Access and refresh tokens are signed with independent
// secrets so that compromise of one cannot forge the other. The stored refresh
// token is single use: every successful rotation replaces it.
type tokenService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepository
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepository) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// signPair signs a fresh access/refresh pair without persisting anything.
func (s *tokenService) signPair(userID string) (domain.TokenPair, error) {
	accessToken, err := utils.GenerateJWT(userID, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	// A jti keeps every refresh token unique even within one second, so the
	// stored-value equality check can always tell old from new.
	tokenID, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to generate refresh token ID: %w", err)
	}
	refreshToken, err := utils.GenerateJWTWithID(userID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiry, s.cfg.JWTIssuer, tokenID)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// IssuePair signs a new pair and persists the refresh token as the user's
// single active session token, replacing any previous session's token.
func (s *tokenService) IssuePair(ctx context.Context, userID string) (domain.TokenPair, error) {
	pair, err := s.signPair(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, pair.RefreshToken); err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return pair, nil
}

// VerifyRefresh validates signature and expiry of a refresh token and returns
// the user ID it was issued to. Any parse failure is reported as unauthorized;
// nothing is retried.
func (s *tokenService) VerifyRefresh(tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.RefreshTokenSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: refresh token has no subject", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}

// Rotate exchanges a presented refresh token for a fresh pair. The swap is a
// compare-and-swap against the stored value: a token that verifies
// cryptographically but no longer matches storage was already rotated or
// logged out, which is reported as ErrRefreshTokenRevoked so callers can treat
// it as potential token theft.
func (s *tokenService) Rotate(ctx context.Context, presentedRefreshToken string) (*domain.User, domain.TokenPair, error) {
	userID, err := s.VerifyRefresh(presentedRefreshToken)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.TokenPair{}, apperrors.ErrUnauthorized
		}
		return nil, domain.TokenPair{}, fmt.Errorf("failed to load user for token rotation: %w", err)
	}

	pair, err := s.signPair(user.UserID)
	if err != nil {
		return nil, domain.TokenPair{}, err
	}

	if err := s.userRepo.RotateRefreshToken(ctx, user.UserID, presentedRefreshToken, pair.RefreshToken); err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenRevoked) {
			return nil, domain.TokenPair{}, err
		}
		return nil, domain.TokenPair{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return user, pair, nil
}
