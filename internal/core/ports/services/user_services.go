package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// UserSvcFacade exposes basic user lookups to handlers and other services.
type UserSvcFacade interface {
	// GetUserByID returns apperrors.ErrNotFound when no live user matches.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
