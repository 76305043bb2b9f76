package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

// AuthSvcFacade owns the credential lifecycle: registration, login, logout,
// password change and refresh rotation.
type AuthSvcFacade interface {
	// Register creates a new user. Fails with apperrors.ErrValidation when a
	// required field is blank after trimming or the avatar is missing, and
	// with apperrors.ErrDuplicate when username or email is taken. Username
	// is normalized to lowercase before the uniqueness check.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login authenticates by username or email. Returns the user together
	// with a freshly issued token pair; the refresh token is persisted as
	// the user's single active session.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, domain.TokenPair, error)

	// Logout clears the user's stored refresh token.
	Logout(ctx context.Context, userID string) error

	// ChangePassword verifies oldPassword against the stored hash before
	// persisting the re-hashed newPassword. Only the password column is
	// touched.
	ChangePassword(ctx context.Context, userID string, oldPassword string, newPassword string) error

	// Refresh rotates the presented refresh token into a new pair. A token
	// that verifies but no longer matches storage fails with
	// apperrors.ErrRefreshTokenRevoked.
	Refresh(ctx context.Context, presentedRefreshToken string) (*domain.User, domain.TokenPair, error)
}
