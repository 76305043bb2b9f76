package repositories

import (
	"context"
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// UserRepository is the persistence port for user records and their ordered
// watch history. It is the single owner of the users table.
type UserRepository interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate when the
	// username or email is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns apperrors.ErrNotFound when no live user matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername looks a user up by exact (lowercased) username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByUsernameOrEmail matches either unique identity column.
	FindUserByUsernameOrEmail(ctx context.Context, username string, email string) (*domain.User, error)

	// FindUsersByIDs returns the live users for the given IDs, keyed by ID.
	// Missing IDs are simply absent from the map.
	FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error)

	// UpdatePasswordHash replaces only the password hash column.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error

	// UpdateRefreshToken stores the given refresh token as the user's single
	// active session token, replacing any previous value.
	UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error

	// RotateRefreshToken atomically swaps presented for next, succeeding only
	// if presented is still the stored value at the moment of update. Returns
	// apperrors.ErrRefreshTokenRevoked when the stored value no longer
	// matches (already rotated, or cleared by logout).
	RotateRefreshToken(ctx context.Context, userID string, presented string, next string) error

	// ClearRefreshToken sets the stored token to NULL, not to the empty
	// string, so "logged out" stays distinguishable from any token value.
	ClearRefreshToken(ctx context.Context, userID string) error

	// AppendWatchHistory records one watched video at the end of the user's
	// history. Duplicates are allowed: watching twice records twice.
	AppendWatchHistory(ctx context.Context, userID string, videoID string, watchedAt time.Time) error

	// FindWatchHistory returns the user's history in insertion order, each
	// entry joined with its video and the video's owner. Entries whose video
	// has been deleted are omitted.
	FindWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryItem, error)
}
