package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// ProfileSvcFacade answers the read-only aggregate queries: channel profiles
// and enriched watch history. It joins users, subscriptions and videos but
// never writes to any of them except the history append.
type ProfileSvcFacade interface {
	// GetChannelProfile resolves the channel by normalized username and
	// computes subscriber counts plus the viewer-relative IsSubscribed flag.
	// viewerID may be empty for unauthenticated requests, in which case
	// IsSubscribed is always false.
	GetChannelProfile(ctx context.Context, username string, viewerID string) (*domain.ChannelProfile, error)

	// GetWatchHistory returns the user's history in insertion order with
	// duplicates preserved; entries whose video was deleted are omitted.
	GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryItem, error)

	// RecordWatch appends the video to the user's history. Fails with
	// apperrors.ErrNotFound when the video does not exist.
	RecordWatch(ctx context.Context, userID string, videoID string) error
}
