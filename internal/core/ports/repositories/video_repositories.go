package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// VideoRepository is the read-side port for the content entity. Videos are
// owned by the media pipeline; this core only resolves them as join targets.
type VideoRepository interface {
	// FindVideoByID returns apperrors.ErrNotFound when no video matches.
	FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error)
}
