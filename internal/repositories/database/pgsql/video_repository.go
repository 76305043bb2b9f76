package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVideoRepository struct {
	db *pgxpool.Pool
}

func newPgxVideoRepository(db *pgxpool.Pool) portsrepo.VideoRepository {
	return &PgxVideoRepository{db: db}
}

var _ portsrepo.VideoRepository = (*PgxVideoRepository)(nil)

func toDomainVideo(m models.Video) domain.Video {
	return domain.Video{
		VideoID:      m.VideoID,
		OwnerID:      m.OwnerID,
		Title:        m.Title,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		Duration:     m.Duration,
		Views:        m.Views,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *PgxVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	query := `
        SELECT video_id, owner_id, title, video_url, thumbnail_url, duration_seconds, views, created_at
        FROM videos
        WHERE video_id = $1;
    `
	var m models.Video
	err := r.db.QueryRow(ctx, query, videoID).Scan(
		&m.VideoID,
		&m.OwnerID,
		&m.Title,
		&m.VideoURL,
		&m.ThumbnailURL,
		&m.Duration,
		&m.Views,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find video by ID %s: %w", videoID, err)
	}

	video := toDomainVideo(m)
	return &video, nil
}
