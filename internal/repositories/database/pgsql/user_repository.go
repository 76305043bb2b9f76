package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/vidtube/vidtube_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		FullName:     d.FullName,
		PasswordHash: d.PasswordHash,
		AvatarURL:    d.AvatarURL,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		DeletedAt:    d.DeletedAt,
	}
	if d.CoverImageURL != "" {
		m.CoverImageURL = sql.NullString{String: d.CoverImageURL, Valid: true}
	}
	if d.RefreshToken != nil {
		m.RefreshToken = sql.NullString{String: *d.RefreshToken, Valid: true}
	}
	return m
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		AvatarURL:    m.AvatarURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}
	if m.CoverImageURL.Valid {
		d.CoverImageURL = m.CoverImageURL.String
	}
	if m.RefreshToken.Valid {
		token := m.RefreshToken.String
		d.RefreshToken = &token
	}
	return d
}

const userColumns = `user_id, username, email, full_name, password_hash, avatar_url, cover_image_url, refresh_token, created_at, updated_at, deleted_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FullName,
		&m.PasswordHash,
		&m.AvatarURL,
		&m.CoverImageURL,
		&m.RefreshToken,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, username, email, full_name, password_hash, avatar_url, cover_image_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.Email,
		modelUser.FullName,
		modelUser.PasswordHash,
		modelUser.AvatarURL,
		modelUser.CoverImageURL,
		modelUser.CreatedAt,
		modelUser.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("username or email already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	modelUser, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	domainUser := toDomainUser(*modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL;`
	modelUser, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}
	domainUser := toDomainUser(*modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username string, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE (username = $1 OR email = $2) AND deleted_at IS NULL LIMIT 1;`
	modelUser, err := scanUser(r.db.QueryRow(ctx, query, username, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username/email: %w", err)
	}
	domainUser := toDomainUser(*modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error) {
	users := make(map[string]domain.User, len(userIDs))
	if len(userIDs) == 0 {
		return users, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ANY($1) AND deleted_at IS NULL;`
	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		modelUser, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users[modelUser.UserID] = toDomainUser(*modelUser)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return users, nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	query := `
        UPDATE users
        SET password_hash = $1, updated_at = $2
        WHERE user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	query := `
        UPDATE users
        SET refresh_token = $1, updated_at = $2
        WHERE user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, refreshToken, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

// RotateRefreshToken is a compare-and-swap: the update succeeds only while the
// presented token is still the stored one, so two concurrent rotations can
// never both issue valid pairs.
func (r *PgxUserRepository) RotateRefreshToken(ctx context.Context, userID string, presented string, next string) error {
	query := `
        UPDATE users
        SET refresh_token = $1, updated_at = $2
        WHERE user_id = $3 AND refresh_token = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, next, time.Now(), userID, presented)
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRefreshTokenRevoked
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	// NULL, not empty string: "logged out" must stay distinguishable from any token value.
	query := `
        UPDATE users
        SET refresh_token = NULL, updated_at = $1
        WHERE user_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) AppendWatchHistory(ctx context.Context, userID string, videoID string, watchedAt time.Time) error {
	query := `
        INSERT INTO watch_history (user_id, video_id, watched_at)
        VALUES ($1, $2, $3);
    `
	_, err := r.db.Exec(ctx, query, userID, videoID, watchedAt)
	if err != nil {
		return fmt.Errorf("failed to append watch history: %w", err)
	}
	return nil
}

// FindWatchHistory joins history rows with their video and the video's owner.
// The inner joins drop entries whose video (or owner) no longer exists; a
// deleted referent must never break the whole read.
func (r *PgxUserRepository) FindWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryItem, error) {
	query := `
        SELECT v.video_id, v.owner_id, v.title, v.video_url, v.thumbnail_url, v.duration_seconds, v.views, v.created_at,
               o.username, o.full_name, o.avatar_url,
               h.watched_at
        FROM watch_history h
        JOIN videos v ON v.video_id = h.video_id
        JOIN users o ON o.user_id = v.owner_id AND o.deleted_at IS NULL
        WHERE h.user_id = $1
        ORDER BY h.entry_id;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer rows.Close()

	items := []domain.WatchHistoryItem{}
	for rows.Next() {
		var item domain.WatchHistoryItem
		err := rows.Scan(
			&item.Video.VideoID,
			&item.Video.OwnerID,
			&item.Video.Title,
			&item.Video.VideoURL,
			&item.Video.ThumbnailURL,
			&item.Video.Duration,
			&item.Video.Views,
			&item.Video.CreatedAt,
			&item.Owner.Username,
			&item.Owner.FullName,
			&item.Owner.AvatarURL,
			&item.WatchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch history row: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating watch history rows: %w", rows.Err())
	}

	return items, nil
}
