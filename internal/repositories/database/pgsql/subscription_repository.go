package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSubscriptionRepository struct {
	db *pgxpool.Pool
}

func newPgxSubscriptionRepository(db *pgxpool.Pool) portsrepo.SubscriptionRepository {
	return &PgxSubscriptionRepository{db: db}
}

var _ portsrepo.SubscriptionRepository = (*PgxSubscriptionRepository)(nil)

// ToggleSubscription flips the edge for the composite (subscriber, channel)
// pair. Both legs are conditional single statements under the unique composite
// index, never a check-then-act, so N concurrent toggles converge to exactly
// one consistent state with no duplicate edges.
func (r *PgxSubscriptionRepository) ToggleSubscription(ctx context.Context, subscriberID string, channelID string) (bool, error) {
	deleteQuery := `
        DELETE FROM subscriptions
        WHERE subscriber_id = $1 AND channel_id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, deleteQuery, subscriberID, channelID)
	if err != nil {
		return false, fmt.Errorf("failed to delete subscription: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return false, nil
	}

	insertQuery := `
        INSERT INTO subscriptions (subscription_id, subscriber_id, channel_id, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (subscriber_id, channel_id) DO NOTHING;
    `
	_, err = r.db.Exec(ctx, insertQuery, uuid.NewString(), subscriberID, channelID, time.Now())
	if err != nil {
		// A concurrent insert losing the race still lands on "subscribed".
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return true, nil
		}
		return false, fmt.Errorf("failed to create subscription: %w", err)
	}
	return true, nil
}

func (r *PgxSubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID string, channelID string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM subscriptions
            WHERE subscriber_id = $1 AND channel_id = $2
        );
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, subscriberID, channelID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subscription existence: %w", err)
	}
	return exists, nil
}

func (r *PgxSubscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	query := `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1;`
	var count int64
	if err := r.db.QueryRow(ctx, query, channelID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

func (r *PgxSubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	query := `SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1;`
	var count int64
	if err := r.db.QueryRow(ctx, query, subscriberID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribed channels: %w", err)
	}
	return count, nil
}

func (r *PgxSubscriptionRepository) FindSubscribers(ctx context.Context, channelID string) ([]domain.User, error) {
	query := `
        SELECT ` + prefixedUserColumns("u") + `
        FROM subscriptions s
        JOIN users u ON u.user_id = s.subscriber_id AND u.deleted_at IS NULL
        WHERE s.channel_id = $1
        ORDER BY s.created_at;
    `
	return r.queryUsers(ctx, query, channelID)
}

func (r *PgxSubscriptionRepository) FindSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.User, error) {
	query := `
        SELECT ` + prefixedUserColumns("u") + `
        FROM subscriptions s
        JOIN users u ON u.user_id = s.channel_id AND u.deleted_at IS NULL
        WHERE s.subscriber_id = $1
        ORDER BY s.created_at;
    `
	return r.queryUsers(ctx, query, subscriberID)
}

func (r *PgxSubscriptionRepository) queryUsers(ctx context.Context, query string, arg any) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscription users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		modelUser, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription user row: %w", err)
		}
		users = append(users, toDomainUser(*modelUser))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating subscription user rows: %w", rows.Err())
	}

	return users, nil
}
