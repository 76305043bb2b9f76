package repositories

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// SubscriptionRepository is the persistence port for the subscriber→channel
// edge set. It is the single owner of the subscriptions table.
type SubscriptionRepository interface {
	// ToggleSubscription flips the edge keyed by the composite
	// (subscriberID, channelID) pair: delete it if present, create it if
	// absent. The write is conditional on the composite unique index, never
	// a read-then-act, so concurrent toggles converge to one consistent
	// state. Returns the resulting existence of the edge.
	ToggleSubscription(ctx context.Context, subscriberID string, channelID string) (bool, error)

	// IsSubscribed reports whether the (subscriberID, channelID) edge exists.
	IsSubscribed(ctx context.Context, subscriberID string, channelID string) (bool, error)

	// CountSubscribers counts edges pointing at the channel.
	CountSubscribers(ctx context.Context, channelID string) (int64, error)

	// CountSubscribedTo counts edges originating from the subscriber.
	CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error)

	// FindSubscribers returns the users subscribed to the channel, joined
	// against the users table.
	FindSubscribers(ctx context.Context, channelID string) ([]domain.User, error)

	// FindSubscribedChannels returns the users (channels) the subscriber
	// follows, joined against the users table.
	FindSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.User, error)
}
