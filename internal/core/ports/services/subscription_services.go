package services

import (
	"context"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
)

// SubscriptionSvcFacade owns the subscriber→channel edge set.
type SubscriptionSvcFacade interface {
	// Toggle creates the (subscriberID, channelID) edge if absent and
	// removes it if present, atomically under the composite unique key.
	// Returns the resulting subscribed state.
	Toggle(ctx context.Context, subscriberID string, channelID string) (bool, error)

	// ListSubscribers returns the public users subscribed to the channel.
	ListSubscribers(ctx context.Context, channelID string) ([]domain.User, error)

	// ListSubscribedChannels returns the public users (channels) the
	// subscriber follows.
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.User, error)
}
