package models

import "time"

// Subscription is the database row shape for one subscriber→channel edge.
// The schema carries a unique index on (subscriber_id, channel_id); the toggle
// operation relies on it to stay idempotent under concurrency.
type Subscription struct {
	SubscriptionID string    `db:"subscription_id"`
	SubscriberID   string    `db:"subscriber_id"`
	ChannelID      string    `db:"channel_id"`
	CreatedAt      time.Time `db:"created_at"`
}
