package domain

import "time"

// Subscription is one directed edge: the subscriber follows the channel.
// At most one edge exists per (subscriber, channel) pair; subscribing to a
// channel never implies the reverse edge. Edges are created and deleted by the
// toggle operation, never updated.
type Subscription struct {
	SubscriptionID string    `json:"subscriptionID"`
	SubscriberID   string    `json:"subscriberID"`
	ChannelID      string    `json:"channelID"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ChannelProfile is the read-only aggregate a channel page renders: the
// channel's public fields plus subscriber counts and a viewer-relative flag.
type ChannelProfile struct {
	UserID            string `json:"userID"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	FullName          string `json:"fullName"`
	AvatarURL         string `json:"avatarURL"`
	CoverImageURL     string `json:"coverImageURL,omitempty"`
	SubscribersCount  int64  `json:"subscribersCount"`
	SubscribedToCount int64  `json:"subscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"`
}
