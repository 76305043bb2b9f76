package domain

import "time"

// Video is an opaque content record owned by a user. This core only reads it
// as a join target for watch history and channel views; storage and
// transcoding of the binary happen elsewhere.
type Video struct {
	VideoID      string    `json:"videoID"`
	OwnerID      string    `json:"ownerID"`
	Title        string    `json:"title"`
	VideoURL     string    `json:"videoURL"`
	ThumbnailURL string    `json:"thumbnailURL"`
	Duration     int64     `json:"durationSeconds"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}

// VideoOwner is the reduced owner projection embedded in enriched video views.
type VideoOwner struct {
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarURL"`
}

// WatchHistoryItem is one watch-history entry joined with its video and the
// video's owner. Entries whose video has since been deleted are omitted from
// history reads rather than surfaced as gaps.
type WatchHistoryItem struct {
	Video     Video      `json:"video"`
	Owner     VideoOwner `json:"owner"`
	WatchedAt time.Time  `json:"watchedAt"`
}
