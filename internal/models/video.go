package models

import "time"

// Video is the database row shape for a video record.
type Video struct {
	VideoID      string    `db:"video_id"`
	OwnerID      string    `db:"owner_id"`
	Title        string    `db:"title"`
	VideoURL     string    `db:"video_url"`
	ThumbnailURL string    `db:"thumbnail_url"`
	Duration     int64     `db:"duration_seconds"`
	Views        int64     `db:"views"`
	CreatedAt    time.Time `db:"created_at"`
}

// WatchHistoryEntry is one row of a user's ordered watch history. EntryID is a
// bigserial, so insertion order is the sort order; duplicate video IDs are
// permitted (watching twice records twice).
type WatchHistoryEntry struct {
	EntryID   int64     `db:"entry_id"`
	UserID    string    `db:"user_id"`
	VideoID   string    `db:"video_id"`
	WatchedAt time.Time `db:"watched_at"`
}
