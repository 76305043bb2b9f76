package models

import (
	"database/sql"
	"time"
)

// User is the database row shape for a user record.
// Username is always stored lowercase; uniqueness is enforced on username and
// email by the schema. RefreshToken is NULL when there is no active session,
// which is distinct from any stored string value.
type User struct {
	UserID        string         `db:"user_id"`
	Username      string         `db:"username"`
	Email         string         `db:"email"`
	FullName      string         `db:"full_name"`
	PasswordHash  string         `db:"password_hash"`
	AvatarURL     string         `db:"avatar_url"`
	CoverImageURL sql.NullString `db:"cover_image_url"`
	RefreshToken  sql.NullString `db:"refresh_token"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     *time.Time     `db:"deleted_at"`
}
