package domain

import "time"

// User represents an account holder. Every user doubles as a channel that others
// can subscribe to.
type User struct {
	UserID        string     `json:"userID"` // Primary Key (UUID)
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	FullName      string     `json:"fullName"`
	PasswordHash  string     `json:"-"`
	AvatarURL     string     `json:"avatarURL"`
	CoverImageURL string     `json:"coverImageURL,omitempty"`
	RefreshToken  *string    `json:"-"` // nil means no active session, distinct from ""
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// TokenPair is the access/refresh credential pair issued on login and on every
// successful refresh rotation.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
