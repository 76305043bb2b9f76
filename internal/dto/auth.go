package dto

import "io"

// FileUpload carries one uploaded file from the HTTP boundary into the auth
// service, which delegates persistence to the media collaborator.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

// RegisterRequest is the input to user registration. The handler assembles it
// from a multipart form; Avatar is mandatory, CoverImage optional.
type RegisterRequest struct {
	FullName   string
	Username   string
	Email      string
	Password   string
	Avatar     *FileUpload
	CoverImage *FileUpload
}

// LoginRequest identifies a user by username or email plus password. At least
// one of the identifiers must be supplied.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest carries a password change for the authenticated user.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// RefreshRequest carries an explicit refresh token for clients that do not
// use the refresh cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoginResponse is the success payload of login and refresh: the public user
// view plus the freshly issued token pair (also set as cookies).
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}
