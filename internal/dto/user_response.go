package dto

import "github.com/vidtube/vidtube_backend/internal/core/domain"

// UserResponse is the public projection of a user. It never carries the
// password hash or the refresh token.
type UserResponse struct {
	UserID        string `json:"userID"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	AvatarURL     string `json:"avatarURL"`
	CoverImageURL string `json:"coverImageURL,omitempty"`
}

// ToUserResponse converts a domain.User to its public projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Username:      user.Username,
		Email:         user.Email,
		FullName:      user.FullName,
		AvatarURL:     user.AvatarURL,
		CoverImageURL: user.CoverImageURL,
	}
}

// ChannelCard is the reduced user view rendered in subscriber and
// subscribed-channel listings.
type ChannelCard struct {
	Username      string `json:"username"`
	FullName      string `json:"fullName"`
	AvatarURL     string `json:"avatarURL"`
	CoverImageURL string `json:"coverImageURL,omitempty"`
}

// ToChannelCards reduces users to listing cards.
func ToChannelCards(users []domain.User) []ChannelCard {
	cards := make([]ChannelCard, len(users))
	for i, u := range users {
		cards[i] = ChannelCard{
			Username:      u.Username,
			FullName:      u.FullName,
			AvatarURL:     u.AvatarURL,
			CoverImageURL: u.CoverImageURL,
		}
	}
	return cards
}
