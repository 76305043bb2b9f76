package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
)

// profileService implements ProfileSvcFacade. The document-store aggregation
// pipelines of the channel page become explicit repository queries composed
// here: a point lookup for the channel, two edge counts, and a membership
// check for the viewer.
type profileService struct {
	userRepo         portsrepo.UserRepository
	subscriptionRepo portsrepo.SubscriptionRepository
	videoRepo        portsrepo.VideoRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo portsrepo.UserRepository, subscriptionRepo portsrepo.SubscriptionRepository, videoRepo portsrepo.VideoRepository) portssvc.ProfileSvcFacade {
	return &profileService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		videoRepo:        videoRepo,
	}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetChannelProfile(ctx context.Context, username string, viewerID string) (*domain.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	channel, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve channel %s: %w", username, err)
	}

	subscribersCount, err := s.subscriptionRepo.CountSubscribers(ctx, channel.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscribers: %w", err)
	}

	subscribedToCount, err := s.subscriptionRepo.CountSubscribedTo(ctx, channel.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count subscribed channels: %w", err)
	}

	// Unauthenticated viewers are never subscribed.
	isSubscribed := false
	if viewerID != "" {
		isSubscribed, err = s.subscriptionRepo.IsSubscribed(ctx, viewerID, channel.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check viewer subscription: %w", err)
		}
	}

	return &domain.ChannelProfile{
		UserID:            channel.UserID,
		Username:          channel.Username,
		Email:             channel.Email,
		FullName:          channel.FullName,
		AvatarURL:         channel.AvatarURL,
		CoverImageURL:     channel.CoverImageURL,
		SubscribersCount:  subscribersCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
	}, nil
}

func (s *profileService) GetWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}

	// Entries whose video was deleted are omitted by the repository join.
	items, err := s.userRepo.FindWatchHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load watch history: %w", err)
	}
	return items, nil
}

func (s *profileService) RecordWatch(ctx context.Context, userID string, videoID string) error {
	if userID == "" || videoID == "" {
		return fmt.Errorf("%w: user and video IDs are required", apperrors.ErrValidation)
	}

	if _, err := s.videoRepo.FindVideoByID(ctx, videoID); err != nil {
		return fmt.Errorf("failed to resolve video %s: %w", videoID, err)
	}

	if err := s.userRepo.AppendWatchHistory(ctx, userID, videoID, time.Now()); err != nil {
		return fmt.Errorf("failed to record watch: %w", err)
	}
	return nil
}
