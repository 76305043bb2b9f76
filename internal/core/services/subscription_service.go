package services

import (
	"context"
	"fmt"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
)

// subscriptionService implements SubscriptionSvcFacade over the edge
// repository. The toggle is always keyed on the composite (subscriber,
// channel) pair; keying on the channel alone would make one user's toggle
// global across every subscriber of that channel.
type subscriptionService struct {
	subscriptionRepo portsrepo.SubscriptionRepository
}

// NewSubscriptionService creates a new instance of subscriptionService.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepository) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

func (s *subscriptionService) Toggle(ctx context.Context, subscriberID string, channelID string) (bool, error) {
	if subscriberID == "" || channelID == "" {
		return false, fmt.Errorf("%w: subscriber and channel IDs are required", apperrors.ErrValidation)
	}

	subscribed, err := s.subscriptionRepo.ToggleSubscription(ctx, subscriberID, channelID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle subscription: %w", err)
	}
	return subscribed, nil
}

func (s *subscriptionService) ListSubscribers(ctx context.Context, channelID string) ([]domain.User, error) {
	if channelID == "" {
		return nil, fmt.Errorf("%w: channel ID is required", apperrors.ErrValidation)
	}

	subscribers, err := s.subscriptionRepo.FindSubscribers(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel subscribers: %w", err)
	}
	return subscribers, nil
}

func (s *subscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.User, error) {
	if subscriberID == "" {
		return nil, fmt.Errorf("%w: subscriber ID is required", apperrors.ErrValidation)
	}

	channels, err := s.subscriptionRepo.FindSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribed channels: %w", err)
	}
	return channels, nil
}
