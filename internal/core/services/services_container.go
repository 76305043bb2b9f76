package services

import (
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/vidtube/vidtube_backend/internal/platform/media"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mediaStore media.Store) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.Auth = NewAuthService(repos.UserRepo, container.Token, mediaStore)
	container.Subscription = NewSubscriptionService(repos.SubscriptionRepo)
	container.Profile = NewProfileService(repos.UserRepo, repos.SubscriptionRepo, repos.VideoRepo)

	return container
}
