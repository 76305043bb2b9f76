package services

// ServiceContainer aggregates all service facades for route registration.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	Token        TokenSvcFacade
	User         UserSvcFacade
	Subscription SubscriptionSvcFacade
	Profile      ProfileSvcFacade
}
