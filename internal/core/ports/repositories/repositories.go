package repositories

// RepositoryProvider aggregates all repository ports so wiring code can pass
// them around as one unit.
type RepositoryProvider struct {
	UserRepo         UserRepository
	SubscriptionRepo SubscriptionRepository
	VideoRepo        VideoRepository
}
