package services_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	SaveUserFn                  func(ctx context.Context, user domain.User) error
	FindUserByIDFn              func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn        func(ctx context.Context, username string) (*domain.User, error)
	FindUserByUsernameOrEmailFn func(ctx context.Context, username, email string) (*domain.User, error)
	FindUsersByIDsFn            func(ctx context.Context, userIDs []string) (map[string]domain.User, error)
	UpdatePasswordHashFn        func(ctx context.Context, userID, passwordHash string) error
	UpdateRefreshTokenFn        func(ctx context.Context, userID, refreshToken string) error
	RotateRefreshTokenFn        func(ctx context.Context, userID, presented, next string) error
	ClearRefreshTokenFn         func(ctx context.Context, userID string) error
	AppendWatchHistoryFn        func(ctx context.Context, userID, videoID string, watchedAt time.Time) error
	FindWatchHistoryFn          func(ctx context.Context, userID string) ([]domain.WatchHistoryItem, error)
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username string, email string) (*domain.User, error) {
	if m.FindUserByUsernameOrEmailFn != nil {
		return m.FindUserByUsernameOrEmailFn(ctx, username, email)
	}
	args := m.Called(ctx, username, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error) {
	if m.FindUsersByIDsFn != nil {
		return m.FindUsersByIDsFn(ctx, userIDs)
	}
	args := m.Called(ctx, userIDs)
	var users map[string]domain.User
	if args.Get(0) != nil {
		users = args.Get(0).(map[string]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	if m.UpdatePasswordHashFn != nil {
		return m.UpdatePasswordHashFn(ctx, userID, passwordHash)
	}
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, userID, refreshToken)
	}
	args := m.Called(ctx, userID, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) RotateRefreshToken(ctx context.Context, userID string, presented string, next string) error {
	if m.RotateRefreshTokenFn != nil {
		return m.RotateRefreshTokenFn(ctx, userID, presented, next)
	}
	args := m.Called(ctx, userID, presented, next)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	if m.ClearRefreshTokenFn != nil {
		return m.ClearRefreshTokenFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) AppendWatchHistory(ctx context.Context, userID string, videoID string, watchedAt time.Time) error {
	if m.AppendWatchHistoryFn != nil {
		return m.AppendWatchHistoryFn(ctx, userID, videoID, watchedAt)
	}
	args := m.Called(ctx, userID, videoID, watchedAt)
	return args.Error(0)
}

func (m *MockUserRepository) FindWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryItem, error) {
	if m.FindWatchHistoryFn != nil {
		return m.FindWatchHistoryFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var items []domain.WatchHistoryItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.WatchHistoryItem)
	}
	return items, args.Error(1)
}

// --- Mock SubscriptionRepository ---

type MockSubscriptionRepository struct {
	mock.Mock
	ToggleSubscriptionFn     func(ctx context.Context, subscriberID, channelID string) (bool, error)
	IsSubscribedFn           func(ctx context.Context, subscriberID, channelID string) (bool, error)
	CountSubscribersFn       func(ctx context.Context, channelID string) (int64, error)
	CountSubscribedToFn      func(ctx context.Context, subscriberID string) (int64, error)
	FindSubscribersFn        func(ctx context.Context, channelID string) ([]domain.User, error)
	FindSubscribedChannelsFn func(ctx context.Context, subscriberID string) ([]domain.User, error)
}

var _ portsrepo.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

func (m *MockSubscriptionRepository) ToggleSubscription(ctx context.Context, subscriberID string, channelID string) (bool, error) {
	if m.ToggleSubscriptionFn != nil {
		return m.ToggleSubscriptionFn(ctx, subscriberID, channelID)
	}
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID string, channelID string) (bool, error) {
	if m.IsSubscribedFn != nil {
		return m.IsSubscribedFn(ctx, subscriberID, channelID)
	}
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	if m.CountSubscribersFn != nil {
		return m.CountSubscribersFn(ctx, channelID)
	}
	args := m.Called(ctx, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	if m.CountSubscribedToFn != nil {
		return m.CountSubscribedToFn(ctx, subscriberID)
	}
	args := m.Called(ctx, subscriberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) FindSubscribers(ctx context.Context, channelID string) ([]domain.User, error) {
	if m.FindSubscribersFn != nil {
		return m.FindSubscribersFn(ctx, channelID)
	}
	args := m.Called(ctx, channelID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockSubscriptionRepository) FindSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.User, error) {
	if m.FindSubscribedChannelsFn != nil {
		return m.FindSubscribedChannelsFn(ctx, subscriberID)
	}
	args := m.Called(ctx, subscriberID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Mock VideoRepository ---

type MockVideoRepository struct {
	mock.Mock
	FindVideoByIDFn func(ctx context.Context, videoID string) (*domain.Video, error)
}

var _ portsrepo.VideoRepository = (*MockVideoRepository)(nil)

func (m *MockVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	if m.FindVideoByIDFn != nil {
		return m.FindVideoByIDFn(ctx, videoID)
	}
	args := m.Called(ctx, videoID)
	var video *domain.Video
	if args.Get(0) != nil {
		video = args.Get(0).(*domain.Video)
	}
	return video, args.Error(1)
}

// --- Mock TokenSvcFacade ---

type MockTokenService struct {
	mock.Mock
	IssuePairFn     func(ctx context.Context, userID string) (domain.TokenPair, error)
	VerifyRefreshFn func(tokenString string) (string, error)
	RotateFn        func(ctx context.Context, presented string) (*domain.User, domain.TokenPair, error)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) IssuePair(ctx context.Context, userID string) (domain.TokenPair, error) {
	if m.IssuePairFn != nil {
		return m.IssuePairFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.TokenPair), args.Error(1)
}

func (m *MockTokenService) VerifyRefresh(tokenString string) (string, error) {
	if m.VerifyRefreshFn != nil {
		return m.VerifyRefreshFn(tokenString)
	}
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Rotate(ctx context.Context, presented string) (*domain.User, domain.TokenPair, error) {
	if m.RotateFn != nil {
		return m.RotateFn(ctx, presented)
	}
	args := m.Called(ctx, presented)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Get(1).(domain.TokenPair), args.Error(2)
}

// --- Mock media.Store ---

type MockMediaStore struct {
	SaveFn func(ctx context.Context, filename string, r io.Reader) (string, error)
	Saved  []string
}

func (m *MockMediaStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	m.Saved = append(m.Saved, filename)
	if m.SaveFn != nil {
		return m.SaveFn(ctx, filename, r)
	}
	return "https://media.test/" + filename, nil
}
