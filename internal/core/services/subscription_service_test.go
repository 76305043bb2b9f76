package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/core/services"
)

// edgeKey mirrors the composite unique key of the subscriptions table.
type edgeKey struct {
	subscriberID string
	channelID    string
}

// fakeEdgeSet backs ToggleSubscription with an in-memory set keyed the same
// way the table is, so toggle semantics can be exercised end to end.
type fakeEdgeSet struct {
	edges map[edgeKey]bool
}

func newFakeEdgeSet() *fakeEdgeSet {
	return &fakeEdgeSet{edges: make(map[edgeKey]bool)}
}

func (f *fakeEdgeSet) toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	key := edgeKey{subscriberID: subscriberID, channelID: channelID}
	if f.edges[key] {
		delete(f.edges, key)
		return false, nil
	}
	f.edges[key] = true
	return true, nil
}

type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockSubscriptionRepo *MockSubscriptionRepository
	service              portssvc.SubscriptionSvcFacade
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.mockSubscriptionRepo = new(MockSubscriptionRepository)
	suite.service = services.NewSubscriptionService(suite.mockSubscriptionRepo)
}

func (suite *SubscriptionServiceTestSuite) TestToggle_ParityAcrossRepeatedCalls() {
	ctx := context.Background()
	subscriberID := uuid.NewString()
	channelID := uuid.NewString()

	edges := newFakeEdgeSet()
	suite.mockSubscriptionRepo.ToggleSubscriptionFn = edges.toggle

	// Odd calls subscribe, even calls unsubscribe.
	for i := 1; i <= 4; i++ {
		subscribed, err := suite.service.Toggle(ctx, subscriberID, channelID)
		suite.Require().NoError(err)
		suite.Equal(i%2 == 1, subscribed, "call %d", i)
	}
}

func (suite *SubscriptionServiceTestSuite) TestToggle_EdgesAreIsolatedPerPair() {
	ctx := context.Background()
	subscriberID := uuid.NewString()
	channelB := uuid.NewString()
	channelC := uuid.NewString()

	edges := newFakeEdgeSet()
	suite.mockSubscriptionRepo.ToggleSubscriptionFn = edges.toggle

	subscribed, err := suite.service.Toggle(ctx, subscriberID, channelB)
	suite.Require().NoError(err)
	suite.True(subscribed)

	// Toggling (subscriber, channelC) must not disturb (subscriber, channelB).
	subscribed, err = suite.service.Toggle(ctx, subscriberID, channelC)
	suite.Require().NoError(err)
	suite.True(subscribed)

	subscribed, err = suite.service.Toggle(ctx, subscriberID, channelB)
	suite.Require().NoError(err)
	suite.False(subscribed)

	suite.True(edges.edges[edgeKey{subscriberID: subscriberID, channelID: channelC}])
	suite.False(edges.edges[edgeKey{subscriberID: subscriberID, channelID: channelB}])
}

func (suite *SubscriptionServiceTestSuite) TestToggle_MissingIDsRejected() {
	ctx := context.Background()

	_, err := suite.service.Toggle(ctx, "", uuid.NewString())
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Toggle(ctx, uuid.NewString(), "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SubscriptionServiceTestSuite) TestListSubscribers() {
	ctx := context.Background()
	channelID := uuid.NewString()
	expected := []domain.User{
		{UserID: uuid.NewString(), Username: "fan1"},
		{UserID: uuid.NewString(), Username: "fan2"},
	}

	suite.mockSubscriptionRepo.FindSubscribersFn = func(ctx context.Context, gotChannelID string) ([]domain.User, error) {
		suite.Equal(channelID, gotChannelID)
		return expected, nil
	}

	subscribers, err := suite.service.ListSubscribers(ctx, channelID)

	suite.Require().NoError(err)
	suite.Equal(expected, subscribers)
}

func (suite *SubscriptionServiceTestSuite) TestListSubscribedChannels() {
	ctx := context.Background()
	subscriberID := uuid.NewString()
	expected := []domain.User{{UserID: uuid.NewString(), Username: "channel1"}}

	suite.mockSubscriptionRepo.FindSubscribedChannelsFn = func(ctx context.Context, gotSubscriberID string) ([]domain.User, error) {
		suite.Equal(subscriberID, gotSubscriberID)
		return expected, nil
	}

	channels, err := suite.service.ListSubscribedChannels(ctx, subscriberID)

	suite.Require().NoError(err)
	suite.Equal(expected, channels)
}

func (suite *SubscriptionServiceTestSuite) TestList_MissingIDRejected() {
	ctx := context.Background()

	_, err := suite.service.ListSubscribers(ctx, "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListSubscribedChannels(ctx, "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestSubscriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
