package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/core/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
	"github.com/vidtube/vidtube_backend/internal/utils"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg          *config.Config
	mockUserRepo *MockUserRepository
	service      portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		AccessTokenSecret:  "test-access-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenSecret: "test-refresh-secret",
		RefreshTokenExpiry: 240 * time.Hour,
		JWTIssuer:          "vidtube-backend-test",
	}
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewTokenService(suite.cfg, suite.mockUserRepo)
}

func (suite *TokenServiceTestSuite) TestIssuePair_SignsAndPersists() {
	ctx := context.Background()
	userID := uuid.NewString()

	var persisted string
	suite.mockUserRepo.UpdateRefreshTokenFn = func(ctx context.Context, gotUserID, refreshToken string) error {
		suite.Equal(userID, gotUserID)
		persisted = refreshToken
		return nil
	}

	pair, err := suite.service.IssuePair(ctx, userID)

	suite.Require().NoError(err)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEmpty(pair.RefreshToken)
	suite.Equal(pair.RefreshToken, persisted)

	accessClaims, err := utils.ParseAndValidateJWT(pair.AccessToken, suite.cfg.AccessTokenSecret)
	suite.Require().NoError(err)
	suite.Equal(userID, accessClaims.Subject)

	refreshClaims, err := utils.ParseAndValidateJWT(pair.RefreshToken, suite.cfg.RefreshTokenSecret)
	suite.Require().NoError(err)
	suite.Equal(userID, refreshClaims.Subject)
	suite.NotEmpty(refreshClaims.ID)
}

func (suite *TokenServiceTestSuite) TestIssuePair_PairsAreUniqueWithinSameSecond() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockUserRepo.UpdateRefreshTokenFn = func(ctx context.Context, userID, refreshToken string) error {
		return nil
	}

	first, err := suite.service.IssuePair(ctx, userID)
	suite.Require().NoError(err)
	second, err := suite.service.IssuePair(ctx, userID)
	suite.Require().NoError(err)

	// Without a per-token ID two refresh tokens signed in the same second
	// would be byte-identical and rotation could not tell old from new.
	suite.NotEqual(first.RefreshToken, second.RefreshToken)
}

func (suite *TokenServiceTestSuite) TestVerifyRefresh_Valid() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockUserRepo.UpdateRefreshTokenFn = func(ctx context.Context, userID, refreshToken string) error {
		return nil
	}

	pair, err := suite.service.IssuePair(ctx, userID)
	suite.Require().NoError(err)

	gotUserID, err := suite.service.VerifyRefresh(pair.RefreshToken)
	suite.Require().NoError(err)
	suite.Equal(userID, gotUserID)
}

func (suite *TokenServiceTestSuite) TestVerifyRefresh_WrongSecret() {
	userID := uuid.NewString()

	// Signed with the access secret, presented as a refresh token.
	token, err := utils.GenerateJWT(userID, suite.cfg.AccessTokenSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	gotUserID, err := suite.service.VerifyRefresh(token)
	suite.Require().Error(err)
	suite.Empty(gotUserID)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestVerifyRefresh_Expired() {
	userID := uuid.NewString()

	token, err := utils.GenerateJWT(userID, suite.cfg.RefreshTokenSecret, -time.Minute, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	_, err = suite.service.VerifyRefresh(token)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestVerifyRefresh_Garbage() {
	_, err := suite.service.VerifyRefresh("not-a-jwt")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestRotate_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "rotator"}

	suite.mockUserRepo.UpdateRefreshTokenFn = func(ctx context.Context, userID, refreshToken string) error {
		return nil
	}
	presented, err := suite.service.IssuePair(ctx, userID)
	suite.Require().NoError(err)

	suite.mockUserRepo.FindUserByIDFn = func(ctx context.Context, gotUserID string) (*domain.User, error) {
		suite.Equal(userID, gotUserID)
		return user, nil
	}
	var rotatedTo string
	suite.mockUserRepo.RotateRefreshTokenFn = func(ctx context.Context, gotUserID, gotPresented, next string) error {
		suite.Equal(userID, gotUserID)
		suite.Equal(presented.RefreshToken, gotPresented)
		rotatedTo = next
		return nil
	}

	gotUser, pair, err := suite.service.Rotate(ctx, presented.RefreshToken)

	suite.Require().NoError(err)
	suite.Equal(user, gotUser)
	suite.NotEmpty(pair.AccessToken)
	suite.Equal(pair.RefreshToken, rotatedTo)
	suite.NotEqual(presented.RefreshToken, pair.RefreshToken)
}

func (suite *TokenServiceTestSuite) TestRotate_ReusedTokenIsRevoked() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.UpdateRefreshTokenFn = func(ctx context.Context, userID, refreshToken string) error {
		return nil
	}
	stale, err := suite.service.IssuePair(ctx, userID)
	suite.Require().NoError(err)

	suite.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID}, nil
	}
	// Storage no longer holds the presented value: the conditional swap
	// matches zero rows.
	suite.mockUserRepo.RotateRefreshTokenFn = func(ctx context.Context, userID, presented, next string) error {
		return apperrors.ErrRefreshTokenRevoked
	}

	gotUser, pair, err := suite.service.Rotate(ctx, stale.RefreshToken)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenRevoked)
	suite.Nil(gotUser)
	suite.Empty(pair.AccessToken)
}

func (suite *TokenServiceTestSuite) TestRotate_UnknownUserIsUnauthorized() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.UpdateRefreshTokenFn = func(ctx context.Context, userID, refreshToken string) error {
		return nil
	}
	pair, err := suite.service.IssuePair(ctx, userID)
	suite.Require().NoError(err)

	suite.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	_, _, err = suite.service.Rotate(ctx, pair.RefreshToken)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
