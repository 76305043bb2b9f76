package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	"github.com/vidtube/vidtube_backend/internal/core/domain"
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/platform/media"
	"github.com/vidtube/vidtube_backend/internal/utils"
	"github.com/google/uuid"
)

// authService implements AuthSvcFacade by composing the user repository, the
// token service and the external media upload collaborator.
type authService struct {
	userRepo   portsrepo.UserRepository
	tokenSvc   portssvc.TokenSvcFacade
	mediaStore media.Store
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepository, tokenSvc portssvc.TokenSvcFacade, mediaStore media.Store) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:   userRepo,
		tokenSvc:   tokenSvc,
		mediaStore: mediaStore,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)

	if fullName == "" || username == "" || email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("%w: fullName, username, email and password are required", apperrors.ErrValidation)
	}
	if req.Avatar == nil {
		return nil, fmt.Errorf("%w: avatar file is required", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with this username or email already exists", apperrors.ErrDuplicate)
	}

	// The upload collaborator is awaited synchronously; registration cannot
	// complete without a durable avatar URL.
	avatarURL, err := s.mediaStore.Save(ctx, req.Avatar.Filename, req.Avatar.Reader)
	if err != nil || avatarURL == "" {
		return nil, fmt.Errorf("%w: could not store avatar file", apperrors.ErrValidation)
	}

	coverImageURL := ""
	if req.CoverImage != nil {
		coverImageURL, err = s.mediaStore.Save(ctx, req.CoverImage.Filename, req.CoverImage.Reader)
		if err != nil {
			return nil, fmt.Errorf("%w: could not store cover image file", apperrors.ErrValidation)
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      username,
		Email:         email,
		FullName:      fullName,
		PasswordHash:  passwordHash,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// The unique indexes close the check/insert gap under concurrency.
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, domain.TokenPair, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.TrimSpace(req.Email)
	if username == "" && email == "" {
		return nil, domain.TokenPair{}, fmt.Errorf("%w: username or email is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.TokenPair{}, fmt.Errorf("user does not exist: %w", apperrors.ErrNotFound)
		}
		return nil, domain.TokenPair{}, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, domain.TokenPair{}, fmt.Errorf("invalid user credentials: %w", apperrors.ErrUnauthorized)
	}

	pair, err := s.tokenSvc.IssuePair(ctx, user.UserID)
	if err != nil {
		return nil, domain.TokenPair{}, fmt.Errorf("failed to issue token pair: %w", err)
	}

	return user, pair, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token on logout: %w", err)
	}
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, oldPassword string, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return fmt.Errorf("%w: new password is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return fmt.Errorf("old password does not match: %w", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	// Targeted update: only the password column changes, nothing else on the
	// record is revalidated or rewritten.
	if err := s.userRepo.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return fmt.Errorf("failed to persist new password: %w", err)
	}
	return nil
}

func (s *authService) Refresh(ctx context.Context, presentedRefreshToken string) (*domain.User, domain.TokenPair, error) {
	if presentedRefreshToken == "" {
		return nil, domain.TokenPair{}, fmt.Errorf("%w: refresh token is required", apperrors.ErrUnauthorized)
	}
	return s.tokenSvc.Rotate(ctx, presentedRefreshToken)
}
