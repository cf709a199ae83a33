package services

import (
	"context"
	"errors"
	"time"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/auth"
	"github.com/kaan/studenthub/internal/pkg/logger"
)

// UserStore is the user persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// TokenStore is the refresh token persistence surface.
type TokenStore interface {
	Save(ctx context.Context, token *models.RefreshToken) error
	GetByToken(ctx context.Context, tokenValue string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, tokenValue string) error
}

// AuthService handles registration, login and token refresh
type AuthService struct {
	users     UserStore
	tokens    TokenStore
	jwt       *auth.JWTService
	passwords *auth.PasswordService
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, tokens TokenStore, jwt *auth.JWTService, passwords *auth.PasswordService) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		jwt:       jwt,
		passwords: passwords,
	}
}

// Register creates a new account and returns its public view
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleStaff
	}
	if !role.IsValid() {
		return nil, apperrors.NewBadRequestError("unknown role")
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		IsActive:  true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return toUserResponse(user), nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwords.VerifyPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login")
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token and issues a new pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokens.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if stored.IsExpired() {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	// Rotate: the old token is single-use.
	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Profile returns the public view of the authenticated user
func (s *AuthService) Profile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshValue, expiresAt := s.jwt.GenerateRefreshToken()
	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshValue,
		ExpiresAt: expiresAt,
	}
	if err := s.tokens.Save(ctx, refresh); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshValue,
		ExpiresAt:    time.Now().Add(s.jwt.AccessTokenTTL()),
	}, nil
}

func toUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
