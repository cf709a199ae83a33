package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/studenthub/internal/app/models"
	"github.com/kaan/studenthub/internal/app/models/dto"
	"github.com/kaan/studenthub/internal/pkg/apperrors"
	"github.com/kaan/studenthub/internal/pkg/auth"
)

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (s *fakeUserStore) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	if user, ok := s.users[id]; ok {
		user.LastLoginAt = &at
	}
	return nil
}

type fakeTokenStore struct {
	tokens map[string]*models.RefreshToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*models.RefreshToken)}
}

func (s *fakeTokenStore) Save(_ context.Context, token *models.RefreshToken) error {
	s.tokens[token.Token] = token
	return nil
}

func (s *fakeTokenStore) GetByToken(_ context.Context, tokenValue string) (*models.RefreshToken, error) {
	token, ok := s.tokens[tokenValue]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	copied := *token
	return &copied, nil
}

func (s *fakeTokenStore) Revoke(_ context.Context, tokenValue string) error {
	token, ok := s.tokens[tokenValue]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	token.Revoked = true
	return nil
}

func newAuthServiceForTest() (*AuthService, *fakeUserStore, *fakeTokenStore) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	jwtService := auth.NewJWTService("test-secret", "studenthub-test", time.Hour, 24*time.Hour)
	service := NewAuthService(users, tokens, jwtService, auth.NewPasswordService())
	return service, users, tokens
}

func registerTestUser(t *testing.T, service *AuthService) *dto.UserResponse {
	t.Helper()
	user, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:     "staff@studenthub.edu",
		Password:  "Password1!",
		FirstName: "Ayşe",
		LastName:  "Demir",
	})
	require.NoError(t, err)
	return user
}

func TestAuthServiceRegister(t *testing.T) {
	service, users, _ := newAuthServiceForTest()

	user := registerTestUser(t, service)
	assert.Equal(t, "STAFF", user.Role)
	assert.True(t, user.IsActive)

	// The stored password must be a hash, never the plaintext.
	stored := users.users[user.ID]
	assert.NotEqual(t, "Password1!", stored.Password)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := service.Register(context.Background(), &dto.RegisterRequest{
			Email:     "staff@studenthub.edu",
			Password:  "Password1!",
			FirstName: "Ayşe",
			LastName:  "Demir",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	service, users, _ := newAuthServiceForTest()
	user := registerTestUser(t, service)

	t.Run("valid credentials", func(t *testing.T) {
		pair, err := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "staff@studenthub.edu",
			Password: "Password1!",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.NotNil(t, users.users[user.ID].LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "staff@studenthub.edu",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email reported as bad credentials", func(t *testing.T) {
		_, err := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@studenthub.edu",
			Password: "Password1!",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		users.users[user.ID].IsActive = false
		defer func() { users.users[user.ID].IsActive = true }()

		_, err := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "staff@studenthub.edu",
			Password: "Password1!",
		})
		assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	service, _, tokens := newAuthServiceForTest()
	registerTestUser(t, service)

	pair, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "staff@studenthub.edu",
		Password: "Password1!",
	})
	require.NoError(t, err)

	t.Run("rotates the refresh token", func(t *testing.T) {
		fresh, err := service.Refresh(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, pair.RefreshToken, fresh.RefreshToken)

		// The old token is single-use.
		_, err = service.Refresh(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := service.Refresh(context.Background(), "no-such-token")
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		stale, err := service.Login(context.Background(), &dto.LoginRequest{
			Email:    "staff@studenthub.edu",
			Password: "Password1!",
		})
		require.NoError(t, err)
		tokens.tokens[stale.RefreshToken].ExpiresAt = time.Now().Add(-time.Minute)

		_, err = service.Refresh(context.Background(), stale.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})
}
