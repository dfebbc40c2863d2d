package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/mock"
	"github.com/MKhiriev/go-api-hub/internal/store"
	"github.com/MKhiriev/go-api-hub/internal/utils"
	"github.com/MKhiriev/go-api-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// stubTokenService issues a predictable token and records descriptions.
type stubTokenService struct {
	TokenService
	descriptions []string
	err          error
}

func (s *stubTokenService) Issue(_ context.Context, user models.User, description string) (models.IssuedToken, error) {
	if s.err != nil {
		return models.IssuedToken{}, s.err
	}
	s.descriptions = append(s.descriptions, description)
	return models.IssuedToken{SignedString: "token-for-" + user.Email}, nil
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *stubTokenService) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	tokens := &stubTokenService{}

	cfg := config.App{PasswordMinLength: 8, BcryptCost: bcrypt.MinCost}
	svc := NewAuthService(users, tokens, cfg, logger.Nop()).(*authService)

	return svc, users, tokens
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "Alice", u.Name)
			assert.NotEqual(t, "password123", u.PasswordHash, "password must be hashed")
			ok, err := utils.CheckPassword(u.PasswordHash, "password123")
			require.NoError(t, err)
			assert.True(t, ok)
			u.UserID = 1
			return u, nil
		})

	user, token, err := svc.Signup(ctx, models.SignupRequest{Email: "alice@example.com", Password: "password123", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "token-for-alice@example.com", token.SignedString)
	assert.Equal(t, []string{"signup"}, tokens.descriptions)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, _, err := svc.Signup(ctx, models.SignupRequest{Email: "alice@example.com", Password: "password123", Name: "Alice"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Empty(t, tokens.descriptions, "no token for a failed signup")
}

func TestAuthService_Signup_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  models.SignupRequest
	}{
		{name: "bad email", req: models.SignupRequest{Email: "not-an-email", Password: "password123", Name: "A"}},
		{name: "short password", req: models.SignupRequest{Email: "a@example.com", Password: "short", Name: "A"}},
		{name: "empty name", req: models.SignupRequest{Email: "a@example.com", Password: "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, _, err := svc.Signup(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 1, Email: "alice@example.com", PasswordHash: hashed(t, "password123")}
	users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, nil).Times(2)

	_, token, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-alice@example.com", token.SignedString)

	_, _, err = svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "password123", Description: "ci"})
	require.NoError(t, err)

	assert.Equal(t, []string{"login", "ci"}, tokens.descriptions)
}

func TestAuthService_Login_BadCredentialsIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 1, Email: "alice@example.com", PasswordHash: hashed(t, "password123")}
	users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, nil)
	users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, _, wrongPassword := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	_, _, unknownEmail := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "password123"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Empty(t, tokens.descriptions)
}

func TestAuthService_Login_UnknownEmailSpendsBcryptWork(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	var compared []string
	svc.checkPassword = func(hash, password string) (bool, error) {
		compared = append(compared, hash)
		return utils.CheckPassword(hash, password)
	}

	stored := models.User{UserID: 1, Email: "alice@example.com", PasswordHash: hashed(t, "password123")}
	users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, nil)
	users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound).Times(2)

	_, _, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: unknownEmailPassword})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.Len(t, compared, 3)
	assert.Equal(t, stored.PasswordHash, compared[0])
	assert.Equal(t, compared[1], compared[2])

	cost, err := bcrypt.Cost([]byte(compared[1]))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{}, store.ErrUnavailable)

	_, _, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

// ── Profile ──────────────────────────────────────────────────────────────────

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1, Email: "alice@example.com"}, nil)
	users.EXPECT().FindUserByID(ctx, int64(2)).Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.Profile(ctx, models.Caller{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.Profile(ctx, models.Caller{UserID: 2})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	name := "Alice Cooper"
	password := "new-password-1"
	current := models.User{UserID: 1, Email: "alice@example.com", Name: "Alice", PasswordHash: hashed(t, "password123")}

	users.EXPECT().FindUserByID(ctx, int64(1)).Return(current, nil)
	users.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, name, u.Name)
			ok, err := utils.CheckPassword(u.PasswordHash, password)
			require.NoError(t, err)
			assert.True(t, ok)
			return u, nil
		})

	updated, err := svc.UpdateProfile(ctx, models.Caller{UserID: 1}, models.ProfileUpdateRequest{Name: &name, Password: &password})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
}

func TestAuthService_UpdateProfile_NothingToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.UpdateProfile(context.Background(), models.Caller{UserID: 1}, models.ProfileUpdateRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}
