package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopledesk/peopledesk-backend-go/internal/domain/auth"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/user"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users  map[string]user.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == newUser.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.nextID++
	newUser.ID = string(rune('a' + f.nextID - 1))
	newUser.Active = true
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateRefreshToken(ctx context.Context, id string, token *string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.RefreshToken = token
	f.users[id] = u
	return nil
}

func newTestService(repo *fakeUserRepo) auth.AuthService {
	return NewAuthService(repo, jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp))
}

func registerTestUser(t *testing.T, svc auth.AuthService, email string) user.UserResponse {
	t.Helper()
	result, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return result
}

func TestAuthService_Register_HashesPasswordAndDefaultsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	result := registerTestUser(t, svc, "user@example.com")

	assert.Equal(t, string(user.RoleUser), result.Role)
	assert.True(t, result.Active)

	stored := repo.users[result.ID]
	require.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "password123", *stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("password123")))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	registerTestUser(t, svc, "user@example.com")

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:     "Other",
		Email:    "user@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "short",
	})
	require.Error(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	registered := registerTestUser(t, svc, "user@example.com")

	result, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, registered.ID, result.User.ID)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)

	stored := repo.users[registered.ID]
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, result.Tokens.RefreshToken, *stored.RefreshToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	registerTestUser(t, svc, "user@example.com")

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesTokens(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	registered := registerTestUser(t, svc, "user@example.com")

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), user.RefreshRequest{
		RefreshToken: login.Tokens.RefreshToken,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, refreshed.AccessToken)

	stored := repo.users[registered.ID]
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, refreshed.RefreshToken, *stored.RefreshToken)
}

func TestAuthService_Refresh_RejectsMismatchedToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	registered := registerTestUser(t, svc, "user@example.com")

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// Simulate rotation elsewhere: stored token no longer matches
	other := "some-other-token"
	require.NoError(t, repo.UpdateRefreshToken(context.Background(), registered.ID, &other))

	_, err = svc.Refresh(context.Background(), user.RefreshRequest{
		RefreshToken: login.Tokens.RefreshToken,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidRefresh)
}

func TestAuthService_Refresh_RejectsGarbageToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Refresh(context.Background(), user.RefreshRequest{
		RefreshToken: "not-a-jwt",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidRefresh)
}

func TestAuthService_Logout_ClearsRefreshToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	registered := registerTestUser(t, svc, "user@example.com")

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), registered.ID))
	assert.Nil(t, repo.users[registered.ID].RefreshToken)
}

func TestAuthService_LoginWithGoogle_UnknownEmailNotProvisioned(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.LoginWithGoogle(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Empty(t, repo.users)
}

func TestAuthService_LoginWithGoogle_ExistingAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	registered := registerTestUser(t, svc, "user@example.com")

	result, err := svc.LoginWithGoogle(context.Background(), "user@example.com")
	require.NoError(t, err)

	assert.Equal(t, registered.ID, result.User.ID)
	assert.NotEmpty(t, result.Tokens.AccessToken)
}
