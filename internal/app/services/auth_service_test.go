package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/models/dto"
	"github.com/edaguler/scholarhub/internal/app/services"
	"github.com/edaguler/scholarhub/internal/pkg/apperrors"
	"github.com/edaguler/scholarhub/internal/pkg/auth"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[int64]*models.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[int64]*models.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) CreateWithProfile(ctx context.Context, user *models.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return apperrors.ErrEmailAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, exists := f.byEmail[email]
	return exists, nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

func newTestAuthService(repo *fakeUserRepo) services.AuthService {
	return services.NewAuthService(repo, auth.NewBcryptHasher(), testJWTService(), zerolog.Nop())
}

func TestSignupAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &dto.SignupRequest{
		Email:    "student@example.com",
		Password: "password123",
		Name:     "Test Student",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, models.RoleStudent, resp.User.Role)

	// The stored password must be a hash, not the plain text
	stored := repo.byEmail["student@example.com"]
	assert.NotEqual(t, "password123", stored.Password)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "student@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	req := &dto.SignupRequest{
		Email:    "dup@example.com",
		Password: "password123",
		Name:     "First",
		Role:     models.RoleTeacher,
	}
	_, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSignupInvalidRole(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:    "admin@example.com",
		Password: "password123",
		Name:     "Admin",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{
		Email:    "known@example.com",
		Password: "password123",
		Name:     "Known",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	// Wrong password and unknown account fail identically
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "known@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "unknown@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &dto.SignupRequest{
		Email:    "me@example.com",
		Password: "password123",
		Name:     "Me",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", user.Email)

	_, err = svc.GetUser(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
