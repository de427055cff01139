package service

import (
	"context"
	"testing"
	"time"

	"github.com/akfoods/pos-api/internal/domain/entity"
	"github.com/akfoods/pos-api/internal/domain/enum"
	"github.com/akfoods/pos-api/pkg/apperror"
	"github.com/akfoods/pos-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, active bool) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &entity.User{
		ID:       uuid.New(),
		Username: username,
		Password: hash,
		Role:     enum.UserRoleCashier,
		IsActive: active,
	}
	repo.users[user.ID] = user
	return user
}

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwtManager), repo
}

func TestLogin_Success(t *testing.T) {
	svc, repo := newAuthFixture()
	seedUser(t, repo, "ravi", "secret123", true)

	out, err := svc.Login(context.Background(), &LoginInput{Username: "ravi", Password: "secret123"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "ravi", out.User.Username)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &LoginInput{Username: "ghost", Password: "whatever"})

	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := newAuthFixture()
	seedUser(t, repo, "ravi", "secret123", true)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "ravi", Password: "wrong"})

	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, repo := newAuthFixture()
	seedUser(t, repo, "ravi", "secret123", false)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "ravi", Password: "secret123"})

	assert.Equal(t, apperror.ErrAccountDisabled, err)
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	svc, repo := newAuthFixture()
	seedUser(t, repo, "ravi", "secret123", true)

	login, err := svc.Login(context.Background(), &LoginInput{Username: "ravi", Password: "secret123"})
	require.NoError(t, err)

	out, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, login.User.ID, out.User.ID)
}

func TestRefreshToken_RejectsGarbage(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.RefreshToken(context.Background(), "not-a-token")

	assert.Equal(t, apperror.ErrInvalidToken, err)
}

func TestRefreshToken_DisabledAccount(t *testing.T) {
	svc, repo := newAuthFixture()
	user := seedUser(t, repo, "ravi", "secret123", true)

	login, err := svc.Login(context.Background(), &LoginInput{Username: "ravi", Password: "secret123"})
	require.NoError(t, err)

	user.IsActive = false

	_, err = svc.RefreshToken(context.Background(), login.RefreshToken)
	assert.Equal(t, apperror.ErrAccountDisabled, err)
}

func TestChangePassword(t *testing.T) {
	svc, repo := newAuthFixture()
	user := seedUser(t, repo, "ravi", "secret123", true)

	err := svc.ChangePassword(context.Background(), user.ID, "secret123", "newsecret")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{Username: "ravi", Password: "newsecret"})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{Username: "ravi", Password: "secret123"})
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, repo := newAuthFixture()
	user := seedUser(t, repo, "ravi", "secret123", true)

	err := svc.ChangePassword(context.Background(), user.ID, "wrong", "newsecret")

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
