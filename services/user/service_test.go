package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"slotmart/config"
	userRepo "slotmart/database/repository/user"
	"slotmart/models"
	"slotmart/utils"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*models.User)}
}

func (r *stubUserRepo) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = "user-" + u.Email
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *stubUserRepo) UpdateProfile(ctx context.Context, id string, update models.UserProfileUpdate) error {
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	if update.Name != "" {
		u.Name = update.Name
	}
	if update.Phone != "" {
		u.Phone = update.Phone
	}
	if update.Address != "" {
		u.Address = update.Address
	}
	if update.DOB != "" {
		u.DOB = update.DOB
	}
	if update.Gender != "" {
		u.Gender = update.Gender
	}
	return nil
}

func newTestService(t *testing.T) (*DefaultUserService, *stubUserRepo) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"
	repo := newStubUserRepo()
	return &DefaultUserService{Repo: repo}, repo
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, models.UserRegistrationData{
		Name:     "Ada",
		Email:    "ada@buyers.test",
		Password: "correct horse",
	})
	require.NoError(t, err)

	sub, role, err := utils.ExtractPrincipalFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, sub)
	assert.Equal(t, utils.RoleBuyer, role)

	stored, err := repo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.UserRegistrationData{
		Name:     "Ada",
		Email:    "ada@buyers.test",
		Password: "correct horse",
	})
	require.NoError(t, err)

	resp, err := svc.Authenticate(ctx, "ada@buyers.test", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Authenticate(ctx, "ada@buyers.test", "wrong horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@buyers.test", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, models.UserRegistrationData{
		Name:     "Ada",
		Email:    "ada@buyers.test",
		Password: "correct horse",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, resp.ID, models.UserProfileUpdate{
		Name:    "Ada L.",
		Phone:   "+15550100",
		Address: "12 Analytical Row",
		DOB:     "1990-12-10",
		Gender:  "female",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, "+15550100", updated.Phone)
	assert.Equal(t, "12 Analytical Row", updated.Address)
	assert.Equal(t, "ada@buyers.test", updated.Email, "email is not editable here")

	// Partial update keeps everything else.
	updated, err = svc.UpdateProfile(ctx, resp.ID, models.UserProfileUpdate{Phone: "+15550199"})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, "+15550199", updated.Phone)

	stored, err := repo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))

	_, err = svc.UpdateProfile(ctx, "ghost", models.UserProfileUpdate{Name: "x"})
	assert.ErrorIs(t, err, userRepo.ErrNotFound)
}
